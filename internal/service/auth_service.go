package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"invitely/internal/domains"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	provider AuthProvider
	secret   string
}

type AuthProvider interface {
	SaveUser(ctx context.Context, passHash string, user domains.User) error
	GetUserByEmail(ctx context.Context, email string) (domains.User, error)
	GetUserByID(ctx context.Context, userID string) (domains.User, error)
}

func NewAuthService(provider AuthProvider, secret string) *AuthService {
	return &AuthService{
		provider: provider,
		secret:   secret,
	}
}

func (s *AuthService) Register(ctx context.Context, user domains.User) error {
	passHash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("hash password failed", "err", err)
		return err
	}

	user.ID = uuid.New().String()
	if err := s.provider.SaveUser(ctx, string(passHash), user); err != nil {
		slog.Error("save user failed", "err", err)
		return err
	}
	return nil
}

func (s *AuthService) Login(ctx context.Context, email string, password string) (string, string, error) {
	user, err := s.provider.GetUserByEmail(ctx, email)
	if err != nil {
		slog.Error("fetch user failed", "err", err)
		return "", "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", PasswordIncorrect
	}

	accessToken, refreshToken, err := s.GenerateTokens(user)
	if err != nil {
		slog.Error("generate tokens failed", "err", err)
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

func (s *AuthService) GenerateTokens(user domains.User) (accessToken string, refreshToken string, err error) {
	accessClaims := jwt.MapClaims{
		"sub":     user.ID,
		"premium": user.Premium,
		"exp":     time.Now().Add(15 * time.Minute).Unix(),
		"type":    "access",
	}
	accessToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(s.secret))
	if err != nil {
		return "", "", err
	}

	refreshClaims := jwt.MapClaims{
		"sub":  user.ID,
		"exp":  time.Now().Add(7 * 24 * time.Hour).Unix(),
		"type": "refresh",
	}
	refreshToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(s.secret))
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	sub, claims, err := s.validateAndGetSubByToken(refreshToken)
	if err != nil {
		return "", "", TokenIncorrect
	}
	if claims["type"] != "refresh" || sub == "" {
		return "", "", TokenIncorrect
	}

	user, err := s.provider.GetUserByID(ctx, sub)
	if err != nil {
		return "", "", err
	}

	return s.GenerateTokens(user)
}

func (s *AuthService) Me(ctx context.Context, token string) (domains.User, error) {
	sub, _, err := s.validateAndGetSubByToken(token)
	if err != nil {
		return domains.User{}, err
	}
	user, err := s.provider.GetUserByID(ctx, sub)
	if err != nil {
		return domains.User{}, err
	}
	user.Password = ""
	return user, nil
}

func (s *AuthService) validateAndGetSubByToken(initToken string) (string, jwt.MapClaims, error) {
	token, err := jwt.Parse(initToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return "", nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", nil, errors.New("invalid claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return "", nil, errors.New("subject missing")
	}
	return sub, claims, nil
}
