package httptransport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"invitely/internal/domains"
	"invitely/internal/httpx"
	"invitely/internal/service"
	"invitely/internal/storage"
)

type AuthHandlers struct {
	service AuthServices
}

type AuthServices interface {
	Register(ctx context.Context, user domains.User) error
	Login(ctx context.Context, email string, password string) (string, string, error)
	Refresh(ctx context.Context, token string) (string, string, error)
	Me(ctx context.Context, token string) (domains.User, error)
}

func NewAuthHandlers(service AuthServices) *AuthHandlers {
	return &AuthHandlers{
		service: service,
	}
}

func (srv *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	userData, err := httpx.ReadBody[domains.User](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := srv.service.Register(r.Context(), userData); err != nil {
		if errors.Is(err, storage.ErrUserExist) {
			httpx.Error(w, http.StatusConflict, "account already exists")
			return
		}
		slog.Error("register failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "registration failed")
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (srv *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	loginData, err := httpx.ReadBody[LoginData](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	accessToken, refreshToken, err := srv.service.Login(r.Context(), loginData.Email, loginData.Password)
	if err != nil {
		if errors.Is(err, service.PasswordIncorrect) || errors.Is(err, storage.ErrNotFound) {
			httpx.Error(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		slog.Error("login failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "login failed")
		return
	}

	httpx.JSON(w, http.StatusOK, TokenPair{AccessToken: accessToken, RefreshToken: refreshToken})
}

func (srv *AuthHandlers) Refresh(w http.ResponseWriter, r *http.Request) {
	payload, err := httpx.ReadBody[TokenRefreshRequest](r)
	if err != nil || payload.RefreshToken == "" {
		httpx.Error(w, http.StatusBadRequest, "refresh token is required")
		return
	}

	accessToken, refreshToken, err := srv.service.Refresh(r.Context(), payload.RefreshToken)
	if err != nil {
		if errors.Is(err, service.TokenIncorrect) {
			httpx.Error(w, http.StatusUnauthorized, "token is incorrect")
			return
		}
		if errors.Is(err, storage.ErrNotFound) {
			httpx.Error(w, http.StatusUnauthorized, "user not found")
			return
		}
		slog.Error("refresh failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "failed to refresh tokens")
		return
	}

	httpx.JSON(w, http.StatusOK, TokenPair{AccessToken: accessToken, RefreshToken: refreshToken})
}

func (srv *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	user, err := srv.service.Me(r.Context(), tokenString)
	if err != nil {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	httpx.JSON(w, http.StatusOK, user)
}
