package providers

import (
	"context"
	"errors"
	"fmt"

	"invitely/internal/domains"
	"invitely/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AuthProvider struct {
	db *pgxpool.Pool
}

func NewAuthProvider(pg *pgxpool.Pool) *AuthProvider {
	return &AuthProvider{
		db: pg,
	}
}

func (s *AuthProvider) SaveUser(ctx context.Context, passHash string, user domains.User) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
        INSERT INTO accounts (id, full_name, email, passhash, premium)
        VALUES ($1, $2, $3, $4, FALSE)
    `, user.ID, user.FullName, user.Email, passHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return storage.ErrUserExist
		}
		return fmt.Errorf("insert account: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (s *AuthProvider) GetUserByEmail(ctx context.Context, email string) (domains.User, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, full_name, email, passhash AS password, premium, created_at
        FROM accounts
        WHERE email = $1
    `, email)
	if err != nil {
		return domains.User{}, fmt.Errorf("query account: %w", err)
	}
	defer rows.Close()

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domains.User{}, storage.ErrNotFound
		}
		return domains.User{}, fmt.Errorf("collect account: %w", err)
	}
	return user, nil
}

func (s *AuthProvider) GetUserByID(ctx context.Context, userID string) (domains.User, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, full_name, email, passhash AS password, premium, created_at
        FROM accounts
        WHERE id = $1
    `, userID)
	if err != nil {
		return domains.User{}, fmt.Errorf("query account: %w", err)
	}
	defer rows.Close()

	user, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.User])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domains.User{}, storage.ErrNotFound
		}
		return domains.User{}, fmt.Errorf("collect account: %w", err)
	}
	return user, nil
}
