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

const invitationColumns = `id, owner_id, template_id, invitation_data AS data, url_slug AS slug, qr_code, created_at`

type InvitationProvider struct {
	db *pgxpool.Pool
}

func NewInvitationProvider(db *pgxpool.Pool) *InvitationProvider {
	return &InvitationProvider{
		db: db,
	}
}

// SaveInvitation persists a fully-formed invitation in a single transaction.
// The url_slug column carries a unique index; a duplicate slug surfaces as
// storage.ErrConflict so the caller can mint a fresh one and retry.
func (s *InvitationProvider) SaveInvitation(ctx context.Context, invitation domains.Invitation) (domains.Invitation, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return domains.Invitation{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, `
        INSERT INTO invitations (id, owner_id, template_id, invitation_data, url_slug, qr_code)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING `+invitationColumns,
		invitation.ID,
		invitation.OwnerID,
		invitation.TemplateID,
		invitation.Data,
		invitation.Slug,
		invitation.QRCode,
	)
	if err != nil {
		return domains.Invitation{}, fmt.Errorf("insert invitation: %w", err)
	}
	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.Invitation])
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domains.Invitation{}, fmt.Errorf("insert invitation: %w", storage.ErrConflict)
		}
		return domains.Invitation{}, fmt.Errorf("insert invitation: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domains.Invitation{}, fmt.Errorf("commit: %w", err)
	}
	return created, nil
}

// GetBySlug is the public lookup path. The slug is the primary external key
// and resolves through its unique index.
func (s *InvitationProvider) GetBySlug(ctx context.Context, slug string) (domains.Invitation, error) {
	rows, err := s.db.Query(ctx, `
        SELECT `+invitationColumns+`
        FROM invitations
        WHERE url_slug = $1
    `, slug)
	if err != nil {
		return domains.Invitation{}, fmt.Errorf("query invitation: %w", err)
	}
	defer rows.Close()

	invitation, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.Invitation])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domains.Invitation{}, storage.ErrNotFound
		}
		return domains.Invitation{}, fmt.Errorf("collect invitation: %w", err)
	}
	return invitation, nil
}

func (s *InvitationProvider) GetInvitationByID(ctx context.Context, ownerID, invitationID string) (domains.Invitation, error) {
	rows, err := s.db.Query(ctx, `
        SELECT `+invitationColumns+`
        FROM invitations
        WHERE id = $1 AND owner_id = $2
    `, invitationID, ownerID)
	if err != nil {
		return domains.Invitation{}, fmt.Errorf("query invitation: %w", err)
	}
	defer rows.Close()

	invitation, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.Invitation])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domains.Invitation{}, storage.ErrNotFound
		}
		return domains.Invitation{}, fmt.Errorf("collect invitation: %w", err)
	}
	return invitation, nil
}

func (s *InvitationProvider) GetAllInvitationsByOwner(ctx context.Context, ownerID string) ([]domains.Invitation, error) {
	rows, err := s.db.Query(ctx, `
        SELECT `+invitationColumns+`
        FROM invitations
        WHERE owner_id = $1
        ORDER BY created_at DESC
    `, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query invitations: %w", err)
	}

	invitations, err := pgx.CollectRows(rows, pgx.RowToStructByName[domains.Invitation])
	if err != nil {
		return nil, fmt.Errorf("collect invitations: %w", err)
	}
	return invitations, nil
}
