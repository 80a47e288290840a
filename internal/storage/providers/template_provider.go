package providers

import (
	"context"
	"errors"
	"fmt"

	"invitely/internal/domains"
	"invitely/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TemplateProvider is the read adapter over the template catalog. The catalog
// is seeded by migration and never written by this service.
type TemplateProvider struct {
	db *pgxpool.Pool
}

func NewTemplateProvider(pg *pgxpool.Pool) *TemplateProvider {
	return &TemplateProvider{
		db: pg,
	}
}

func (s *TemplateProvider) GetTemplateByID(ctx context.Context, templateID string) (domains.Template, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, name, description, theme, preview_url, html_content AS markup, css_content AS style, tier, created_at
        FROM templates
        WHERE id = $1
    `, templateID)
	if err != nil {
		return domains.Template{}, fmt.Errorf("query template: %w", err)
	}
	defer rows.Close()

	template, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[domains.Template])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domains.Template{}, storage.ErrNotFound
		}
		return domains.Template{}, fmt.Errorf("collect template: %w", err)
	}
	return template, nil
}

func (s *TemplateProvider) ListTemplates(ctx context.Context) ([]domains.TemplateSummary, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, name, description, theme, preview_url, tier
        FROM templates
        ORDER BY created_at
    `)
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}

	templates, err := pgx.CollectRows(rows, pgx.RowToStructByName[domains.TemplateSummary])
	if err != nil {
		return nil, fmt.Errorf("collect templates: %w", err)
	}
	return templates, nil
}
