package service

import (
	"context"
	"log/slog"

	"invitely/internal/domains"
	"invitely/internal/render"
)

type TemplateService struct {
	provider TemplateProvider
}

type TemplateProvider interface {
	GetTemplateByID(ctx context.Context, templateID string) (domains.Template, error)
	ListTemplates(ctx context.Context) ([]domains.TemplateSummary, error)
}

func NewTemplateService(provider TemplateProvider) *TemplateService {
	return &TemplateService{
		provider: provider,
	}
}

func (h *TemplateService) ListTemplates(ctx context.Context) ([]domains.TemplateSummary, error) {
	templates, err := h.provider.ListTemplates(ctx)
	if err != nil {
		slog.Error("list templates failed", "err", err)
		return nil, err
	}
	return templates, nil
}

func (h *TemplateService) GetTemplateByID(ctx context.Context, templateID string) (domains.Template, error) {
	template, err := h.provider.GetTemplateByID(ctx, templateID)
	if err != nil {
		slog.Error("get template failed", "err", err, "template_id", templateID)
		return domains.Template{}, err
	}
	return template, nil
}

// RenderSample renders a template with the browse-page fixture data.
func (h *TemplateService) RenderSample(ctx context.Context, templateID string) (domains.RenderedDocument, error) {
	template, err := h.provider.GetTemplateByID(ctx, templateID)
	if err != nil {
		return domains.RenderedDocument{}, err
	}
	data, qr := render.SampleData()
	return render.Render(template, data, qr, render.ModePreview), nil
}

// RenderPreview renders a live draft without persisting anything.
func (h *TemplateService) RenderPreview(ctx context.Context, templateID string, data domains.InvitationData) (domains.RenderedDocument, error) {
	template, err := h.provider.GetTemplateByID(ctx, templateID)
	if err != nil {
		return domains.RenderedDocument{}, err
	}
	return render.Render(template, data, "", render.ModePreview), nil
}
