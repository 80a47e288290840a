package httptransport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"invitely/internal/domains"
	"invitely/internal/httpx"
	"invitely/internal/storage"

	"github.com/gorilla/mux"
)

type TemplateHandlers struct {
	service    TemplateServices
	upgradeURL string
}

type TemplateServices interface {
	ListTemplates(ctx context.Context) ([]domains.TemplateSummary, error)
	GetTemplateByID(ctx context.Context, templateID string) (domains.Template, error)
	RenderSample(ctx context.Context, templateID string) (domains.RenderedDocument, error)
	RenderPreview(ctx context.Context, templateID string, data domains.InvitationData) (domains.RenderedDocument, error)
}

func NewTemplateHandlers(service TemplateServices, upgradeURL string) *TemplateHandlers {
	return &TemplateHandlers{
		service:    service,
		upgradeURL: upgradeURL,
	}
}

func (h *TemplateHandlers) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.service.ListTemplates(r.Context())
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to load templates")
		return
	}
	httpx.JSON(w, http.StatusOK, templates)
}

func (h *TemplateHandlers) GetTemplate(w http.ResponseWriter, r *http.Request) {
	template, err := h.service.GetTemplateByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "template not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "failed to load template")
		return
	}
	httpx.JSON(w, http.StatusOK, template)
}

// RenderSample serves the browse-page render with fixture data. Free for
// everyone, the gate only guards personalization.
func (h *TemplateHandlers) RenderSample(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.RenderSample(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "template not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "failed to render template")
		return
	}
	httpx.JSON(w, http.StatusOK, doc)
}

// RenderPreview renders a live draft for the personalization page. Nothing is
// persisted; the access gate runs first so premium templates stay gated.
func (h *TemplateHandlers) RenderPreview(w http.ResponseWriter, r *http.Request) {
	templateID := mux.Vars(r)["id"]
	template, err := h.service.GetTemplateByID(r.Context(), templateID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "template not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "failed to load template")
		return
	}

	if !gateAccess(w, r, template, h.upgradeURL) {
		return
	}

	data, err := httpx.ReadBody[domains.InvitationData](r)
	if err != nil {
		slog.Error("preview read body failed", "err", err)
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := h.service.RenderPreview(r.Context(), templateID, data)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to render preview")
		return
	}
	httpx.JSON(w, http.StatusOK, doc)
}
