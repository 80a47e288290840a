package httptransport

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"invitely/internal/domains"
	"invitely/internal/httpx"
	"invitely/internal/storage"

	"github.com/gorilla/mux"
)

type PublicHandlers struct {
	service PublicInvitationServices
}

type PublicInvitationServices interface {
	GetPublicBySlug(ctx context.Context, slug string) (domains.PublicInvitation, error)
	RenderBySlug(ctx context.Context, slug string) (domains.RenderedDocument, error)
}

func NewPublicHandlers(service PublicInvitationServices) *PublicHandlers {
	return &PublicHandlers{
		service: service,
	}
}

// GetPublicInvitation returns the frozen (invitation, template) pair for a
// slug. No authentication, the slug is the sole handle.
func (h *PublicHandlers) GetPublicInvitation(w http.ResponseWriter, r *http.Request) {
	public, err := h.service.GetPublicBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "invitation not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "failed to load invitation")
		return
	}
	httpx.JSON(w, http.StatusOK, public)
}

// RenderPage serves the fully composed HTML document for guests who open the
// shared link directly.
func (h *PublicHandlers) RenderPage(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.RenderBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "failed to render invitation", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<style>\n%s\n</style>\n</head>\n<body>\n%s\n</body>\n</html>\n", doc.Style, doc.Body)
}
