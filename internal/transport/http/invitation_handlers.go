package httptransport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"invitely/internal/domains"
	"invitely/internal/httpx"
	"invitely/internal/service"
	"invitely/internal/storage"

	"github.com/gorilla/mux"
)

type InvitationHandlers struct {
	service    InvitationServices
	templates  TemplateServices
	upgradeURL string
}

type InvitationServices interface {
	CreateInvitation(ctx context.Context, ownerID string, payload domains.InvitationCreate) (domains.Invitation, error)
	GetInvitationByID(ctx context.Context, ownerID, invitationID string) (domains.Invitation, error)
	GetAllInvitationsByOwner(ctx context.Context, ownerID string) ([]domains.Invitation, error)
}

func NewInvitationHandlers(service InvitationServices, templates TemplateServices, upgradeURL string) *InvitationHandlers {
	return &InvitationHandlers{
		service:    service,
		templates:  templates,
		upgradeURL: upgradeURL,
	}
}

func (h *InvitationHandlers) CreateInvitation(w http.ResponseWriter, r *http.Request) {
	user, ok := httpx.UserFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	payload, err := httpx.ReadBody[domains.InvitationCreate](r)
	if err != nil {
		slog.Error("create invitation read body failed", "err", err)
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	template, err := h.templates.GetTemplateByID(r.Context(), payload.TemplateID)
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

	invitation, err := h.service.CreateInvitation(r.Context(), user.ID, payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			httpx.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, storage.ErrNotFound):
			httpx.Error(w, http.StatusNotFound, "template not found")
		case errors.Is(err, service.ErrSlugExhausted):
			httpx.Error(w, http.StatusServiceUnavailable, "could not allocate invitation link, try again")
		default:
			slog.Error("create invitation failed", "err", err, "owner_id", user.ID)
			httpx.Error(w, http.StatusInternalServerError, "failed to create invitation")
		}
		return
	}

	httpx.JSON(w, http.StatusCreated, invitation)
}

func (h *InvitationHandlers) GetAllInvitations(w http.ResponseWriter, r *http.Request) {
	user, ok := httpx.UserFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	invitations, err := h.service.GetAllInvitationsByOwner(r.Context(), user.ID)
	if err != nil {
		httpx.Error(w, http.StatusInternalServerError, "failed to load invitations")
		return
	}
	httpx.JSON(w, http.StatusOK, invitations)
}

func (h *InvitationHandlers) GetInvitation(w http.ResponseWriter, r *http.Request) {
	user, ok := httpx.UserFromContext(r.Context())
	if !ok {
		httpx.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	invitation, err := h.service.GetInvitationByID(r.Context(), user.ID, mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			httpx.Error(w, http.StatusNotFound, "invitation not found")
			return
		}
		httpx.Error(w, http.StatusInternalServerError, "failed to load invitation")
		return
	}
	httpx.JSON(w, http.StatusOK, invitation)
}
