package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"invitely/internal/domains"
	"invitely/internal/render"
	"invitely/internal/storage"

	"github.com/google/uuid"
)

const slugRetryBudget = 5

type InvitationService struct {
	provider    InvitationProvider
	templates   TemplateProvider
	artifacts   ArtifactGenerator
	frontendURL string
}

type InvitationProvider interface {
	SaveInvitation(ctx context.Context, invitation domains.Invitation) (domains.Invitation, error)
	GetBySlug(ctx context.Context, slug string) (domains.Invitation, error)
	GetInvitationByID(ctx context.Context, ownerID, invitationID string) (domains.Invitation, error)
	GetAllInvitationsByOwner(ctx context.Context, ownerID string) ([]domains.Invitation, error)
}

// ArtifactGenerator produces the QR markup fragment for a public invitation
// URL. Generation happens outside this service, it only stores and positions
// the result.
type ArtifactGenerator interface {
	Generate(ctx context.Context, url string) (string, error)
}

func NewInvitationService(provider InvitationProvider, templates TemplateProvider, artifacts ArtifactGenerator, frontendURL string) *InvitationService {
	return &InvitationService{
		provider:    provider,
		templates:   templates,
		artifacts:   artifacts,
		frontendURL: strings.TrimSuffix(frontendURL, "/"),
	}
}

// CreateInvitation freezes the personalization data under a fresh unique slug.
// Bride and groom names are the only mandatory fields; validation happens
// before anything touches storage. Slug collisions are retried with a fresh
// token a bounded number of times, the unique index decides the winner when
// creations race.
func (h *InvitationService) CreateInvitation(ctx context.Context, ownerID string, payload domains.InvitationCreate) (domains.Invitation, error) {
	if strings.TrimSpace(payload.Data.BrideName) == "" || strings.TrimSpace(payload.Data.GroomName) == "" {
		return domains.Invitation{}, ErrValidation
	}

	template, err := h.templates.GetTemplateByID(ctx, payload.TemplateID)
	if err != nil {
		slog.Error("load template failed", "err", err, "template_id", payload.TemplateID)
		return domains.Invitation{}, err
	}

	for attempt := 0; attempt < slugRetryBudget; attempt++ {
		slug, err := newSlug()
		if err != nil {
			return domains.Invitation{}, err
		}

		created, err := h.provider.SaveInvitation(ctx, domains.Invitation{
			ID:         uuid.New().String(),
			OwnerID:    ownerID,
			TemplateID: template.ID,
			Data:       payload.Data,
			Slug:       slug,
			QRCode:     h.artifactFor(ctx, slug),
		})
		if err != nil {
			if errors.Is(err, storage.ErrConflict) {
				slog.Warn("slug collision, retrying", "slug", slug, "attempt", attempt+1)
				continue
			}
			slog.Error("save invitation failed", "err", err, "owner_id", ownerID)
			return domains.Invitation{}, err
		}
		return created, nil
	}

	return domains.Invitation{}, ErrSlugExhausted
}

// artifactFor asks the external generator for the QR fragment. A failing
// generator degrades to an empty artifact, rendering falls back to its
// placeholder instead of the save failing.
func (h *InvitationService) artifactFor(ctx context.Context, slug string) string {
	qr, err := h.artifacts.Generate(ctx, h.frontendURL+"/i/"+slug)
	if err != nil {
		slog.Warn("qr artifact generation failed", "err", err, "slug", slug)
		return ""
	}
	return qr
}

func (h *InvitationService) GetInvitationByID(ctx context.Context, ownerID, invitationID string) (domains.Invitation, error) {
	invitation, err := h.provider.GetInvitationByID(ctx, ownerID, invitationID)
	if err != nil {
		slog.Error("get invitation failed", "err", err, "invitation_id", invitationID)
		return domains.Invitation{}, err
	}
	return invitation, nil
}

func (h *InvitationService) GetAllInvitationsByOwner(ctx context.Context, ownerID string) ([]domains.Invitation, error) {
	invitations, err := h.provider.GetAllInvitationsByOwner(ctx, ownerID)
	if err != nil {
		slog.Error("list invitations failed", "err", err, "owner_id", ownerID)
		return nil, err
	}
	return invitations, nil
}

// GetPublicBySlug resolves the shareable handle back to the frozen
// (template, data) pair for the public page.
func (h *InvitationService) GetPublicBySlug(ctx context.Context, slug string) (domains.PublicInvitation, error) {
	invitation, err := h.provider.GetBySlug(ctx, slug)
	if err != nil {
		return domains.PublicInvitation{}, err
	}
	template, err := h.templates.GetTemplateByID(ctx, invitation.TemplateID)
	if err != nil {
		slog.Error("load template for public invitation failed", "err", err, "slug", slug)
		return domains.PublicInvitation{}, err
	}
	return domains.PublicInvitation{Invitation: invitation, Template: template}, nil
}

// RenderBySlug produces the composed public document for a persisted
// invitation.
func (h *InvitationService) RenderBySlug(ctx context.Context, slug string) (domains.RenderedDocument, error) {
	public, err := h.GetPublicBySlug(ctx, slug)
	if err != nil {
		return domains.RenderedDocument{}, err
	}
	doc := render.Render(public.Template, public.Invitation.Data, public.Invitation.QRCode, render.ModePublished)
	return doc, nil
}
