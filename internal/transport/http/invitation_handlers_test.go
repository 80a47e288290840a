package httptransport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"invitely/internal/domains"
	"invitely/internal/httpx"
	"invitely/internal/service"
	"invitely/internal/storage"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

// mockInvitationServices is a mock implementation of InvitationServices
type mockInvitationServices struct {
	invitation  domains.Invitation
	invitations []domains.Invitation
	err         error
}

func (m *mockInvitationServices) CreateInvitation(ctx context.Context, ownerID string, payload domains.InvitationCreate) (domains.Invitation, error) {
	if m.err != nil {
		return domains.Invitation{}, m.err
	}
	inv := m.invitation
	inv.OwnerID = ownerID
	inv.TemplateID = payload.TemplateID
	inv.Data = payload.Data
	return inv, nil
}

func (m *mockInvitationServices) GetInvitationByID(ctx context.Context, ownerID, invitationID string) (domains.Invitation, error) {
	if m.err != nil {
		return domains.Invitation{}, m.err
	}
	return m.invitation, nil
}

func (m *mockInvitationServices) GetAllInvitationsByOwner(ctx context.Context, ownerID string) ([]domains.Invitation, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.invitations, nil
}

func authedRequest(method, path, body string, user domains.User) (*httptest.ResponseRecorder, *http.Request) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	loader := &mockUserLoader{user: user}
	req = req.WithContext(httpx.WithUserID(req.Context(), user.ID))
	rec := httptest.NewRecorder()
	return rec, req.WithContext(contextWithUser(rec, req, loader))
}

// contextWithUser runs the CurrentUser middleware once so the handler sees the
// resolved account the way it does behind the router.
func contextWithUser(w http.ResponseWriter, r *http.Request, loader httpx.UserLoader) context.Context {
	var ctx context.Context
	httpx.CurrentUser(loader)(http.HandlerFunc(func(_ http.ResponseWriter, inner *http.Request) {
		ctx = inner.Context()
	})).ServeHTTP(w, r)
	return ctx
}

func TestCreateInvitation_OK(t *testing.T) {
	h := NewInvitationHandlers(
		&mockInvitationServices{invitation: domains.Invitation{ID: "inv-1", Slug: "abc123xyz45"}},
		&mockTemplateServices{template: domains.Template{ID: "classic-elegance", Tier: domains.TierFree}},
		"http://upgrade",
	)

	rec, req := authedRequest(http.MethodPost, "/api/invitations",
		`{"template_id":"classic-elegance","invitation_data":{"bride_name":"Emily","groom_name":"Michael"}}`,
		domains.User{ID: "u1"})

	h.CreateInvitation(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"url_slug":"abc123xyz45"`)
	assert.Contains(t, rec.Body.String(), `"owner_id":"u1"`)
}

func TestCreateInvitation_Anonymous(t *testing.T) {
	h := NewInvitationHandlers(&mockInvitationServices{}, &mockTemplateServices{}, "http://upgrade")

	req := httptest.NewRequest(http.MethodPost, "/api/invitations", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.CreateInvitation(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateInvitation_PremiumTemplateGated(t *testing.T) {
	h := NewInvitationHandlers(
		&mockInvitationServices{},
		&mockTemplateServices{template: domains.Template{ID: "floral-romance", Tier: domains.TierPremium}},
		"http://upgrade",
	)

	rec, req := authedRequest(http.MethodPost, "/api/invitations",
		`{"template_id":"floral-romance","invitation_data":{"bride_name":"Emily","groom_name":"Michael"}}`,
		domains.User{ID: "u1", Premium: false})

	h.CreateInvitation(rec, req)

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Contains(t, rec.Body.String(), "http://upgrade")
}

func TestCreateInvitation_ValidationError(t *testing.T) {
	h := NewInvitationHandlers(
		&mockInvitationServices{err: service.ErrValidation},
		&mockTemplateServices{template: domains.Template{ID: "classic-elegance", Tier: domains.TierFree}},
		"http://upgrade",
	)

	rec, req := authedRequest(http.MethodPost, "/api/invitations",
		`{"template_id":"classic-elegance","invitation_data":{"bride_name":"  "}}`,
		domains.User{ID: "u1"})

	h.CreateInvitation(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateInvitation_SlugExhausted(t *testing.T) {
	h := NewInvitationHandlers(
		&mockInvitationServices{err: service.ErrSlugExhausted},
		&mockTemplateServices{template: domains.Template{ID: "classic-elegance", Tier: domains.TierFree}},
		"http://upgrade",
	)

	rec, req := authedRequest(http.MethodPost, "/api/invitations",
		`{"template_id":"classic-elegance","invitation_data":{"bride_name":"Emily","groom_name":"Michael"}}`,
		domains.User{ID: "u1"})

	h.CreateInvitation(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGetAllInvitations_OK(t *testing.T) {
	h := NewInvitationHandlers(
		&mockInvitationServices{invitations: []domains.Invitation{{ID: "inv-1"}, {ID: "inv-2"}}},
		&mockTemplateServices{},
		"http://upgrade",
	)

	rec, req := authedRequest(http.MethodGet, "/api/invitations", "", domains.User{ID: "u1"})
	h.GetAllInvitations(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"inv-1"`)
	assert.Contains(t, rec.Body.String(), `"inv-2"`)
}

func TestGetInvitation_NotFound(t *testing.T) {
	h := NewInvitationHandlers(
		&mockInvitationServices{err: storage.ErrNotFound},
		&mockTemplateServices{},
		"http://upgrade",
	)

	rec, req := authedRequest(http.MethodGet, "/api/invitations/inv-404", "", domains.User{ID: "u1"})
	req = mux.SetURLVars(req, map[string]string{"id": "inv-404"})
	h.GetInvitation(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
