package httptransport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"invitely/internal/domains"
	"invitely/internal/httpx"
	"invitely/internal/storage"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

// mockTemplateServices is a mock implementation of TemplateServices
type mockTemplateServices struct {
	template domains.Template
	err      error
}

func (m *mockTemplateServices) ListTemplates(ctx context.Context) ([]domains.TemplateSummary, error) {
	return []domains.TemplateSummary{{ID: m.template.ID, Tier: m.template.Tier}}, m.err
}

func (m *mockTemplateServices) GetTemplateByID(ctx context.Context, templateID string) (domains.Template, error) {
	if m.err != nil {
		return domains.Template{}, m.err
	}
	return m.template, nil
}

func (m *mockTemplateServices) RenderSample(ctx context.Context, templateID string) (domains.RenderedDocument, error) {
	if m.err != nil {
		return domains.RenderedDocument{}, m.err
	}
	return domains.RenderedDocument{Body: "<h1>Emily & Michael</h1>", Style: m.template.Style}, nil
}

func (m *mockTemplateServices) RenderPreview(ctx context.Context, templateID string, data domains.InvitationData) (domains.RenderedDocument, error) {
	if m.err != nil {
		return domains.RenderedDocument{}, m.err
	}
	return domains.RenderedDocument{Body: "<h1>" + data.BrideName + "</h1>", Style: m.template.Style}, nil
}

// mockUserLoader is a mock implementation of httpx.UserLoader
type mockUserLoader struct {
	user domains.User
	err  error
}

func (m *mockUserLoader) GetUserByID(ctx context.Context, userID string) (domains.User, error) {
	if m.err != nil {
		return domains.User{}, m.err
	}
	return m.user, nil
}

func previewRequest(t *testing.T, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/templates/floral-romance/preview", strings.NewReader(body))
	return mux.SetURLVars(req, map[string]string{"id": "floral-romance"})
}

func TestRenderPreview_AnonymousRequiresLogin(t *testing.T) {
	h := NewTemplateHandlers(&mockTemplateServices{template: domains.Template{ID: "floral-romance", Tier: domains.TierFree}}, "http://upgrade")

	rec := httptest.NewRecorder()
	h.RenderPreview(rec, previewRequest(t, `{}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRenderPreview_NonPremiumUserRequiresUpgrade(t *testing.T) {
	h := NewTemplateHandlers(&mockTemplateServices{template: domains.Template{ID: "floral-romance", Tier: domains.TierPremium}}, "http://upgrade")
	loader := &mockUserLoader{user: domains.User{ID: "u1", Premium: false}}

	req := previewRequest(t, `{}`)
	req = req.WithContext(httpx.WithUserID(req.Context(), "u1"))

	rec := httptest.NewRecorder()
	httpx.CurrentUser(loader)(http.HandlerFunc(h.RenderPreview)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Contains(t, rec.Body.String(), "http://upgrade")
}

func TestRenderPreview_PremiumUserAllowed(t *testing.T) {
	h := NewTemplateHandlers(&mockTemplateServices{template: domains.Template{ID: "floral-romance", Tier: domains.TierPremium}}, "http://upgrade")
	loader := &mockUserLoader{user: domains.User{ID: "u2", Premium: true}}

	req := previewRequest(t, `{"bride_name":"Ana"}`)
	req = req.WithContext(httpx.WithUserID(req.Context(), "u2"))

	rec := httptest.NewRecorder()
	httpx.CurrentUser(loader)(http.HandlerFunc(h.RenderPreview)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ana")
}

func TestRenderPreview_TemplateNotFound(t *testing.T) {
	h := NewTemplateHandlers(&mockTemplateServices{err: storage.ErrNotFound}, "http://upgrade")

	rec := httptest.NewRecorder()
	h.RenderPreview(rec, previewRequest(t, `{}`))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRenderSample_OK(t *testing.T) {
	h := NewTemplateHandlers(&mockTemplateServices{template: domains.Template{ID: "classic-elegance", Tier: domains.TierFree}}, "http://upgrade")

	req := httptest.NewRequest(http.MethodGet, "/api/templates/classic-elegance/sample", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "classic-elegance"})

	rec := httptest.NewRecorder()
	h.RenderSample(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Emily")
}
