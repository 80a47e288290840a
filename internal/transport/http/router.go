package httptransport

import (
	"net/http"

	"invitely/internal/artifact"
	"invitely/internal/config"
	"invitely/internal/httpx"
	"invitely/internal/service"
	"invitely/internal/storage/providers"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
)

func Router(db *pgxpool.Pool, cfg *config.Config) *mux.Router {
	router := mux.NewRouter()

	allProviders := providers.New(db)
	artifacts := artifact.NewClient(cfg.Artifact.URL)

	authService := service.NewAuthService(allProviders.AuthProvider, cfg.JWT.Secret)
	templateService := service.NewTemplateService(allProviders.TemplateProvider)
	invitationService := service.NewInvitationService(
		allProviders.InvitationProvider,
		allProviders.TemplateProvider,
		artifacts,
		cfg.Frontend.URL,
	)

	authHandler := NewAuthHandlers(authService)
	templateHandler := NewTemplateHandlers(templateService, cfg.Payment.CheckoutURL)
	invitationHandler := NewInvitationHandlers(invitationService, templateService, cfg.Payment.CheckoutURL)
	publicHandler := NewPublicHandlers(invitationService)

	api := router.PathPrefix("/api").Subrouter()

	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", authHandler.Refresh).Methods(http.MethodPost)
	auth.HandleFunc("/me", authHandler.Me).Methods(http.MethodGet)

	// catalog browsing is open to everyone
	api.HandleFunc("/templates", templateHandler.ListTemplates).Methods(http.MethodGet)
	api.HandleFunc("/templates/{id}", templateHandler.GetTemplate).Methods(http.MethodGet)
	api.HandleFunc("/templates/{id}/sample", templateHandler.RenderSample).Methods(http.MethodGet)

	// live preview runs through the access gate, anonymous requests must be
	// distinguishable from invalid tokens
	preview := api.PathPrefix("/templates").Subrouter()
	preview.Use(httpx.OptionalAuth(cfg.JWT.Secret), httpx.CurrentUser(allProviders.AuthProvider))
	preview.HandleFunc("/{id}/preview", templateHandler.RenderPreview).Methods(http.MethodPost)

	invitations := api.PathPrefix("/invitations").Subrouter()
	invitations.Use(httpx.Protected(cfg.JWT.Secret), httpx.CurrentUser(allProviders.AuthProvider))
	invitations.HandleFunc("", invitationHandler.CreateInvitation).Methods(http.MethodPost)
	invitations.HandleFunc("", invitationHandler.GetAllInvitations).Methods(http.MethodGet)
	invitations.HandleFunc("/{id}", invitationHandler.GetInvitation).Methods(http.MethodGet)

	public := api.PathPrefix("/public").Subrouter()
	public.HandleFunc("/invitations/{slug}", publicHandler.GetPublicInvitation).Methods(http.MethodGet)
	public.HandleFunc("/invitations/{slug}/page", publicHandler.RenderPage).Methods(http.MethodGet)

	return router
}
