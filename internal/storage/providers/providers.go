package providers

import "github.com/jackc/pgx/v5/pgxpool"

type Providers struct {
	AuthProvider       *AuthProvider
	TemplateProvider   *TemplateProvider
	InvitationProvider *InvitationProvider
}

func New(db *pgxpool.Pool) *Providers {
	return &Providers{
		AuthProvider:       NewAuthProvider(db),
		TemplateProvider:   NewTemplateProvider(db),
		InvitationProvider: NewInvitationProvider(db),
	}
}
