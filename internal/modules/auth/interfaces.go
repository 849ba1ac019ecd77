package auth

import (
	"context"

	"roomdesk/internal/domain"
)

type AccountStore interface {
	Find(ctx context.Context, id string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	Write(ctx context.Context, a *domain.Account) error
	Update(ctx context.Context, a *domain.Account) error
}

type tokenIssuer interface {
	GenerateToken(accountID, accountType string) (string, error)
}
