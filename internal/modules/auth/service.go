package auth

import (
	"context"
	"strings"

	"roomdesk/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	accounts AccountStore
	jwt      tokenIssuer
}

func NewService(accounts AccountStore, jwt tokenIssuer) *Service {
	return &Service{accounts: accounts, jwt: jwt}
}

type LoginResult struct {
	Account     *domain.Account
	AccessToken string
}

var registrableTypes = map[domain.AccountType]bool{
	domain.AccountStudent:         true,
	domain.AccountFaculty:         true,
	domain.AccountStaff:           true,
	domain.AccountExternalPartner: true,
}

// Register creates a user account of one of the bookable classes.
// Privileged roles are provisioned out of band.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.Account, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || len(req.Password) < 8 {
		return nil, ErrValidation
	}
	accType := domain.AccountType(strings.ToLower(strings.TrimSpace(req.Type)))
	if !registrableTypes[accType] {
		return nil, ErrValidation
	}

	existing, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		ID:           uuid.NewString(),
		Type:         accType,
		OrgID:        req.OrgID,
		Email:        email,
		PasswordHash: string(hash),
		Status:       domain.AccountActive,
		Verified:     false,
	}
	if err := s.accounts.Write(ctx, account); err != nil {
		return nil, err
	}

	account.PasswordHash = ""
	return account, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	account, err := s.accounts.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}
	if account.Status == domain.AccountBlocked {
		return nil, ErrAccountBlocked
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(account.ID, string(account.Type))
	if err != nil {
		return nil, err
	}

	account.PasswordHash = ""
	return &LoginResult{Account: account, AccessToken: token}, nil
}

func (s *Service) CurrentAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accounts.Find(ctx, accountID)
	if err != nil || account == nil {
		return nil, err
	}
	account.PasswordHash = ""
	return account, nil
}
