package auth

import (
	"context"
	"testing"

	"roomdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockAccountStore struct {
	mock.Mock
}

func (m *MockAccountStore) Find(ctx context.Context, id string) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountStore) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountStore) Write(ctx context.Context, a *domain.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountStore) Update(ctx context.Context, a *domain.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(accountID, accountType string) (string, error) {
	args := m.Called(accountID, accountType)
	return args.String(0), args.Error(1)
}

func TestService_Register_Success(t *testing.T) {
	store := new(MockAccountStore)
	store.On("FindByEmail", mock.Anything, "new.student@roomdesk.edu").Return(nil, nil)
	store.On("Write", mock.Anything, mock.MatchedBy(func(a *domain.Account) bool {
		return a.Email == "new.student@roomdesk.edu" &&
			a.Type == domain.AccountStudent &&
			a.Status == domain.AccountActive &&
			a.PasswordHash != ""
	})).Return(nil)

	service := NewService(store, new(MockTokenIssuer))

	account, err := service.Register(context.Background(), RegisterRequest{
		Email:    "New.Student@roomdesk.edu",
		Password: "password123",
		Type:     "student",
		OrgID:    "STU-1001",
	})

	assert.NoError(t, err)
	assert.Equal(t, "new.student@roomdesk.edu", account.Email)
	// hash never leaves the service
	assert.Empty(t, account.PasswordHash)
	store.AssertExpectations(t)
}

func TestService_Register_ShortPassword(t *testing.T) {
	service := NewService(new(MockAccountStore), new(MockTokenIssuer))

	_, err := service.Register(context.Background(), RegisterRequest{
		Email:    "x@roomdesk.edu",
		Password: "short",
		Type:     "student",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Register_PrivilegedTypeRejected(t *testing.T) {
	service := NewService(new(MockAccountStore), new(MockTokenIssuer))

	for _, typ := range []string{"admin", "coordinator", "bogus"} {
		_, err := service.Register(context.Background(), RegisterRequest{
			Email:    "x@roomdesk.edu",
			Password: "password123",
			Type:     typ,
		})
		assert.ErrorIs(t, err, ErrValidation, typ)
	}
}

func TestService_Register_EmailTaken(t *testing.T) {
	store := new(MockAccountStore)
	store.On("FindByEmail", mock.Anything, "taken@roomdesk.edu").Return(&domain.Account{ID: "ACC-1"}, nil)

	service := NewService(store, new(MockTokenIssuer))

	_, err := service.Register(context.Background(), RegisterRequest{
		Email:    "taken@roomdesk.edu",
		Password: "password123",
		Type:     "faculty",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Login_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	store := new(MockAccountStore)
	store.On("FindByEmail", mock.Anything, "aruzhan.student@roomdesk.edu").Return(&domain.Account{
		ID:           "ACC-1",
		Type:         domain.AccountStudent,
		Email:        "aruzhan.student@roomdesk.edu",
		PasswordHash: string(hash),
		Status:       domain.AccountActive,
	}, nil)

	issuer := new(MockTokenIssuer)
	issuer.On("GenerateToken", "ACC-1", "student").Return("signed-token", nil)

	service := NewService(store, issuer)

	result, err := service.Login(context.Background(), LoginRequest{
		Email:    "Aruzhan.Student@roomdesk.edu",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", result.AccessToken)
	assert.Empty(t, result.Account.PasswordHash)
}

func TestService_Login_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	store := new(MockAccountStore)
	store.On("FindByEmail", mock.Anything, "aruzhan.student@roomdesk.edu").Return(&domain.Account{
		ID:           "ACC-1",
		PasswordHash: string(hash),
		Status:       domain.AccountActive,
	}, nil)

	service := NewService(store, new(MockTokenIssuer))

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "aruzhan.student@roomdesk.edu",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	store := new(MockAccountStore)
	store.On("FindByEmail", mock.Anything, "ghost@roomdesk.edu").Return(nil, nil)

	service := NewService(store, new(MockTokenIssuer))

	_, err := service.Login(context.Background(), LoginRequest{Email: "ghost@roomdesk.edu", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_BlockedAccount(t *testing.T) {
	store := new(MockAccountStore)
	store.On("FindByEmail", mock.Anything, "blocked@roomdesk.edu").Return(&domain.Account{
		ID:     "ACC-1",
		Status: domain.AccountBlocked,
	}, nil)

	service := NewService(store, new(MockTokenIssuer))

	_, err := service.Login(context.Background(), LoginRequest{Email: "blocked@roomdesk.edu", Password: "password123"})
	assert.ErrorIs(t, err, ErrAccountBlocked)
}
