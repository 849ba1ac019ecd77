package repository

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"roomdesk/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CoordinatorEmail is the fixed address of the chief event coordinator, a
// privileged account that is never persisted but always resolvable.
const CoordinatorEmail = "events.coordinator@roomdesk.edu"

const coordinatorID = "ACC-COORDINATOR"

var (
	coordinatorOnce sync.Once
	coordinator     *domain.Account
)

func coordinatorAccount() *domain.Account {
	coordinatorOnce.Do(func() {
		hash, _ := bcrypt.GenerateFromPassword([]byte("coordinator"), bcrypt.DefaultCost)
		coordinator = &domain.Account{
			ID:           coordinatorID,
			Type:         domain.AccountCoordinator,
			Email:        CoordinatorEmail,
			PasswordHash: string(hash),
			Status:       domain.AccountActive,
			Verified:     true,
			CreatedAt:    time.Now(),
		}
	})
	return coordinator
}

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

type accountModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Type         string    `gorm:"column:type"`
	OrgID        string    `gorm:"column:org_id"`
	Email        string    `gorm:"column:email;index"`
	PasswordHash string    `gorm:"column:password_hash"`
	Status       string    `gorm:"column:status"`
	Verified     bool      `gorm:"column:verified"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (accountModel) TableName() string { return "accounts" }

func toDomainAccount(m accountModel) *domain.Account {
	return &domain.Account{
		ID:           m.ID,
		Type:         domain.AccountType(m.Type),
		OrgID:        m.OrgID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Status:       domain.AccountStatus(m.Status),
		Verified:     m.Verified,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toAccountModel(a *domain.Account) accountModel {
	return accountModel{
		ID:           a.ID,
		Type:         string(a.Type),
		OrgID:        a.OrgID,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Status:       string(a.Status),
		Verified:     a.Verified,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (r *AccountRepository) Find(ctx context.Context, id string) (*domain.Account, error) {
	if id == coordinatorID {
		return coordinatorAccount(), nil
	}
	var m accountModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainAccount(m), nil
}

// FindByEmail resolves accounts by their case-insensitive natural key. The
// coordinator singleton is matched before touching storage.
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	email = strings.TrimSpace(email)
	if strings.EqualFold(email, CoordinatorEmail) {
		return coordinatorAccount(), nil
	}
	var m accountModel
	tx := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainAccount(m), nil
}

func (r *AccountRepository) Write(ctx context.Context, a *domain.Account) error {
	m := toAccountModel(a)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*a = *toDomainAccount(m)
	return nil
}

func (r *AccountRepository) Update(ctx context.Context, a *domain.Account) error {
	m := toAccountModel(a)
	tx := r.db.WithContext(ctx).Model(&accountModel{}).Where("id = ?", a.ID).Updates(&m)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AccountRepository) FindAll(ctx context.Context) ([]domain.Account, error) {
	var ms []accountModel
	if tx := r.db.WithContext(ctx).Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Account, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainAccount(m))
	}
	return out, nil
}
