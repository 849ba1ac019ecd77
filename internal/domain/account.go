package domain

import "time"

type AccountType string

const (
	AccountStudent         AccountType = "student"
	AccountFaculty         AccountType = "faculty"
	AccountStaff           AccountType = "staff"
	AccountExternalPartner AccountType = "external_partner"
	AccountAdmin           AccountType = "admin"
	AccountCoordinator     AccountType = "coordinator"
)

type AccountStatus string

const (
	AccountActive  AccountStatus = "active"
	AccountBlocked AccountStatus = "blocked"
)

type Account struct {
	ID           string        `json:"id"`
	Type         AccountType   `json:"type"`
	OrgID        string        `json:"org_id,omitempty"`
	Email        string        `json:"email" validate:"required,email"`
	PasswordHash string        `json:"-"`
	Status       AccountStatus `json:"status"`
	Verified     bool          `json:"verified"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// IsUser reports whether the account belongs to a bookable user class,
// as opposed to a privileged role without an hourly rate.
func (a *Account) IsUser() bool {
	switch a.Type {
	case AccountStudent, AccountFaculty, AccountStaff, AccountExternalPartner:
		return true
	}
	return false
}
