// Package pricing selects the hourly rate charged for a booking based on
// the account class.
package pricing

import "roomdesk/internal/domain"

type Policy interface {
	HourlyRate() float64
}

type StudentPolicy struct{}

func (StudentPolicy) HourlyRate() float64 { return 20 }

type FacultyPolicy struct{}

func (FacultyPolicy) HourlyRate() float64 { return 30 }

type StaffPolicy struct{}

func (StaffPolicy) HourlyRate() float64 { return 40 }

type ExternalPartnerPolicy struct{}

func (ExternalPartnerPolicy) HourlyRate() float64 { return 50 }

// StandardPolicy is the fallback for accounts without a mapped class.
type StandardPolicy struct{}

func (StandardPolicy) HourlyRate() float64 { return 20 }

// Factory dispatches on the concrete account type. Unmapped types and nil
// accounts fall back to the standard policy.
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) PolicyFor(account *domain.Account) Policy {
	if account == nil {
		return StandardPolicy{}
	}
	switch account.Type {
	case domain.AccountStudent:
		return StudentPolicy{}
	case domain.AccountFaculty:
		return FacultyPolicy{}
	case domain.AccountStaff:
		return StaffPolicy{}
	case domain.AccountExternalPartner:
		return ExternalPartnerPolicy{}
	}
	return StandardPolicy{}
}
