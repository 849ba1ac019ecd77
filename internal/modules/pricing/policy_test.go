package pricing

import (
	"testing"

	"roomdesk/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestFactory_PolicyFor_Rates(t *testing.T) {
	factory := NewFactory()

	cases := []struct {
		typ  domain.AccountType
		want float64
	}{
		{domain.AccountStudent, 20},
		{domain.AccountFaculty, 30},
		{domain.AccountStaff, 40},
		{domain.AccountExternalPartner, 50},
	}

	for _, tc := range cases {
		account := &domain.Account{Type: tc.typ}
		assert.Equal(t, tc.want, factory.PolicyFor(account).HourlyRate(), string(tc.typ))
	}
}

func TestFactory_PolicyFor_FallsBackToStandard(t *testing.T) {
	factory := NewFactory()

	assert.IsType(t, StandardPolicy{}, factory.PolicyFor(nil))
	assert.Equal(t, 20.0, factory.PolicyFor(nil).HourlyRate())

	admin := &domain.Account{Type: domain.AccountAdmin}
	assert.IsType(t, StandardPolicy{}, factory.PolicyFor(admin))

	unknown := &domain.Account{Type: domain.AccountType("visitor")}
	assert.Equal(t, 20.0, factory.PolicyFor(unknown).HourlyRate())
}
