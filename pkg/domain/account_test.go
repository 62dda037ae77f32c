package domain_test

import (
	"testing"

	"github.com/sebsst/Banking-app/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeIBAN(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "FR1420041010050500013M02606", domain.NormalizeIBAN("fr14 2004 1010 0505 0001 3m02 606"))
	assert.Equal(t, "DE89370400440532013000", domain.NormalizeIBAN("  DE89 3704 0044 0532 0130 00  "))
	assert.Equal(t, "GB29NWBK60161331926819", domain.NormalizeIBAN("GB29NWBK60161331926819"))
}

func TestValidateAccount(t *testing.T) {
	t.Parallel()
	iban := "FR1420041010050500013M02606"

	t.Run("valid with iban", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, domain.ValidateAccount("Compte courant", domain.AccountTypeCurrent, &iban))
	})

	t.Run("valid without iban", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, domain.ValidateAccount("Livret A", domain.AccountTypeSavings, nil))
	})

	t.Run("name too short", func(t *testing.T) {
		t.Parallel()
		err := domain.ValidateAccount("A", domain.AccountTypeCurrent, nil)
		require.Error(t, err)
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "name", ve.Fields[0].Field)
	})

	t.Run("unknown type", func(t *testing.T) {
		t.Parallel()
		err := domain.ValidateAccount("Compte courant", domain.AccountType("checking"), nil)
		require.Error(t, err)
	})

	t.Run("iban too short", func(t *testing.T) {
		t.Parallel()
		short := "FR1420041010"
		err := domain.ValidateAccount("Compte courant", domain.AccountTypeCurrent, &short)
		require.Error(t, err)
	})

	t.Run("iban bad shape", func(t *testing.T) {
		t.Parallel()
		bad := "1R1420041010050500013M02606"
		err := domain.ValidateAccount("Compte courant", domain.AccountTypeCurrent, &bad)
		require.Error(t, err)
	})

	t.Run("collects multiple violations", func(t *testing.T) {
		t.Parallel()
		bad := "XX"
		err := domain.ValidateAccount("A", domain.AccountType("other"), &bad)
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Len(t, ve.Fields, 3)
	})
}

func TestAccountTypeValid(t *testing.T) {
	t.Parallel()
	assert.True(t, domain.AccountTypeCurrent.Valid())
	assert.True(t, domain.AccountTypeSavings.Valid())
	assert.False(t, domain.AccountType("checking").Valid())
	assert.False(t, domain.AccountType("").Valid())
}
