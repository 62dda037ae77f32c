package domain_test

import (
	"strings"
	"testing"

	"github.com/sebsst/Banking-app/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBank(t *testing.T) {
	t.Parallel()

	code := "BNP"
	assert.NoError(t, domain.ValidateBank("BNP Paribas", &code))
	assert.NoError(t, domain.ValidateBank("BNP Paribas", nil))

	t.Run("name bounds", func(t *testing.T) {
		t.Parallel()
		require.Error(t, domain.ValidateBank("B", nil))
		require.Error(t, domain.ValidateBank(strings.Repeat("x", 101), nil))
		assert.NoError(t, domain.ValidateBank(strings.Repeat("x", 100), nil))
	})

	t.Run("code bounds", func(t *testing.T) {
		t.Parallel()
		short := "B"
		long := strings.Repeat("x", 21)
		require.Error(t, domain.ValidateBank("BNP Paribas", &short))
		require.Error(t, domain.ValidateBank("BNP Paribas", &long))
	})
}
