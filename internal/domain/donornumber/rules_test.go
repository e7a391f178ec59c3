package donornumber

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redsource-ph/redsource-api/internal/httperr"
	"github.com/redsource-ph/redsource-api/internal/models"
)

func TestValidateCode(t *testing.T) {
	assert.NoError(t, ValidateCode("DN-2025-001"))

	for _, code := range []string{"", "   ", strings.Repeat("x", 51)} {
		err := ValidateCode(code)
		assert.True(t, httperr.IsBusiness(err, "invalid_donor_id"), code)
	}
}

func TestCanDelete(t *testing.T) {
	assert.NoError(t, CanDelete(&models.DonorNumber{}))
	assert.NoError(t, CanDelete(&models.DonorNumber{IsVerified: true}))

	err := CanDelete(&models.DonorNumber{IsVerified: true, IsUsed: true})
	assert.True(t, httperr.IsBusiness(err, "donor_number_used"))
}

func TestVerify(t *testing.T) {
	n := &models.DonorNumber{}
	require.NoError(t, Verify(n))
	assert.True(t, n.IsVerified)

	// verifying again is a no-op
	require.NoError(t, Verify(n))
	assert.True(t, n.IsVerified)
}

func TestVerifyUsedFails(t *testing.T) {
	n := &models.DonorNumber{IsVerified: true, IsUsed: true}
	err := Verify(n)
	assert.True(t, httperr.IsBusiness(err, "donor_number_used"))
}

func TestConsume(t *testing.T) {
	n := &models.DonorNumber{IsVerified: true}
	require.NoError(t, Consume(n))
	assert.True(t, n.IsUsed)
}

func TestConsumeUnverifiedFails(t *testing.T) {
	n := &models.DonorNumber{}
	err := Consume(n)
	assert.True(t, httperr.IsBusiness(err, "donor_number_not_verified"))
	assert.False(t, n.IsUsed)
}

func TestConsumeTwiceFails(t *testing.T) {
	n := &models.DonorNumber{IsVerified: true}
	require.NoError(t, Consume(n))

	err := Consume(n)
	assert.True(t, httperr.IsBusiness(err, "donor_number_used"))
}

// A consumed number can always be traced back through a verified state.
func TestUsedImpliesVerified(t *testing.T) {
	n := &models.DonorNumber{}

	require.Error(t, Consume(n))
	require.NoError(t, Verify(n))
	require.NoError(t, Consume(n))

	assert.True(t, n.IsVerified)
	assert.True(t, n.IsUsed)
}
