package transaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redsource-ph/redsource-api/internal/httperr"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want Status
	}{
		{"PENDING", StatusPending},
		{"APPROVED", StatusApproved},
		{"SUCCESS", StatusApproved},
		{"REJECT", StatusReject},
	}

	for _, tt := range tests {
		got, err := NormalizeStatus(tt.raw)
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestNormalizeStatusRejectsUnknown(t *testing.T) {
	for _, raw := range []string{"", "approved", "DONE", "CANCELLED", "success"} {
		_, err := NormalizeStatus(raw)
		assert.True(t, httperr.IsBusiness(err, "invalid_status"), raw)
	}
}

func TestCanTransition(t *testing.T) {
	assert.NoError(t, CanTransition(StatusPending, StatusApproved))
	assert.NoError(t, CanTransition(StatusPending, StatusReject))
}

func TestCanTransitionTerminalIsFrozen(t *testing.T) {
	for _, from := range []Status{StatusApproved, StatusReject} {
		for _, to := range []Status{StatusPending, StatusApproved, StatusReject} {
			err := CanTransition(from, to)
			assert.True(t, httperr.IsBusiness(err, "invalid_state"), "%s -> %s", from, to)
		}
	}
}

func TestCanTransitionNoPathBackToPending(t *testing.T) {
	err := CanTransition(StatusPending, StatusPending)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(StatusPending))
	assert.True(t, IsTerminal(StatusApproved))
	assert.True(t, IsTerminal(StatusReject))
}
