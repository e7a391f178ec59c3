package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redsource-ph/redsource-api/internal/timezone"
)

func TestParseGuestDateTimeWizardFormat(t *testing.T) {
	got, ok := parseGuestDateTime("March 10, 2025", "8:00 AM")
	require.True(t, ok)

	local := got.In(timezone.Manila())
	assert.Equal(t, "2025-03-10 08:00", local.Format("2006-01-02 15:04"))
}

func TestParseGuestDateTimeISOFallback(t *testing.T) {
	got, ok := parseGuestDateTime("2025-03-10", "20:30")
	require.True(t, ok)

	local := got.In(timezone.Manila())
	assert.Equal(t, "2025-03-10 20:30", local.Format("2006-01-02 15:04"))
}

func TestParseGuestDateTimeRejectsGarbage(t *testing.T) {
	for _, in := range [][2]string{
		{"10/03/2025", "8:00 AM"},
		{"March 10, 2025", "25:00"},
		{"", ""},
	} {
		_, ok := parseGuestDateTime(in[0], in[1])
		assert.False(t, ok, "%s %s", in[0], in[1])
	}
}
