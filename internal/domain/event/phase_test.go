package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/redsource-ph/redsource-api/internal/models"
)

func TestParsePhase(t *testing.T) {
	for _, raw := range []string{"upcoming", "current", "done"} {
		p, ok := ParsePhase(raw)
		assert.True(t, ok)
		assert.Equal(t, Phase(raw), p)
	}

	_, ok := ParsePhase("finished")
	assert.False(t, ok)
}

func TestClassify(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  Phase
	}{
		{"starts tomorrow", now.AddDate(0, 0, 1), now.AddDate(0, 0, 3), PhaseUpcoming},
		{"running", now.AddDate(0, 0, -1), now.AddDate(0, 0, 1), PhaseCurrent},
		{"ended yesterday", now.AddDate(0, 0, -3), now.AddDate(0, 0, -1), PhaseDone},
		{"starts right now", now, now.AddDate(0, 0, 1), PhaseCurrent},
		{"ends right now", now.AddDate(0, 0, -1), now, PhaseCurrent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &models.Event{StartDate: tt.start, EndDate: tt.end}
			assert.Equal(t, tt.want, Classify(e, now))
		})
	}
}
