package event

import (
	"time"

	"github.com/redsource-ph/redsource-api/internal/models"
)

type Phase string

const (
	PhaseUpcoming Phase = "upcoming"
	PhaseCurrent  Phase = "current"
	PhaseDone     Phase = "done"
)

func ParsePhase(raw string) (Phase, bool) {
	switch Phase(raw) {
	case PhaseUpcoming, PhaseCurrent, PhaseDone:
		return Phase(raw), true
	}
	return "", false
}

// Classify buckets an event relative to now: not started yet, running,
// or over. Boundaries are inclusive on the current side.
func Classify(e *models.Event, now time.Time) Phase {
	switch {
	case e.StartDate.After(now):
		return PhaseUpcoming
	case e.EndDate.Before(now):
		return PhaseDone
	}
	return PhaseCurrent
}
