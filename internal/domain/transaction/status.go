package transaction

import "github.com/redsource-ph/redsource-api/internal/httperr"

// ===============================
// Transaction Status
// ===============================

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusReject   Status = "REJECT"
)

// Older portal builds send "SUCCESS" where newer ones send "APPROVED".
// Both mean the same terminal acceptance; storage holds APPROVED only.
const legacyStatusSuccess = "SUCCESS"

// NormalizeStatus maps a raw wire value onto the canonical status set.
func NormalizeStatus(raw string) (Status, error) {
	switch raw {
	case string(StatusPending):
		return StatusPending, nil
	case string(StatusApproved), legacyStatusSuccess:
		return StatusApproved, nil
	case string(StatusReject):
		return StatusReject, nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

func IsTerminal(s Status) bool {
	return s == StatusApproved || s == StatusReject
}

// CanTransition allows PENDING -> APPROVED|REJECT and nothing else.
// Terminal statuses are frozen: there is deliberately no path back to
// PENDING, so the resolution trail cannot be rewritten.
func CanTransition(from, to Status) error {
	if from != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	if to != StatusApproved && to != StatusReject {
		return httperr.ErrBusiness("invalid_status")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
