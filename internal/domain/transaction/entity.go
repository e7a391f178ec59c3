package transaction

import (
	"strings"
	"time"

	"github.com/redsource-ph/redsource-api/internal/httperr"
	"github.com/redsource-ph/redsource-api/internal/models"
)

// ===============================
// Appointment Type
// ===============================

type Type string

const (
	TypeMember Type = "MEMBER-APPOINTMENT"
	TypeGuest  Type = "GUEST-APPOINTMENT"
)

func ParseType(raw string) (Type, error) {
	switch raw {
	case string(TypeMember):
		return TypeMember, nil
	case string(TypeGuest):
		return TypeGuest, nil
	}
	return "", httperr.ErrBusiness("invalid_type")
}

// ValidateParty enforces that exactly one of donor/guest is set and that
// it matches the appointment type.
func ValidateParty(t Type, donorID, guestDonorID *uint) error {
	switch t {
	case TypeMember:
		if donorID == nil || guestDonorID != nil {
			return httperr.ErrBusiness("inconsistent_party")
		}
	case TypeGuest:
		if guestDonorID == nil || donorID != nil {
			return httperr.ErrBusiness("inconsistent_party")
		}
	default:
		return httperr.ErrBusiness("invalid_type")
	}
	return nil
}

// ===============================
// Domain Actions
// ===============================

// Transition moves a transaction out of PENDING. Remarks are mandatory:
// a resolution without a reason is rejected before anything is written.
func Transition(tx *models.Transaction, to Status, remarks string, now time.Time) error {
	if err := CanTransition(Status(tx.Status), to); err != nil {
		return err
	}
	if strings.TrimSpace(remarks) == "" {
		return httperr.ErrBusiness("remarks_required")
	}

	tx.Status = string(to)
	tx.Remarks = remarks
	tx.ResolvedAt = &now
	return nil
}

// CanModifyByDonor gates donor-side edit/delete: only while PENDING.
func CanModifyByDonor(tx *models.Transaction) error {
	if Status(tx.Status) != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
