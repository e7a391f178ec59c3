package donornumber

import (
	"strings"

	"github.com/redsource-ph/redsource-api/internal/httperr"
	"github.com/redsource-ph/redsource-api/internal/models"
)

// Lifecycle: issued (unverified, unused) -> verified (unused) -> used.
// Deletion is a staff correction for codes that never got consumed.

// ValidateCode checks the staff-typed code before it is recorded.
func ValidateCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" || len(code) > 50 {
		return httperr.ErrBusiness("invalid_donor_id")
	}
	return nil
}

// CanDelete refuses deletion of consumed numbers regardless of the
// verification flag.
func CanDelete(n *models.DonorNumber) error {
	if n.IsUsed {
		return httperr.ErrBusiness("donor_number_used")
	}
	return nil
}

// Verify marks staff confirmation of eligibility. Verifying twice is a
// no-op; a consumed number cannot change anymore.
func Verify(n *models.DonorNumber) error {
	if n.IsUsed {
		return httperr.ErrBusiness("donor_number_used")
	}
	n.IsVerified = true
	return nil
}

// Consume marks the number used by an actual registration. A used number
// is always verified, so unverified codes are refused here.
func Consume(n *models.DonorNumber) error {
	if n.IsUsed {
		return httperr.ErrBusiness("donor_number_used")
	}
	if !n.IsVerified {
		return httperr.ErrBusiness("donor_number_not_verified")
	}
	n.IsUsed = true
	return nil
}
