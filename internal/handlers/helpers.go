package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/redsource-ph/redsource-api/internal/httperr"
	"github.com/redsource-ph/redsource-api/internal/timezone"
)

// --------------------------------------------------
// Business error mapping
// --------------------------------------------------

var businessMessages = map[string]string{
	"remarks_required":          "Remarks are required when resolving an appointment.",
	"invalid_state":             "The appointment can no longer be changed.",
	"invalid_status":            "Unknown appointment status.",
	"invalid_type":              "Unknown appointment type.",
	"inconsistent_party":        "Appointment donor does not match its type.",
	"invalid_date_or_time":      "Invalid date or time.",
	"invalid_age":               "Age must be between 16 and 70.",
	"invalid_donor_id":          "Invalid donor number.",
	"transaction_not_found":     "Appointment not found.",
	"hospital_not_found":        "Hospital not found.",
	"hospital_not_available":    "Hospital is not accepting appointments.",
	"donor_number_not_found":    "Donor number not found.",
	"donor_number_exists":       "Donor number already exists for this hospital.",
	"donor_number_used":         "Donor number has already been used.",
	"donor_number_not_verified": "Donor number has not been verified.",
}

// writeBusiness maps a domain rule violation to its HTTP shape. Returns
// false when the error is not a business error.
func writeBusiness(c *gin.Context, err error) bool {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		return false
	}

	msg := businessMessages[code]
	if msg == "" {
		msg = "Request rejected."
	}

	switch code {
	case "transaction_not_found", "hospital_not_found", "donor_number_not_found":
		httperr.NotFound(c, code, msg)
	case "donor_number_exists":
		httperr.Conflict(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}
	return true
}

// --------------------------------------------------
// Time parsing (portal timezone)
// --------------------------------------------------

func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, timezone.Manila())
}

// The guest wizard sends "March 10, 2025" + "8:00 AM"; older builds sent
// an ISO date with a 24h time. Accept both.
func parseGuestDateTime(dateStr, timeStr string) (time.Time, bool) {
	loc := timezone.Manila()

	if t, err := time.ParseInLocation("January 2, 2006 3:04 PM", dateStr+" "+timeStr, loc); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, loc); err == nil {
		return t, true
	}
	return time.Time{}, false
}
