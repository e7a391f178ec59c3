package transaction

import (
	"time"

	"github.com/redsource-ph/redsource-api/internal/httperr"
	"github.com/redsource-ph/redsource-api/internal/timezone"
)

// The portal sends date and time as separate fields; they merge into one
// point in time in the portal timezone.
func parseDateTime(dateStr, timeStr string) (time.Time, error) {
	t, err := time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		timezone.Manila(),
	)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date_or_time")
	}
	return t, nil
}
