package transaction

import (
	"sort"
	"time"

	"github.com/redsource-ph/redsource-api/internal/models"
)

// ===============================
// Hospital Calendar
// ===============================

// One appointment stands for one blood unit on the calendar.
const ScreeningType = "Blood Donation"

type CalendarEntry struct {
	ID            uint   `json:"id"`
	Time          string `json:"time"`
	PatientName   string `json:"patientName"`
	ScreeningType string `json:"screeningType"`
	BloodUnits    int    `json:"bloodUnits"`
}

type DayBucket struct {
	Date       int             `json:"date"`
	BloodUnits int             `json:"bloodUnits"`
	// Sorted by time-of-day ascending.
	Appointments []CalendarEntry `json:"appointments"`
}

// Calendar maps a local date key (2006-01-02) to its day bucket.
type Calendar map[string]DayBucket

// BuildCalendar groups transactions by their local calendar day in loc.
// The result depends only on the input set, never on fetch order.
func BuildCalendar(txs []models.Transaction, loc *time.Location) Calendar {
	out := Calendar{}

	for _, tx := range txs {
		local := tx.Datetime.In(loc)
		key := local.Format("2006-01-02")

		bucket := out[key]
		bucket.Date = local.Day()
		bucket.BloodUnits++
		bucket.Appointments = append(bucket.Appointments, CalendarEntry{
			ID:            tx.ID,
			Time:          local.Format("15:04"),
			PatientName:   displayName(&tx),
			ScreeningType: ScreeningType,
			BloodUnits:    1,
		})
		out[key] = bucket
	}

	for key, bucket := range out {
		entries := bucket.Appointments
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].Time != entries[j].Time {
				return entries[i].Time < entries[j].Time
			}
			return entries[i].ID < entries[j].ID
		})
		bucket.Appointments = entries
		out[key] = bucket
	}

	return out
}

func displayName(tx *models.Transaction) string {
	switch {
	case tx.Donor != nil:
		return tx.Donor.Username
	case tx.GuestDonor != nil:
		return tx.GuestDonor.Username
	}
	return ""
}
