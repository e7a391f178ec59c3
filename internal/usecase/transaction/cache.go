package transaction

import (
	"context"
	"time"

	domain "github.com/redsource-ph/redsource-api/internal/domain/transaction"
)

// CalendarCache is what the usecases need from the redis layer. Mutating
// usecases invalidate the month their appointment falls in.
type CalendarCache interface {
	Get(ctx context.Context, hospitalID uint, year, month int) (domain.Calendar, bool)
	Set(ctx context.Context, hospitalID uint, year, month int, cal domain.Calendar)
	Invalidate(ctx context.Context, hospitalID uint, at time.Time)
}
