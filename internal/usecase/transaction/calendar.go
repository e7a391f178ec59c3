package transaction

import (
	"context"
	"time"

	domain "github.com/redsource-ph/redsource-api/internal/domain/transaction"
	"github.com/redsource-ph/redsource-api/internal/timezone"
)

type GetCalendar struct {
	repo  domain.Repository
	cache CalendarCache
}

func NewGetCalendar(
	repo domain.Repository,
	cache CalendarCache,
) *GetCalendar {
	return &GetCalendar{
		repo:  repo,
		cache: cache,
	}
}

func (uc *GetCalendar) Execute(
	ctx context.Context,
	hospitalID uint,
	year int,
	month int,
) (domain.Calendar, error) {

	if cal, ok := uc.cache.Get(ctx, hospitalID, year, month); ok {
		return cal, nil
	}

	loc := timezone.Manila()
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	txs, err := uc.repo.ListTransactionsForPeriod(ctx, hospitalID, start, end)
	if err != nil {
		return nil, err
	}

	cal := domain.BuildCalendar(txs, loc)
	uc.cache.Set(ctx, hospitalID, year, month, cal)

	return cal, nil
}
