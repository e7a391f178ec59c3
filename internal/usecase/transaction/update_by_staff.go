package transaction

import (
	"context"

	"github.com/redsource-ph/redsource-api/internal/audit"
	domain "github.com/redsource-ph/redsource-api/internal/domain/transaction"
	"github.com/redsource-ph/redsource-api/internal/httperr"
	"github.com/redsource-ph/redsource-api/internal/models"
	"github.com/redsource-ph/redsource-api/internal/timezone"
)

type StaffUpdateInput struct {
	Date    *string
	Time    *string
	Remarks *string
	Status  *string
}

type UpdateByStaff struct {
	repo  domain.Repository
	cache CalendarCache
	audit *audit.Dispatcher
}

func NewUpdateByStaff(
	repo domain.Repository,
	cache CalendarCache,
	audit *audit.Dispatcher,
) *UpdateByStaff {
	return &UpdateByStaff{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *UpdateByStaff) Execute(
	ctx context.Context,
	hospitalID uint,
	actorID uint,
	transactionID uint,
	in StaffUpdateInput,
) (*models.Transaction, error) {

	tx, err := uc.repo.GetTransactionForHospital(ctx, transactionID, hospitalID)
	if err != nil {
		return nil, httperr.ErrBusiness("transaction_not_found")
	}

	oldDatetime := tx.Datetime

	if in.Date != nil || in.Time != nil {
		if in.Date == nil || in.Time == nil {
			return nil, httperr.ErrBusiness("invalid_date_or_time")
		}
		datetime, err := parseDateTime(*in.Date, *in.Time)
		if err != nil {
			return nil, err
		}
		tx.Datetime = datetime
	}

	if in.Status != nil {
		to, err := domain.NormalizeStatus(*in.Status)
		if err != nil {
			return nil, err
		}

		// A status change must carry remarks in the same request.
		if to != domain.Status(tx.Status) {
			var remarks string
			if in.Remarks != nil {
				remarks = *in.Remarks
			}
			if err := domain.Transition(tx, to, remarks, timezone.Now()); err != nil {
				return nil, err
			}
		} else if in.Remarks != nil {
			tx.Remarks = *in.Remarks
		}
	} else if in.Remarks != nil {
		tx.Remarks = *in.Remarks
	}

	if err := uc.repo.UpdateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, hospitalID, oldDatetime)
	uc.cache.Invalidate(ctx, hospitalID, tx.Datetime)

	uc.audit.Dispatch(audit.Event{
		HospitalID: hospitalID,
		ActorID:    &actorID,
		Action:     "transaction_updated",
		Entity:     "transaction",
		EntityID:   &tx.ID,
	})

	return tx, nil
}
