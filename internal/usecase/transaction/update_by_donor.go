package transaction

import (
	"context"

	"github.com/redsource-ph/redsource-api/internal/audit"
	domain "github.com/redsource-ph/redsource-api/internal/domain/transaction"
	"github.com/redsource-ph/redsource-api/internal/httperr"
	"github.com/redsource-ph/redsource-api/internal/models"
)

type DonorUpdateInput struct {
	Date    *string
	Time    *string
	Remarks *string
}

// UpdateByDonor lets the owning donor reschedule or amend remarks, but
// only while the appointment is still PENDING.
type UpdateByDonor struct {
	repo  domain.Repository
	cache CalendarCache
	audit *audit.Dispatcher
}

func NewUpdateByDonor(
	repo domain.Repository,
	cache CalendarCache,
	audit *audit.Dispatcher,
) *UpdateByDonor {
	return &UpdateByDonor{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *UpdateByDonor) Execute(
	ctx context.Context,
	donorID uint,
	transactionID uint,
	in DonorUpdateInput,
) (*models.Transaction, error) {

	tx, err := uc.repo.GetTransactionForDonor(ctx, transactionID, donorID)
	if err != nil {
		return nil, httperr.ErrBusiness("transaction_not_found")
	}

	if err := domain.CanModifyByDonor(tx); err != nil {
		return nil, err
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

	if in.Remarks != nil {
		tx.Remarks = *in.Remarks
	}

	if err := uc.repo.UpdateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, tx.HospitalID, oldDatetime)
	uc.cache.Invalidate(ctx, tx.HospitalID, tx.Datetime)

	uc.audit.Dispatch(audit.Event{
		HospitalID: tx.HospitalID,
		ActorID:    &donorID,
		Action:     "transaction_updated_by_donor",
		Entity:     "transaction",
		EntityID:   &tx.ID,
	})

	return tx, nil
}
