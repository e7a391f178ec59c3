package transaction

import (
	"context"

	"github.com/redsource-ph/redsource-api/internal/audit"
	domain "github.com/redsource-ph/redsource-api/internal/domain/transaction"
	"github.com/redsource-ph/redsource-api/internal/httperr"
)

// DeleteByDonor removes the donor's own appointment while PENDING.
type DeleteByDonor struct {
	repo  domain.Repository
	cache CalendarCache
	audit *audit.Dispatcher
}

func NewDeleteByDonor(
	repo domain.Repository,
	cache CalendarCache,
	audit *audit.Dispatcher,
) *DeleteByDonor {
	return &DeleteByDonor{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *DeleteByDonor) Execute(
	ctx context.Context,
	donorID uint,
	transactionID uint,
) error {

	tx, err := uc.repo.GetTransactionForDonor(ctx, transactionID, donorID)
	if err != nil {
		return httperr.ErrBusiness("transaction_not_found")
	}

	if err := domain.CanModifyByDonor(tx); err != nil {
		return err
	}

	if err := uc.repo.DeleteTransaction(ctx, tx); err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, tx.HospitalID, tx.Datetime)

	uc.audit.Dispatch(audit.Event{
		HospitalID: tx.HospitalID,
		ActorID:    &donorID,
		Action:     "transaction_deleted_by_donor",
		Entity:     "transaction",
		EntityID:   &tx.ID,
	})

	return nil
}

// DeleteByStaff is the explicit staff removal; it is not state-gated.
type DeleteByStaff struct {
	repo  domain.Repository
	cache CalendarCache
	audit *audit.Dispatcher
}

func NewDeleteByStaff(
	repo domain.Repository,
	cache CalendarCache,
	audit *audit.Dispatcher,
) *DeleteByStaff {
	return &DeleteByStaff{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *DeleteByStaff) Execute(
	ctx context.Context,
	hospitalID uint,
	actorID uint,
	transactionID uint,
) error {

	tx, err := uc.repo.GetTransactionForHospital(ctx, transactionID, hospitalID)
	if err != nil {
		return httperr.ErrBusiness("transaction_not_found")
	}

	if err := uc.repo.DeleteTransaction(ctx, tx); err != nil {
		return err
	}

	uc.cache.Invalidate(ctx, hospitalID, tx.Datetime)

	uc.audit.Dispatch(audit.Event{
		HospitalID: hospitalID,
		ActorID:    &actorID,
		Action:     "transaction_deleted",
		Entity:     "transaction",
		EntityID:   &tx.ID,
	})

	return nil
}
