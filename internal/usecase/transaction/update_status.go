package transaction

import (
	"context"

	"github.com/redsource-ph/redsource-api/internal/audit"
	domain "github.com/redsource-ph/redsource-api/internal/domain/transaction"
	"github.com/redsource-ph/redsource-api/internal/httperr"
	"github.com/redsource-ph/redsource-api/internal/models"
	"github.com/redsource-ph/redsource-api/internal/timezone"
)

type UpdateStatus struct {
	repo  domain.Repository
	cache CalendarCache
	audit *audit.Dispatcher
}

func NewUpdateStatus(
	repo domain.Repository,
	cache CalendarCache,
	audit *audit.Dispatcher,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	hospitalID uint,
	actorID uint,
	transactionID uint,
	rawStatus string,
	remarks string,
) (*models.Transaction, error) {

	tx, err := uc.repo.GetTransactionForHospital(ctx, transactionID, hospitalID)
	if err != nil {
		return nil, httperr.ErrBusiness("transaction_not_found")
	}

	to, err := domain.NormalizeStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	now := timezone.Now()
	if err := domain.Transition(tx, to, remarks, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, hospitalID, tx.Datetime)

	uc.audit.Dispatch(audit.Event{
		HospitalID: hospitalID,
		ActorID:    &actorID,
		Action:     "transaction_status_updated",
		Entity:     "transaction",
		EntityID:   &tx.ID,
		Metadata:   map[string]any{"status": to},
	})

	return tx, nil
}
