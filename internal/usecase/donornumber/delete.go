package donornumber

import (
	"context"

	"github.com/redsource-ph/redsource-api/internal/audit"
	domain "github.com/redsource-ph/redsource-api/internal/domain/donornumber"
	"github.com/redsource-ph/redsource-api/internal/httperr"
)

// Delete removes an unconsumed code. Used numbers are part of a donor's
// registration history and stay.
type Delete struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDelete(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Delete {
	return &Delete{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Delete) Execute(
	ctx context.Context,
	hospitalID uint,
	actorID uint,
	code string,
) error {

	n, err := uc.repo.GetByCode(ctx, hospitalID, code)
	if err != nil {
		return httperr.ErrBusiness("donor_number_not_found")
	}

	if err := domain.CanDelete(n); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, n); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		HospitalID: hospitalID,
		ActorID:    &actorID,
		Action:     "donor_number_deleted",
		Entity:     "donor_number",
		EntityID:   &n.ID,
		Metadata:   map[string]any{"donor_id": code},
	})

	return nil
}
