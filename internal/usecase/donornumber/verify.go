package donornumber

import (
	"context"

	"github.com/redsource-ph/redsource-api/internal/audit"
	domain "github.com/redsource-ph/redsource-api/internal/domain/donornumber"
	"github.com/redsource-ph/redsource-api/internal/httperr"
	"github.com/redsource-ph/redsource-api/internal/models"
)

type Verify struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewVerify(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Verify {
	return &Verify{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Verify) Execute(
	ctx context.Context,
	hospitalID uint,
	actorID uint,
	code string,
) (*models.DonorNumber, error) {

	n, err := uc.repo.GetByCode(ctx, hospitalID, code)
	if err != nil {
		return nil, httperr.ErrBusiness("donor_number_not_found")
	}

	if err := domain.Verify(n); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, n); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		HospitalID: hospitalID,
		ActorID:    &actorID,
		Action:     "donor_number_verified",
		Entity:     "donor_number",
		EntityID:   &n.ID,
	})

	return n, nil
}
