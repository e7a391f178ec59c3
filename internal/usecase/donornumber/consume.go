package donornumber

import (
	"context"

	domain "github.com/redsource-ph/redsource-api/internal/domain/donornumber"
	"github.com/redsource-ph/redsource-api/internal/httperr"
	"github.com/redsource-ph/redsource-api/internal/models"
)

// Consume marks a number used during donor registration. Lookup is
// scoped to the issuing hospital: the same code may exist at several
// hospitals, and only the named hospital's copy is eligible.
type Consume struct {
	repo domain.Repository
}

func NewConsume(repo domain.Repository) *Consume {
	return &Consume{repo: repo}
}

func (uc *Consume) Execute(
	ctx context.Context,
	hospitalID uint,
	code string,
) (*models.DonorNumber, error) {

	n, err := uc.repo.GetByCode(ctx, hospitalID, code)
	if err != nil {
		return nil, httperr.ErrBusiness("donor_number_not_found")
	}

	if err := domain.Consume(n); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, n); err != nil {
		return nil, err
	}

	return n, nil
}
