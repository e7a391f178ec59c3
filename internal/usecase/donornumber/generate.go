package donornumber

import (
	"context"
	"strings"

	"github.com/redsource-ph/redsource-api/internal/audit"
	domain "github.com/redsource-ph/redsource-api/internal/domain/donornumber"
	"github.com/redsource-ph/redsource-api/internal/httperr"
	"github.com/redsource-ph/redsource-api/internal/models"
)

// Generate records a staff-typed donor code as issued: unverified and
// unused until staff confirms eligibility and a registration consumes it.
type Generate struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewGenerate(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Generate {
	return &Generate{
		repo:  repo,
		audit: audit,
	}
}

func (uc *Generate) Execute(
	ctx context.Context,
	hospitalID uint,
	actorID uint,
	code string,
) (*models.DonorNumber, error) {

	code = strings.TrimSpace(code)
	if err := domain.ValidateCode(code); err != nil {
		return nil, err
	}

	if existing, err := uc.repo.GetByCode(ctx, hospitalID, code); err == nil && existing != nil {
		return nil, httperr.ErrBusiness("donor_number_exists")
	}

	n := &models.DonorNumber{
		DonorID:    code,
		HospitalID: hospitalID,
	}

	if err := uc.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		HospitalID: hospitalID,
		ActorID:    &actorID,
		Action:     "donor_number_generated",
		Entity:     "donor_number",
		EntityID:   &n.ID,
		Metadata:   map[string]any{"donor_id": code},
	})

	return n, nil
}
