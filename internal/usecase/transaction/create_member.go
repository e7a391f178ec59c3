package transaction

import (
	"context"

	"github.com/redsource-ph/redsource-api/internal/audit"
	domain "github.com/redsource-ph/redsource-api/internal/domain/transaction"
	"github.com/redsource-ph/redsource-api/internal/httperr"
	"github.com/redsource-ph/redsource-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateMemberInput struct {
	HospitalID uint
	DonorID    uint

	Date    string
	Time    string
	Remarks string
}

// ======================================================
// USE CASE
// ======================================================

type CreateMember struct {
	repo  domain.Repository
	cache CalendarCache
	audit *audit.Dispatcher
}

func NewCreateMember(
	repo domain.Repository,
	cache CalendarCache,
	audit *audit.Dispatcher,
) *CreateMember {
	return &CreateMember{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *CreateMember) Execute(
	ctx context.Context,
	in CreateMemberInput,
) (*models.Transaction, error) {

	hospital, err := uc.repo.GetHospitalByID(ctx, in.HospitalID)
	if err != nil {
		return nil, httperr.ErrBusiness("hospital_not_found")
	}
	if hospital.Status != models.HospitalStatusApproved {
		return nil, httperr.ErrBusiness("hospital_not_available")
	}

	datetime, err := parseDateTime(in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	donorID := in.DonorID
	tx := &models.Transaction{
		HospitalID: in.HospitalID,
		Datetime:   datetime,
		Status:     string(domain.InitialStatus()),
		Remarks:    in.Remarks,
		Type:       string(domain.TypeMember),
		DonorID:    &donorID,
	}

	if err := domain.ValidateParty(domain.TypeMember, tx.DonorID, tx.GuestDonorID); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, in.HospitalID, tx.Datetime)

	uc.audit.Dispatch(audit.Event{
		HospitalID: in.HospitalID,
		ActorID:    &donorID,
		Action:     "transaction_created",
		Entity:     "transaction",
		EntityID:   &tx.ID,
	})

	return tx, nil
}
