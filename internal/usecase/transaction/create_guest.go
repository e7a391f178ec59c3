package transaction

import (
	"context"
	"time"

	"github.com/redsource-ph/redsource-api/internal/audit"
	domain "github.com/redsource-ph/redsource-api/internal/domain/transaction"
	"github.com/redsource-ph/redsource-api/internal/httperr"
	"github.com/redsource-ph/redsource-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

// Field-level format checks happen at the intake boundary; this input is
// already structurally valid.
type CreateGuestInput struct {
	HospitalID uint
	Datetime   time.Time

	Name               string
	Address            string
	BloodType          string
	Phone              string
	Email              string
	Sex                string
	Age                int
	DoMedicalCondition bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateGuest struct {
	repo  domain.Repository
	cache CalendarCache
	audit *audit.Dispatcher
}

func NewCreateGuest(
	repo domain.Repository,
	cache CalendarCache,
	audit *audit.Dispatcher,
) *CreateGuest {
	return &CreateGuest{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *CreateGuest) Execute(
	ctx context.Context,
	in CreateGuestInput,
) (*models.Transaction, error) {

	hospital, err := uc.repo.GetHospitalByID(ctx, in.HospitalID)
	if err != nil {
		return nil, httperr.ErrBusiness("hospital_not_found")
	}
	if hospital.Status != models.HospitalStatusApproved {
		return nil, httperr.ErrBusiness("hospital_not_available")
	}

	if in.Age < 16 || in.Age > 70 {
		return nil, httperr.ErrBusiness("invalid_age")
	}

	guest := &models.GuestDonor{
		Username:           in.Name,
		Address:            in.Address,
		BloodType:          in.BloodType,
		PhoneNumber:        in.Phone,
		Email:              in.Email,
		Sex:                in.Sex,
		Age:                in.Age,
		DoMedicalCondition: in.DoMedicalCondition,
	}

	tx := &models.Transaction{
		HospitalID: in.HospitalID,
		Datetime:   in.Datetime,
		Status:     string(domain.InitialStatus()),
		Type:       string(domain.TypeGuest),
	}

	// Guest donor and appointment land together or not at all. The
	// repository binds GuestDonorID inside the same transaction, and no
	// donor reference exists on this path, so the party invariant holds
	// by construction.
	if err := uc.repo.CreateGuestAppointment(ctx, guest, tx); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, in.HospitalID, tx.Datetime)

	uc.audit.Dispatch(audit.Event{
		HospitalID: in.HospitalID,
		Action:     "guest_appointment_created",
		Entity:     "transaction",
		EntityID:   &tx.ID,
	})

	return tx, nil
}
