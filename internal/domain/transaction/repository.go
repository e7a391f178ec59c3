package transaction

import (
	"context"
	"time"

	"github.com/redsource-ph/redsource-api/internal/models"
)

type Repository interface {
	// -------- Hospital --------
	GetHospitalByID(
		ctx context.Context,
		id uint,
	) (*models.Hospital, error)

	// -------- Transaction (create) --------
	CreateTransaction(
		ctx context.Context,
		tx *models.Transaction,
	) error

	// CreateGuestAppointment persists the guest donor and the
	// GUEST-APPOINTMENT transaction atomically.
	CreateGuestAppointment(
		ctx context.Context,
		guest *models.GuestDonor,
		tx *models.Transaction,
	) error

	// -------- Transaction (read) --------
	GetTransactionForHospital(
		ctx context.Context,
		transactionID uint,
		hospitalID uint,
	) (*models.Transaction, error)

	GetTransactionForDonor(
		ctx context.Context,
		transactionID uint,
		donorID uint,
	) (*models.Transaction, error)

	ListTransactionsForHospital(
		ctx context.Context,
		hospitalID uint,
	) ([]models.Transaction, error)

	ListTransactionsForDonor(
		ctx context.Context,
		donorID uint,
	) ([]models.Transaction, error)

	ListTransactionsForPeriod(
		ctx context.Context,
		hospitalID uint,
		start time.Time,
		end time.Time,
	) ([]models.Transaction, error)

	// -------- Transaction (mutate) --------
	UpdateTransaction(
		ctx context.Context,
		tx *models.Transaction,
	) error

	DeleteTransaction(
		ctx context.Context,
		tx *models.Transaction,
	) error
}
