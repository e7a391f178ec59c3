package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/redsource-ph/redsource-api/internal/domain/transaction"
	"github.com/redsource-ph/redsource-api/internal/models"
)

type TransactionGormRepository struct {
	db *gorm.DB
}

func NewTransactionGormRepository(db *gorm.DB) *TransactionGormRepository {
	return &TransactionGormRepository{db: db}
}

// --------------------------------------------------
// Hospital
// --------------------------------------------------

func (r *TransactionGormRepository) GetHospitalByID(
	ctx context.Context,
	id uint,
) (*models.Hospital, error) {

	var hospital models.Hospital
	if err := r.db.WithContext(ctx).First(&hospital, id).Error; err != nil {
		return nil, err
	}
	return &hospital, nil
}

// --------------------------------------------------
// Transaction (create)
// --------------------------------------------------

func (r *TransactionGormRepository) CreateTransaction(
	ctx context.Context,
	tx *models.Transaction,
) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *TransactionGormRepository) CreateGuestAppointment(
	ctx context.Context,
	guest *models.GuestDonor,
	tx *models.Transaction,
) error {

	return r.db.WithContext(ctx).Transaction(func(dbtx *gorm.DB) error {
		if err := dbtx.Create(guest).Error; err != nil {
			return err
		}

		tx.GuestDonorID = &guest.ID
		return dbtx.Create(tx).Error
	})
}

// --------------------------------------------------
// Transaction (read)
// --------------------------------------------------

func (r *TransactionGormRepository) GetTransactionForHospital(
	ctx context.Context,
	transactionID uint,
	hospitalID uint,
) (*models.Transaction, error) {

	var tx models.Transaction
	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Preload("GuestDonor").
		Where("id = ? AND hospital_id = ?", transactionID, hospitalID).
		First(&tx).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *TransactionGormRepository) GetTransactionForDonor(
	ctx context.Context,
	transactionID uint,
	donorID uint,
) (*models.Transaction, error) {

	var tx models.Transaction
	if err := r.db.WithContext(ctx).
		Where("id = ? AND donor_id = ?", transactionID, donorID).
		First(&tx).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *TransactionGormRepository) ListTransactionsForHospital(
	ctx context.Context,
	hospitalID uint,
) ([]models.Transaction, error) {

	var txs []models.Transaction
	if err := r.db.WithContext(ctx).
		Preload("Hospital").
		Preload("Donor").
		Preload("GuestDonor").
		Where("hospital_id = ?", hospitalID).
		Order("datetime ASC").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *TransactionGormRepository) ListTransactionsForDonor(
	ctx context.Context,
	donorID uint,
) ([]models.Transaction, error) {

	var txs []models.Transaction
	if err := r.db.WithContext(ctx).
		Preload("Hospital").
		Preload("Donor").
		Where("donor_id = ?", donorID).
		Order("datetime DESC").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *TransactionGormRepository) ListTransactionsForPeriod(
	ctx context.Context,
	hospitalID uint,
	start time.Time,
	end time.Time,
) ([]models.Transaction, error) {

	var txs []models.Transaction
	if err := r.db.WithContext(ctx).
		Preload("Donor").
		Preload("GuestDonor").
		Where(
			"hospital_id = ? AND datetime >= ? AND datetime < ?",
			hospitalID, start, end,
		).
		Order("datetime ASC").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// --------------------------------------------------
// Transaction (mutate)
// --------------------------------------------------

func (r *TransactionGormRepository) UpdateTransaction(
	ctx context.Context,
	tx *models.Transaction,
) error {
	return r.db.WithContext(ctx).Save(tx).Error
}

func (r *TransactionGormRepository) DeleteTransaction(
	ctx context.Context,
	tx *models.Transaction,
) error {
	return r.db.WithContext(ctx).Delete(tx).Error
}

// Compile-time check
var _ domain.Repository = (*TransactionGormRepository)(nil)
