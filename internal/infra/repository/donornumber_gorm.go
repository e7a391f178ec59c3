package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/redsource-ph/redsource-api/internal/domain/donornumber"
	"github.com/redsource-ph/redsource-api/internal/models"
)

type DonorNumberGormRepository struct {
	db *gorm.DB
}

func NewDonorNumberGormRepository(db *gorm.DB) *DonorNumberGormRepository {
	return &DonorNumberGormRepository{db: db}
}

func (r *DonorNumberGormRepository) Create(
	ctx context.Context,
	n *models.DonorNumber,
) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *DonorNumberGormRepository) GetByCode(
	ctx context.Context,
	hospitalID uint,
	code string,
) (*models.DonorNumber, error) {

	var n models.DonorNumber
	if err := r.db.WithContext(ctx).
		Where("donor_id = ? AND hospital_id = ?", code, hospitalID).
		First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *DonorNumberGormRepository) ListForHospital(
	ctx context.Context,
	hospitalID uint,
) ([]models.DonorNumber, error) {

	var numbers []models.DonorNumber
	if err := r.db.WithContext(ctx).
		Where("hospital_id = ?", hospitalID).
		Order("created_at DESC").
		Find(&numbers).Error; err != nil {
		return nil, err
	}
	return numbers, nil
}

func (r *DonorNumberGormRepository) Update(
	ctx context.Context,
	n *models.DonorNumber,
) error {
	return r.db.WithContext(ctx).Save(n).Error
}

func (r *DonorNumberGormRepository) Delete(
	ctx context.Context,
	n *models.DonorNumber,
) error {
	return r.db.WithContext(ctx).Delete(n).Error
}

// Compile-time check
var _ domain.Repository = (*DonorNumberGormRepository)(nil)
