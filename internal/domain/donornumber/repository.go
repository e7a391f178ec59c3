package donornumber

import (
	"context"

	"github.com/redsource-ph/redsource-api/internal/models"
)

type Repository interface {
	Create(
		ctx context.Context,
		n *models.DonorNumber,
	) error

	GetByCode(
		ctx context.Context,
		hospitalID uint,
		code string,
	) (*models.DonorNumber, error)

	ListForHospital(
		ctx context.Context,
		hospitalID uint,
	) ([]models.DonorNumber, error)

	Update(
		ctx context.Context,
		n *models.DonorNumber,
	) error

	Delete(
		ctx context.Context,
		n *models.DonorNumber,
	) error
}
