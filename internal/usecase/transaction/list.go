package transaction

import (
	"context"

	domain "github.com/redsource-ph/redsource-api/internal/domain/transaction"
	"github.com/redsource-ph/redsource-api/internal/dto"
	"github.com/redsource-ph/redsource-api/internal/models"
)

type ListForHospital struct {
	repo domain.Repository
}

func NewListForHospital(repo domain.Repository) *ListForHospital {
	return &ListForHospital{repo: repo}
}

func (uc *ListForHospital) Execute(
	ctx context.Context,
	hospitalID uint,
) ([]dto.TransactionListDTO, error) {

	txs, err := uc.repo.ListTransactionsForHospital(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	return toListDTOs(txs), nil
}

type ListForDonor struct {
	repo domain.Repository
}

func NewListForDonor(repo domain.Repository) *ListForDonor {
	return &ListForDonor{repo: repo}
}

func (uc *ListForDonor) Execute(
	ctx context.Context,
	donorID uint,
) ([]dto.TransactionListDTO, error) {

	txs, err := uc.repo.ListTransactionsForDonor(ctx, donorID)
	if err != nil {
		return nil, err
	}
	return toListDTOs(txs), nil
}

func toListDTOs(txs []models.Transaction) []dto.TransactionListDTO {
	out := make([]dto.TransactionListDTO, 0, len(txs))
	for i := range txs {
		tx := &txs[i]

		var donorName string
		switch {
		case tx.Donor != nil:
			donorName = tx.Donor.Username
		case tx.GuestDonor != nil:
			donorName = tx.GuestDonor.Username
		}

		out = append(out, dto.TransactionListDTO{
			ID:           tx.ID,
			Datetime:     tx.Datetime,
			Status:       tx.Status,
			Type:         tx.Type,
			Remarks:      tx.Remarks,
			DonorName:    donorName,
			HospitalName: tx.Hospital.Username,
		})
	}
	return out
}
