package donornumber

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redsource-ph/redsource-api/internal/audit"
	domain "github.com/redsource-ph/redsource-api/internal/domain/donornumber"
	"github.com/redsource-ph/redsource-api/internal/httperr"
	"github.com/redsource-ph/redsource-api/internal/models"
)

type fakeRepo struct {
	numbers map[string]*models.DonorNumber
	nextID  uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{numbers: map[string]*models.DonorNumber{}}
}

func key(hospitalID uint, code string) string {
	return fmt.Sprintf("%d|%s", hospitalID, code)
}

func (f *fakeRepo) Create(_ context.Context, n *models.DonorNumber) error {
	f.nextID++
	n.ID = f.nextID
	copied := *n
	f.numbers[key(n.HospitalID, n.DonorID)] = &copied
	return nil
}

func (f *fakeRepo) GetByCode(_ context.Context, hospitalID uint, code string) (*models.DonorNumber, error) {
	n, ok := f.numbers[key(hospitalID, code)]
	if !ok {
		return nil, errors.New("record not found")
	}
	copied := *n
	return &copied, nil
}

func (f *fakeRepo) ListForHospital(_ context.Context, hospitalID uint) ([]models.DonorNumber, error) {
	var out []models.DonorNumber
	for _, n := range f.numbers {
		if n.HospitalID == hospitalID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, n *models.DonorNumber) error {
	copied := *n
	f.numbers[key(n.HospitalID, n.DonorID)] = &copied
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, n *models.DonorNumber) error {
	delete(f.numbers, key(n.HospitalID, n.DonorID))
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)

func TestGenerate(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGenerate(repo, audit.NewNop())

	n, err := uc.Execute(context.Background(), 1, 9, "  DN-2025-001  ")
	require.NoError(t, err)

	assert.Equal(t, "DN-2025-001", n.DonorID)
	assert.Equal(t, uint(1), n.HospitalID)
	assert.False(t, n.IsVerified)
	assert.False(t, n.IsUsed)
}

func TestGenerateRejectsBadCodes(t *testing.T) {
	uc := NewGenerate(newFakeRepo(), audit.NewNop())

	for _, code := range []string{"", "   ", strings.Repeat("x", 51)} {
		_, err := uc.Execute(context.Background(), 1, 9, code)
		assert.True(t, httperr.IsBusiness(err, "invalid_donor_id"), code)
	}
}

func TestGenerateDuplicate(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGenerate(repo, audit.NewNop())

	_, err := uc.Execute(context.Background(), 1, 9, "DN-001")
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), 1, 9, "DN-001")
	assert.True(t, httperr.IsBusiness(err, "donor_number_exists"))
}

func TestGenerateSameCodeOtherHospital(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGenerate(repo, audit.NewNop())

	_, err := uc.Execute(context.Background(), 1, 9, "DN-001")
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), 2, 9, "DN-001")
	assert.NoError(t, err)
}

func TestVerify(t *testing.T) {
	repo := newFakeRepo()
	gen := NewGenerate(repo, audit.NewNop())
	uc := NewVerify(repo, audit.NewNop())

	_, err := gen.Execute(context.Background(), 1, 9, "DN-001")
	require.NoError(t, err)

	n, err := uc.Execute(context.Background(), 1, 9, "DN-001")
	require.NoError(t, err)
	assert.True(t, n.IsVerified)

	stored, err := repo.GetByCode(context.Background(), 1, "DN-001")
	require.NoError(t, err)
	assert.True(t, stored.IsVerified)
}

func TestVerifyNotFound(t *testing.T) {
	uc := NewVerify(newFakeRepo(), audit.NewNop())

	_, err := uc.Execute(context.Background(), 1, 9, "DN-404")
	assert.True(t, httperr.IsBusiness(err, "donor_number_not_found"))
}

func TestConsume(t *testing.T) {
	repo := newFakeRepo()
	uc := NewConsume(repo)

	n := &models.DonorNumber{DonorID: "DN-001", HospitalID: 1, IsVerified: true}
	require.NoError(t, repo.Create(context.Background(), n))

	got, err := uc.Execute(context.Background(), 1, "DN-001")
	require.NoError(t, err)
	assert.True(t, got.IsUsed)

	stored, err := repo.GetByCode(context.Background(), 1, "DN-001")
	require.NoError(t, err)
	assert.True(t, stored.IsUsed)
}

func TestConsumeScopedToIssuingHospital(t *testing.T) {
	repo := newFakeRepo()
	uc := NewConsume(repo)

	// The same code exists at two hospitals: unverified at 1, verified
	// at 2. Only the named hospital's copy may be consumed.
	require.NoError(t, repo.Create(context.Background(),
		&models.DonorNumber{DonorID: "DN-001", HospitalID: 1}))
	require.NoError(t, repo.Create(context.Background(),
		&models.DonorNumber{DonorID: "DN-001", HospitalID: 2, IsVerified: true}))

	got, err := uc.Execute(context.Background(), 2, "DN-001")
	require.NoError(t, err)
	assert.Equal(t, uint(2), got.HospitalID)
	assert.True(t, got.IsUsed)

	// hospital 1's duplicate is untouched and still refuses consumption
	other, err := repo.GetByCode(context.Background(), 1, "DN-001")
	require.NoError(t, err)
	assert.False(t, other.IsUsed)

	_, err = uc.Execute(context.Background(), 1, "DN-001")
	assert.True(t, httperr.IsBusiness(err, "donor_number_not_verified"))
}

func TestConsumeUnverified(t *testing.T) {
	repo := newFakeRepo()
	uc := NewConsume(repo)

	require.NoError(t, repo.Create(context.Background(),
		&models.DonorNumber{DonorID: "DN-001", HospitalID: 1}))

	_, err := uc.Execute(context.Background(), 1, "DN-001")
	assert.True(t, httperr.IsBusiness(err, "donor_number_not_verified"))
}

func TestConsumeNotFound(t *testing.T) {
	uc := NewConsume(newFakeRepo())

	_, err := uc.Execute(context.Background(), 1, "DN-404")
	assert.True(t, httperr.IsBusiness(err, "donor_number_not_found"))
}

func TestConsumeTwice(t *testing.T) {
	repo := newFakeRepo()
	uc := NewConsume(repo)

	require.NoError(t, repo.Create(context.Background(),
		&models.DonorNumber{DonorID: "DN-001", HospitalID: 1, IsVerified: true}))

	_, err := uc.Execute(context.Background(), 1, "DN-001")
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), 1, "DN-001")
	assert.True(t, httperr.IsBusiness(err, "donor_number_used"))
}

func TestDeleteUnused(t *testing.T) {
	repo := newFakeRepo()
	gen := NewGenerate(repo, audit.NewNop())
	uc := NewDelete(repo, audit.NewNop())

	_, err := gen.Execute(context.Background(), 1, 9, "DN-001")
	require.NoError(t, err)

	require.NoError(t, uc.Execute(context.Background(), 1, 9, "DN-001"))

	_, err = repo.GetByCode(context.Background(), 1, "DN-001")
	assert.Error(t, err)
}

func TestDeleteUsedRefused(t *testing.T) {
	repo := newFakeRepo()
	uc := NewDelete(repo, audit.NewNop())

	n := &models.DonorNumber{DonorID: "DN-001", HospitalID: 1, IsVerified: true, IsUsed: true}
	require.NoError(t, repo.Create(context.Background(), n))

	err := uc.Execute(context.Background(), 1, 9, "DN-001")
	assert.True(t, httperr.IsBusiness(err, "donor_number_used"))

	_, err = repo.GetByCode(context.Background(), 1, "DN-001")
	assert.NoError(t, err)
}
