package transaction

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redsource-ph/redsource-api/internal/audit"
	domain "github.com/redsource-ph/redsource-api/internal/domain/transaction"
	"github.com/redsource-ph/redsource-api/internal/httperr"
	"github.com/redsource-ph/redsource-api/internal/models"
	"github.com/redsource-ph/redsource-api/internal/timezone"
)

// ------------------------------------------------------------------
// fakes
// ------------------------------------------------------------------

type fakeRepo struct {
	hospitals map[uint]*models.Hospital
	txs       map[uint]*models.Transaction
	nextID    uint

	listForPeriodCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		hospitals: map[uint]*models.Hospital{},
		txs:       map[uint]*models.Transaction{},
	}
}

func (f *fakeRepo) addHospital(id uint, status string) {
	f.hospitals[id] = &models.Hospital{ID: id, Username: fmt.Sprintf("hospital-%d", id), Status: status}
}

func (f *fakeRepo) addTx(tx models.Transaction) *models.Transaction {
	f.nextID++
	tx.ID = f.nextID
	f.txs[tx.ID] = &tx
	return f.txs[tx.ID]
}

func (f *fakeRepo) GetHospitalByID(_ context.Context, id uint) (*models.Hospital, error) {
	h, ok := f.hospitals[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return h, nil
}

func (f *fakeRepo) CreateTransaction(_ context.Context, tx *models.Transaction) error {
	f.nextID++
	tx.ID = f.nextID
	copied := *tx
	f.txs[tx.ID] = &copied
	return nil
}

func (f *fakeRepo) CreateGuestAppointment(_ context.Context, guest *models.GuestDonor, tx *models.Transaction) error {
	guest.ID = 1000 + f.nextID
	id := guest.ID
	tx.GuestDonorID = &id

	f.nextID++
	tx.ID = f.nextID
	copied := *tx
	f.txs[tx.ID] = &copied
	return nil
}

func (f *fakeRepo) GetTransactionForHospital(_ context.Context, transactionID, hospitalID uint) (*models.Transaction, error) {
	tx, ok := f.txs[transactionID]
	if !ok || tx.HospitalID != hospitalID {
		return nil, errors.New("record not found")
	}
	copied := *tx
	return &copied, nil
}

func (f *fakeRepo) GetTransactionForDonor(_ context.Context, transactionID, donorID uint) (*models.Transaction, error) {
	tx, ok := f.txs[transactionID]
	if !ok || tx.DonorID == nil || *tx.DonorID != donorID {
		return nil, errors.New("record not found")
	}
	copied := *tx
	return &copied, nil
}

func (f *fakeRepo) ListTransactionsForHospital(_ context.Context, hospitalID uint) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, tx := range f.txs {
		if tx.HospitalID == hospitalID {
			out = append(out, *tx)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListTransactionsForDonor(_ context.Context, donorID uint) ([]models.Transaction, error) {
	var out []models.Transaction
	for _, tx := range f.txs {
		if tx.DonorID != nil && *tx.DonorID == donorID {
			out = append(out, *tx)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListTransactionsForPeriod(_ context.Context, hospitalID uint, start, end time.Time) ([]models.Transaction, error) {
	f.listForPeriodCalls++

	var out []models.Transaction
	for _, tx := range f.txs {
		if tx.HospitalID == hospitalID && !tx.Datetime.Before(start) && tx.Datetime.Before(end) {
			out = append(out, *tx)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateTransaction(_ context.Context, tx *models.Transaction) error {
	copied := *tx
	f.txs[tx.ID] = &copied
	return nil
}

func (f *fakeRepo) DeleteTransaction(_ context.Context, tx *models.Transaction) error {
	delete(f.txs, tx.ID)
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)

type fakeCache struct {
	store       map[string]domain.Calendar
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string]domain.Calendar{}}
}

func cacheKey(hospitalID uint, year, month int) string {
	return fmt.Sprintf("%d:%04d-%02d", hospitalID, year, month)
}

func (f *fakeCache) Get(_ context.Context, hospitalID uint, year, month int) (domain.Calendar, bool) {
	cal, ok := f.store[cacheKey(hospitalID, year, month)]
	return cal, ok
}

func (f *fakeCache) Set(_ context.Context, hospitalID uint, year, month int, cal domain.Calendar) {
	f.store[cacheKey(hospitalID, year, month)] = cal
}

func (f *fakeCache) Invalidate(_ context.Context, hospitalID uint, at time.Time) {
	local := at.In(timezone.Manila())
	key := cacheKey(hospitalID, local.Year(), int(local.Month()))
	delete(f.store, key)
	f.invalidated = append(f.invalidated, key)
}

var _ CalendarCache = (*fakeCache)(nil)

func uintPtr(v uint) *uint { return &v }

// ------------------------------------------------------------------
// status updates
// ------------------------------------------------------------------

func TestUpdateStatusApproves(t *testing.T) {
	repo := newFakeRepo()
	cache := newFakeCache()
	uc := NewUpdateStatus(repo, cache, audit.NewNop())

	tx := repo.addTx(models.Transaction{
		HospitalID: 1,
		Status:     "PENDING",
		Datetime:   time.Date(2025, 3, 10, 8, 0, 0, 0, timezone.Manila()),
	})

	got, err := uc.Execute(context.Background(), 1, 9, tx.ID, "APPROVED", "cleared screening")
	require.NoError(t, err)

	assert.Equal(t, "APPROVED", got.Status)
	assert.Equal(t, "cleared screening", got.Remarks)
	assert.NotNil(t, got.ResolvedAt)
	assert.Equal(t, "APPROVED", repo.txs[tx.ID].Status)
	assert.Contains(t, cache.invalidated, cacheKey(1, 2025, 3))
}

func TestUpdateStatusAcceptsLegacySuccess(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUpdateStatus(repo, newFakeCache(), audit.NewNop())

	tx := repo.addTx(models.Transaction{HospitalID: 1, Status: "PENDING"})

	got, err := uc.Execute(context.Background(), 1, 9, tx.ID, "SUCCESS", "done")
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", got.Status)
}

func TestUpdateStatusRequiresRemarks(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUpdateStatus(repo, newFakeCache(), audit.NewNop())

	tx := repo.addTx(models.Transaction{HospitalID: 1, Status: "PENDING"})

	_, err := uc.Execute(context.Background(), 1, 9, tx.ID, "REJECT", "   ")
	assert.True(t, httperr.IsBusiness(err, "remarks_required"))
	assert.Equal(t, "PENDING", repo.txs[tx.ID].Status)
}

func TestUpdateStatusTerminalIsFrozen(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUpdateStatus(repo, newFakeCache(), audit.NewNop())

	tx := repo.addTx(models.Transaction{HospitalID: 1, Status: "REJECT"})

	_, err := uc.Execute(context.Background(), 1, 9, tx.ID, "APPROVED", "second look")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestUpdateStatusScopedToHospital(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUpdateStatus(repo, newFakeCache(), audit.NewNop())

	tx := repo.addTx(models.Transaction{HospitalID: 1, Status: "PENDING"})

	_, err := uc.Execute(context.Background(), 2, 9, tx.ID, "APPROVED", "ok")
	assert.True(t, httperr.IsBusiness(err, "transaction_not_found"))
}

// ------------------------------------------------------------------
// creation
// ------------------------------------------------------------------

func TestCreateMember(t *testing.T) {
	repo := newFakeRepo()
	cache := newFakeCache()
	repo.addHospital(1, models.HospitalStatusApproved)
	uc := NewCreateMember(repo, cache, audit.NewNop())

	tx, err := uc.Execute(context.Background(), CreateMemberInput{
		HospitalID: 1,
		DonorID:    42,
		Date:       "2025-03-10",
		Time:       "08:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "PENDING", tx.Status)
	assert.Equal(t, "MEMBER-APPOINTMENT", tx.Type)
	require.NotNil(t, tx.DonorID)
	assert.Equal(t, uint(42), *tx.DonorID)
	assert.Nil(t, tx.GuestDonorID)
	assert.Contains(t, cache.invalidated, cacheKey(1, 2025, 3))
}

func TestCreateMemberUnknownHospital(t *testing.T) {
	uc := NewCreateMember(newFakeRepo(), newFakeCache(), audit.NewNop())

	_, err := uc.Execute(context.Background(), CreateMemberInput{
		HospitalID: 99, DonorID: 42, Date: "2025-03-10", Time: "08:00",
	})
	assert.True(t, httperr.IsBusiness(err, "hospital_not_found"))
}

func TestCreateMemberUnapprovedHospital(t *testing.T) {
	repo := newFakeRepo()
	repo.addHospital(1, models.HospitalStatusPending)
	uc := NewCreateMember(repo, newFakeCache(), audit.NewNop())

	_, err := uc.Execute(context.Background(), CreateMemberInput{
		HospitalID: 1, DonorID: 42, Date: "2025-03-10", Time: "08:00",
	})
	assert.True(t, httperr.IsBusiness(err, "hospital_not_available"))
}

func TestCreateMemberBadDatetime(t *testing.T) {
	repo := newFakeRepo()
	repo.addHospital(1, models.HospitalStatusApproved)
	uc := NewCreateMember(repo, newFakeCache(), audit.NewNop())

	_, err := uc.Execute(context.Background(), CreateMemberInput{
		HospitalID: 1, DonorID: 42, Date: "10/03/2025", Time: "8am",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}

func TestCreateGuest(t *testing.T) {
	repo := newFakeRepo()
	repo.addHospital(1, models.HospitalStatusApproved)
	uc := NewCreateGuest(repo, newFakeCache(), audit.NewNop())

	tx, err := uc.Execute(context.Background(), CreateGuestInput{
		HospitalID: 1,
		Datetime:   time.Date(2025, 3, 10, 8, 0, 0, 0, timezone.Manila()),
		Name:       "Juan dela Cruz",
		BloodType:  "O+",
		Phone:      "09171234567",
		Email:      "juan@example.com",
		Age:        25,
	})
	require.NoError(t, err)

	assert.Equal(t, "GUEST-APPOINTMENT", tx.Type)
	assert.Equal(t, "PENDING", tx.Status)
	assert.NotNil(t, tx.GuestDonorID)
	assert.Nil(t, tx.DonorID)
	assert.NoError(t, domain.ValidateParty(domain.TypeGuest, tx.DonorID, tx.GuestDonorID))

	stored := repo.txs[tx.ID]
	assert.NoError(t, domain.ValidateParty(domain.TypeGuest, stored.DonorID, stored.GuestDonorID))
}

func TestCreateGuestAgeBounds(t *testing.T) {
	repo := newFakeRepo()
	repo.addHospital(1, models.HospitalStatusApproved)
	uc := NewCreateGuest(repo, newFakeCache(), audit.NewNop())

	for _, age := range []int{15, 71} {
		_, err := uc.Execute(context.Background(), CreateGuestInput{
			HospitalID: 1,
			Datetime:   time.Now(),
			Name:       "Juan",
			Age:        age,
		})
		assert.True(t, httperr.IsBusiness(err, "invalid_age"), age)
	}

	for _, age := range []int{16, 70} {
		_, err := uc.Execute(context.Background(), CreateGuestInput{
			HospitalID: 1,
			Datetime:   time.Now(),
			Name:       "Juan",
			Age:        age,
		})
		assert.NoError(t, err, age)
	}
}

// ------------------------------------------------------------------
// donor-side edits
// ------------------------------------------------------------------

func TestUpdateByDonorReschedules(t *testing.T) {
	repo := newFakeRepo()
	cache := newFakeCache()
	uc := NewUpdateByDonor(repo, cache, audit.NewNop())

	tx := repo.addTx(models.Transaction{
		HospitalID: 1,
		DonorID:    uintPtr(42),
		Status:     "PENDING",
		Datetime:   time.Date(2025, 3, 10, 8, 0, 0, 0, timezone.Manila()),
	})

	date, tm := "2025-04-02", "10:30"
	got, err := uc.Execute(context.Background(), 42, tx.ID, DonorUpdateInput{Date: &date, Time: &tm})
	require.NoError(t, err)

	local := got.Datetime.In(timezone.Manila())
	assert.Equal(t, "2025-04-02 10:30", local.Format("2006-01-02 15:04"))

	// both the old and the new month views are stale
	assert.Contains(t, cache.invalidated, cacheKey(1, 2025, 3))
	assert.Contains(t, cache.invalidated, cacheKey(1, 2025, 4))
}

func TestUpdateByDonorDateNeedsTime(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUpdateByDonor(repo, newFakeCache(), audit.NewNop())

	tx := repo.addTx(models.Transaction{HospitalID: 1, DonorID: uintPtr(42), Status: "PENDING"})

	date := "2025-04-02"
	_, err := uc.Execute(context.Background(), 42, tx.ID, DonorUpdateInput{Date: &date})
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}

func TestUpdateByDonorResolvedIsLocked(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUpdateByDonor(repo, newFakeCache(), audit.NewNop())

	tx := repo.addTx(models.Transaction{HospitalID: 1, DonorID: uintPtr(42), Status: "APPROVED"})

	remarks := "new note"
	_, err := uc.Execute(context.Background(), 42, tx.ID, DonorUpdateInput{Remarks: &remarks})
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestDeleteByDonor(t *testing.T) {
	repo := newFakeRepo()
	uc := NewDeleteByDonor(repo, newFakeCache(), audit.NewNop())

	pending := repo.addTx(models.Transaction{HospitalID: 1, DonorID: uintPtr(42), Status: "PENDING"})
	require.NoError(t, uc.Execute(context.Background(), 42, pending.ID))
	assert.NotContains(t, repo.txs, pending.ID)

	resolved := repo.addTx(models.Transaction{HospitalID: 1, DonorID: uintPtr(42), Status: "APPROVED"})
	err := uc.Execute(context.Background(), 42, resolved.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Contains(t, repo.txs, resolved.ID)
}

func TestDeleteByDonorOwnershipEnforced(t *testing.T) {
	repo := newFakeRepo()
	uc := NewDeleteByDonor(repo, newFakeCache(), audit.NewNop())

	tx := repo.addTx(models.Transaction{HospitalID: 1, DonorID: uintPtr(42), Status: "PENDING"})

	err := uc.Execute(context.Background(), 7, tx.ID)
	assert.True(t, httperr.IsBusiness(err, "transaction_not_found"))
}

// ------------------------------------------------------------------
// calendar
// ------------------------------------------------------------------

func TestGetCalendarBuildsAndCaches(t *testing.T) {
	repo := newFakeRepo()
	cache := newFakeCache()
	uc := NewGetCalendar(repo, cache)

	repo.addTx(models.Transaction{
		HospitalID: 1,
		Status:     "PENDING",
		Datetime:   time.Date(2025, 3, 10, 8, 0, 0, 0, timezone.Manila()),
		Donor:      &models.Donor{Username: "ana"},
	})
	repo.addTx(models.Transaction{
		HospitalID: 1,
		Status:     "PENDING",
		Datetime:   time.Date(2025, 3, 10, 9, 30, 0, 0, timezone.Manila()),
		Donor:      &models.Donor{Username: "ben"},
	})

	cal, err := uc.Execute(context.Background(), 1, 2025, 3)
	require.NoError(t, err)
	require.Contains(t, cal, "2025-03-10")
	assert.Equal(t, 2, cal["2025-03-10"].BloodUnits)
	assert.Equal(t, 1, repo.listForPeriodCalls)

	// second read is served from cache
	again, err := uc.Execute(context.Background(), 1, 2025, 3)
	require.NoError(t, err)
	assert.Equal(t, cal, again)
	assert.Equal(t, 1, repo.listForPeriodCalls)
}

func TestGetCalendarExcludesOtherMonths(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetCalendar(repo, newFakeCache())

	repo.addTx(models.Transaction{
		HospitalID: 1,
		Datetime:   time.Date(2025, 4, 1, 0, 0, 0, 0, timezone.Manila()),
	})

	cal, err := uc.Execute(context.Background(), 1, 2025, 3)
	require.NoError(t, err)
	assert.Empty(t, cal)
}
