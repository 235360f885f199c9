package reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vanta-be/internal/validate"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Insert(ctx context.Context, d Draft) (*Reservation, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Reservation), args.Error(1)
}

func (m *MockRepository) ListBetween(ctx context.Context, from, to string) ([]*Reservation, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Reservation), args.Error(1)
}

func (m *MockRepository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	return m.Called(ctx, id, status).Error(0)
}

var fixedNow = time.Date(2026, time.March, 15, 14, 0, 0, 0, time.Local)

func clock() time.Time { return fixedNow }

func validDraft() Draft {
	return Draft{
		CustomerName:    "Jane Doe",
		CustomerContact: "jane@example.com",
		Date:            "2026-03-15",
		Time:            "19:00",
		Guests:          4,
		Notes:           "  <i>anniversary</i> ",
	}
}

func TestService_CreateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewServiceWithClock(repo, clock)

		repo.On("Insert", ctx, mock.MatchedBy(func(d Draft) bool {
			return d.Notes == "ianniversary/i" && d.Date == "2026-03-15"
		})).Return(&Reservation{ID: 3, Status: StatusPending}, nil)

		res, err := svc.CreateReservation(ctx, validDraft())
		require.NoError(t, err)
		assert.Equal(t, int64(3), res.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Invalid fields", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewServiceWithClock(repo, clock)

		d := Draft{CustomerName: "J", CustomerContact: "ab", Date: "2026-03-14", Time: "07:00", Guests: 21}
		res, err := svc.CreateReservation(ctx, d)

		assert.Nil(t, res)
		assert.ErrorIs(t, err, ErrInvalidDraft)
		var fields validate.Errors
		require.ErrorAs(t, err, &fields)
		assert.Equal(t, []string{"name", "contact", "date", "time", "guests"}, fields.Fields())
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Store failure", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewServiceWithClock(repo, clock)
		repo.On("Insert", ctx, mock.Anything).Return(nil, errors.New("db down"))

		res, err := svc.CreateReservation(ctx, validDraft())
		assert.Nil(t, res)
		assert.ErrorIs(t, err, ErrCreateFailed)
	})
}

// Yesterday's date is rejected before any statement reaches the store.
func TestService_CreateReservation_YesterdayMakesNoStoreCall(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	svc := NewService(NewRepository(db))
	d := validDraft()
	d.Date = time.Now().AddDate(0, 0, -1).Format(validate.DateLayout)

	res, err := svc.CreateReservation(context.Background(), d)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, validate.ErrInvalidDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_UpcomingReservations(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewServiceWithClock(repo, clock)

	repo.On("ListBetween", ctx, "2026-03-15", "2026-03-22").Return([]*Reservation{{ID: 1}}, nil)

	out, err := svc.UpcomingReservations(ctx)
	require.NoError(t, err)
	assert.Len(t, out, 1)
	repo.AssertExpectations(t)
}

func TestService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewServiceWithClock(repo, clock)

	assert.ErrorIs(t, svc.UpdateStatus(ctx, 1, Status("seated")), ErrInvalidStatus)

	repo.On("UpdateStatus", ctx, int64(1), StatusConfirmed).Return(nil)
	assert.NoError(t, svc.UpdateStatus(ctx, 1, StatusConfirmed))
}
