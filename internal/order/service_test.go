package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vanta-be/internal/validate"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Insert(ctx context.Context, d Draft) (*Order, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Order), args.Error(1)
}

func (m *MockRepository) ListRecent(ctx context.Context, limit int) ([]*Order, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Order), args.Error(1)
}

func (m *MockRepository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func TestService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success sanitizes and snapshots", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		items := sampleItems()
		items[0].Name = "<b>Ethiopian Yirgacheffe</b>"
		draft := Draft{CustomerName: "  <Jane>  ", CustomerPhone: "555-123-4567", Items: items, Total: 22.499999}

		repo.On("Insert", ctx, mock.MatchedBy(func(d Draft) bool {
			return d.CustomerName == "Jane" &&
				d.Total == 22.50 &&
				d.Items[0].Name == "bEthiopian Yirgacheffe/b"
		})).Return(&Order{ID: 1, CustomerName: "Jane", Total: 22.50, Status: StatusPending}, nil)

		o, err := svc.CreateOrder(ctx, draft)
		require.NoError(t, err)
		assert.Equal(t, int64(1), o.ID)
		assert.Equal(t, "<b>Ethiopian Yirgacheffe</b>", items[0].Name, "caller slice untouched")
		repo.AssertExpectations(t)
	})

	t.Run("Validation failure makes no store call", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		o, err := svc.CreateOrder(ctx, Draft{CustomerName: "A", CustomerPhone: "123", Items: nil})

		assert.Nil(t, o)
		assert.ErrorIs(t, err, ErrInvalidDraft)
		assert.ErrorIs(t, err, validate.ErrInvalidName)
		assert.ErrorIs(t, err, validate.ErrInvalidPhone)
		assert.ErrorIs(t, err, validate.ErrEmptyCart)

		var fields validate.Errors
		require.ErrorAs(t, err, &fields)
		assert.Equal(t, []string{"name", "phone", "items"}, fields.Fields())
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Bad line quantity", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		items := sampleItems()
		items[1].Quantity = 0

		_, err := svc.CreateOrder(ctx, Draft{CustomerName: "Jane", CustomerPhone: "5551234567", Items: items, Total: 6.5})

		assert.ErrorIs(t, err, ErrInvalidItem)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Store failure", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("Insert", ctx, mock.Anything).Return(nil, errors.New("insert order: connection refused"))

		o, err := svc.CreateOrder(ctx, Draft{CustomerName: "Jane", CustomerPhone: "5551234567", Items: sampleItems(), Total: 22.5})

		assert.Nil(t, o)
		assert.ErrorIs(t, err, ErrCreateFailed)
	})

	t.Run("Check violation is an invalid draft", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("Insert", ctx, mock.Anything).Return(nil, &pq.Error{Code: "23514"})

		_, err := svc.CreateOrder(ctx, Draft{CustomerName: "Jane", CustomerPhone: "5551234567", Items: sampleItems(), Total: 22.5})

		assert.ErrorIs(t, err, ErrInvalidDraft)
		assert.NotErrorIs(t, err, ErrCreateFailed)
	})
}

// A one-character name must be rejected before any SQL reaches the store.
func TestService_CreateOrder_NoWriteOnInvalidName(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	svc := NewService(NewRepository(db))

	o, err := svc.CreateOrder(context.Background(), Draft{
		CustomerName:  "A",
		CustomerPhone: "555-123-4567",
		Items:         sampleItems(),
		Total:         22.50,
	})

	assert.Nil(t, o)
	assert.ErrorIs(t, err, ErrInvalidDraft)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestService_RecentOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("Uses the admin limit", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("ListRecent", ctx, RecentLimit).Return([]*Order{{ID: 1, CreatedAt: time.Now()}}, nil)

		orders, err := svc.RecentOrders(ctx)
		require.NoError(t, err)
		assert.Len(t, orders, 1)
	})

	t.Run("Error", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("ListRecent", ctx, RecentLimit).Return(nil, errors.New("db down"))

		_, err := svc.RecentOrders(ctx)
		assert.Error(t, err)
	})
}

func TestService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Rejects unknown status", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		err := svc.UpdateStatus(ctx, 1, Status("shipped"))

		assert.ErrorIs(t, err, ErrInvalidStatus)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Passes through", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("UpdateStatus", ctx, int64(3), StatusCompleted).Return(nil)

		assert.NoError(t, svc.UpdateStatus(ctx, 3, StatusCompleted))
	})

	t.Run("Not found", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("UpdateStatus", ctx, int64(3), StatusCancelled).Return(ErrOrderNotFound)

		assert.ErrorIs(t, svc.UpdateStatus(ctx, 3, StatusCancelled), ErrOrderNotFound)
	})
}
