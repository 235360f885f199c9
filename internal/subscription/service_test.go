package subscription

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vanta-be/internal/menu"
	"vanta-be/internal/validate"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Insert(ctx context.Context, d Draft) (*Subscription, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Subscription), args.Error(1)
}

func (m *MockRepository) ListRecent(ctx context.Context, limit int) ([]*Subscription, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Subscription), args.Error(1)
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name   string
		draft  Draft
		fields []string
	}{
		{name: "Valid", draft: Draft{CustomerName: "Jane", CustomerPhone: "555 123 4567", Plan: "connoisseur", Price: 54}},
		{name: "Unknown plan", draft: Draft{CustomerName: "Jane", CustomerPhone: "5551234567", Plan: "barista", Price: 54}, fields: []string{"plan"}},
		{name: "Stale price", draft: Draft{CustomerName: "Jane", CustomerPhone: "5551234567", Plan: "connoisseur", Price: 72}, fields: []string{"price"}},
		{name: "Missing plan", draft: Draft{CustomerName: "Jane", CustomerPhone: "5551234567"}, fields: []string{"plan"}},
		{name: "Bad contact", draft: Draft{CustomerName: "J", CustomerPhone: "12", Plan: "explorer", Price: 29}, fields: []string{"name", "phone"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.draft)
			if tt.fields == nil {
				assert.NoError(t, err)
				return
			}
			var errs validate.Errors
			require.ErrorAs(t, err, &errs)
			assert.Equal(t, tt.fields, errs.Fields())
		})
	}
}

func TestCheck_AcceptsEveryCatalogPlan(t *testing.T) {
	for _, p := range menu.Plans() {
		d := Draft{CustomerName: "Jane", CustomerPhone: "5551234567", Plan: p.ID, Price: p.Price}
		assert.NoError(t, Check(d), p.ID)
	}
}

func TestService_CreateSubscription(t *testing.T) {
	ctx := context.Background()
	d := Draft{CustomerName: " Jane ", CustomerPhone: "5551234567", Plan: "explorer", Price: 29}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("Insert", ctx, Draft{CustomerName: "Jane", CustomerPhone: "5551234567", Plan: "explorer", Price: 29}).
			Return(&Subscription{ID: 1, Status: StatusNew}, nil)

		s, err := svc.CreateSubscription(ctx, d)
		require.NoError(t, err)
		assert.Equal(t, int64(1), s.ID)
	})

	t.Run("Invalid makes no store call", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		_, err := svc.CreateSubscription(ctx, Draft{CustomerName: "Jane", CustomerPhone: "1", Plan: "explorer", Price: 29})
		assert.ErrorIs(t, err, ErrInvalidDraft)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Store failure", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)
		repo.On("Insert", ctx, mock.Anything).Return(nil, errors.New("db down"))

		s, err := svc.CreateSubscription(ctx, d)
		assert.Nil(t, s)
		assert.ErrorIs(t, err, ErrCreateFailed)
	})
}
