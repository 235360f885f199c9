package subscription

import (
	"context"
	"database/sql"
	"fmt"
)

type Repository interface {
	Insert(ctx context.Context, d Draft) (*Subscription, error)
	ListRecent(ctx context.Context, limit int) ([]*Subscription, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, d Draft) (*Subscription, error) {
	s := &Subscription{
		CustomerName:  d.CustomerName,
		CustomerPhone: d.CustomerPhone,
		Plan:          d.Plan,
		Price:         d.Price,
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO subscriptions (customer_name, customer_phone, plan, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, status, created_at
	`, d.CustomerName, d.CustomerPhone, d.Plan, d.Price).
		Scan(&s.ID, &s.Status, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert subscription: %w", err)
	}

	return s, nil
}

func (r *repository) ListRecent(ctx context.Context, limit int) ([]*Subscription, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, customer_name, customer_phone, plan, price, status, created_at
		FROM subscriptions
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	defer rows.Close()

	var out []*Subscription
	for rows.Next() {
		var s Subscription
		if err := rows.Scan(&s.ID, &s.CustomerName, &s.CustomerPhone, &s.Plan, &s.Price, &s.Status, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}
