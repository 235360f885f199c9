package order

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"vanta-be/internal/logger"
)

type Repository interface {
	Insert(ctx context.Context, d Draft) (*Order, error)
	ListRecent(ctx context.Context, limit int) ([]*Order, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

// Insert writes d and returns the row with its server-assigned fields.
func (r *repository) Insert(ctx context.Context, d Draft) (*Order, error) {
	items, err := encodeItems(d.Items)
	if err != nil {
		return nil, err
	}

	o := &Order{
		CustomerName:  d.CustomerName,
		CustomerPhone: d.CustomerPhone,
		Items:         d.Items,
		Total:         d.Total,
	}

	err = r.db.QueryRowContext(ctx, `
		INSERT INTO orders (customer_name, customer_phone, items, total)
		VALUES ($1, $2, $3, $4)
		RETURNING id, status, created_at
	`, d.CustomerName, d.CustomerPhone, items, d.Total).
		Scan(&o.ID, &o.Status, &o.CreatedAt)
	if err != nil {
		logger.FromCtx(ctx).Error("insert order failed",
			zap.String("layer", "repository"),
			zap.String("method", "Insert"),
			zap.Error(err),
		)
		return nil, fmt.Errorf("insert order: %w", err)
	}

	return o, nil
}

// ListRecent returns at most limit orders, newest first.
func (r *repository) ListRecent(ctx context.Context, limit int) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, customer_name, customer_phone, items, total, status, created_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		var (
			o   Order
			raw []byte
		)
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.CustomerPhone, &raw, &o.Total, &o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if o.Items, err = decodeItems(raw); err != nil {
			return nil, err
		}
		orders = append(orders, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	return orders, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	res, err := r.db.ExecContext(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if n == 0 {
		return ErrOrderNotFound
	}
	return nil
}
