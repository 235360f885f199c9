package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"vanta-be/internal/logger"
)

type Repository interface {
	Insert(ctx context.Context, d Draft) (*Reservation, error)
	ListBetween(ctx context.Context, from, to string) ([]*Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, d Draft) (*Reservation, error) {
	notes := sql.NullString{String: d.Notes, Valid: d.Notes != ""}

	res := &Reservation{
		CustomerName:    d.CustomerName,
		CustomerContact: d.CustomerContact,
		Date:            d.Date,
		Time:            d.Time,
		Guests:          d.Guests,
		Notes:           d.Notes,
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO reservations (customer_name, customer_contact, date, time, guests, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, status, created_at
	`, d.CustomerName, d.CustomerContact, d.Date, d.Time, d.Guests, notes).
		Scan(&res.ID, &res.Status, &res.CreatedAt)
	if err != nil {
		logger.FromCtx(ctx).Error("insert reservation failed",
			zap.String("layer", "repository"),
			zap.String("method", "Insert"),
			zap.Error(err),
		)
		return nil, fmt.Errorf("insert reservation: %w", err)
	}

	return res, nil
}

// ListBetween returns reservations dated within [from, to], soonest first.
func (r *repository) ListBetween(ctx context.Context, from, to string) ([]*Reservation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, customer_name, customer_contact, to_char(date, 'YYYY-MM-DD'), time, guests,
		       COALESCE(notes, ''), status, created_at
		FROM reservations
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC, time ASC
	`, from, to)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var out []*Reservation
	for rows.Next() {
		var res Reservation
		if err := rows.Scan(
			&res.ID, &res.CustomerName, &res.CustomerContact, &res.Date, &res.Time,
			&res.Guests, &res.Notes, &res.Status, &res.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		out = append(out, &res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	return out, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	res, err := r.db.ExecContext(ctx, `UPDATE reservations SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update reservation status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update reservation status: %w", err)
	}
	if n == 0 {
		return ErrReservationNotFound
	}
	return nil
}
