package notification

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("notification not found")

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Notification, error)
	MarkRead(ctx context.Context, id, userID string) (*Notification, error)
	ClearByUser(ctx context.Context, userID string) error
}

// InsertTx appends a notification inside the caller's transaction. Order and
// checkout transitions use this so the event row commits or rolls back with
// the mutation that produced it.
func InsertTx(ctx context.Context, tx pgx.Tx, n Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	var orderID, couponID any
	if n.OrderID != "" {
		orderID = n.OrderID
	}
	if n.CouponID != "" {
		couponID = n.CouponID
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO notifications (id, user_id, type, message, order_id, coupon_id)
		VALUES ($1,$2,$3,$4,$5,$6)
	`, n.ID, n.UserID, n.Type, n.Message, orderID, couponID)
	return err
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, type, message, read, order_id, coupon_id, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Notification
	for rows.Next() {
		n, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *n)
	}
	return out, rows.Err()
}

func scan(row pgx.Row) (*Notification, error) {
	var n Notification
	var orderID, couponID sql.NullString
	if err := row.Scan(&n.ID, &n.UserID, &n.Type, &n.Message, &n.Read,
		&orderID, &couponID, &n.CreatedAt); err != nil {
		return nil, err
	}
	n.OrderID = orderID.String
	n.CouponID = couponID.String
	return &n, nil
}

// MarkRead flips the read flag; owner-scoped so users cannot touch each
// other's rows.
func (r *PGRepo) MarkRead(ctx context.Context, id, userID string) (*Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := scan(r.db.QueryRow(ctx, `
		UPDATE notifications SET read = TRUE
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, type, message, read, order_id, coupon_id, created_at
	`, id, userID))
	if err != nil {
		return nil, ErrNotFound
	}
	return n, nil
}

func (r *PGRepo) ClearByUser(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `DELETE FROM notifications WHERE user_id=$1`, userID)
	return err
}
