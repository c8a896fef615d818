package coupon

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mcastellan/shopcore/internal/notification"
)

var (
	ErrNotFound     = errors.New("coupon not found")
	ErrAlreadyExist = errors.New("coupon code already exists")
)

type Repository interface {
	Create(ctx context.Context, c *Coupon) (*Coupon, error)
	GetByID(ctx context.Context, id string) (*Coupon, error)
	GetByCode(ctx context.Context, code string) (*Coupon, error)
	List(ctx context.Context, activeOnly bool) ([]Coupon, error)
	Update(ctx context.Context, c *Coupon) (*Coupon, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type PGRepo struct {
	db *pgxpool.Pool
	// notifyLimit caps how many users are notified when a coupon is created
	notifyLimit int
}

func NewPGRepo(db *pgxpool.Pool, notifyLimit int) *PGRepo {
	return &PGRepo{db: db, notifyLimit: notifyLimit}
}

const couponColumns = `id, code, discount_type, discount_value::text, min_purchase::text,
	max_discount::text, is_active, start_date, end_date, created_at, updated_at`

func scanCoupon(row pgx.Row) (*Coupon, error) {
	var c Coupon
	var discountValue, minPurchase string
	var maxDiscount sql.NullString
	if err := row.Scan(&c.ID, &c.Code, &c.DiscountType, &discountValue, &minPurchase,
		&maxDiscount, &c.IsActive, &c.StartDate, &c.EndDate, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	var err error
	if c.DiscountValue, err = decimal.NewFromString(discountValue); err != nil {
		return nil, err
	}
	if c.MinPurchase, err = decimal.NewFromString(minPurchase); err != nil {
		return nil, err
	}
	if maxDiscount.Valid {
		md, err := decimal.NewFromString(maxDiscount.String)
		if err != nil {
			return nil, err
		}
		c.MaxDiscount = &md
	}
	return &c, nil
}

// AnnounceMessage is the notification body sent to users when a coupon goes
// live.
func AnnounceMessage(c *Coupon) string {
	if c.DiscountType == TypePercentage {
		return fmt.Sprintf("New coupon code %s available! Get %s%% off", c.Code, c.DiscountValue.String())
	}
	return fmt.Sprintf("New coupon code %s available! Get $%s off", c.Code, c.DiscountValue.String())
}

// Create inserts the coupon and, when it is active, fans out one announcement
// notification per user inside the same transaction. The fan-out is a single
// INSERT..SELECT capped at notifyLimit recipients, newest accounts first.
func (r *PGRepo) Create(ctx context.Context, c *Coupon) (*Coupon, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	var maxDiscount any
	if c.MaxDiscount != nil {
		maxDiscount = c.MaxDiscount.String()
	}
	created, err := scanCoupon(tx.QueryRow(ctx, `
		INSERT INTO coupons (id, code, discount_type, discount_value, min_purchase,
			max_discount, is_active, start_date, end_date)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING `+couponColumns,
		c.ID, c.Code, c.DiscountType, c.DiscountValue.String(), c.MinPurchase.String(),
		maxDiscount, c.IsActive, c.StartDate, c.EndDate))
	if err != nil {
		return nil, ErrAlreadyExist
	}

	if created.IsActive {
		if _, err := tx.Exec(ctx, `
			INSERT INTO notifications (user_id, type, message, coupon_id)
			SELECT id, $1, $2, $3
			FROM users
			WHERE is_active
			ORDER BY created_at DESC
			LIMIT $4
		`, notification.TypeCoupon, AnnounceMessage(created), created.ID, r.notifyLimit); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Coupon, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	c, err := scanCoupon(r.db.QueryRow(ctx, `SELECT `+couponColumns+` FROM coupons WHERE id=$1`, id))
	if err != nil {
		return nil, ErrNotFound
	}
	return c, nil
}

// GetByCode resolves a code case-insensitively for the validate endpoint.
func (r *PGRepo) GetByCode(ctx context.Context, code string) (*Coupon, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	c, err := scanCoupon(r.db.QueryRow(ctx, `
		SELECT `+couponColumns+` FROM coupons WHERE UPPER(code)=UPPER($1)
	`, code))
	if err != nil {
		return nil, ErrNotFound
	}
	return c, nil
}

func (r *PGRepo) List(ctx context.Context, activeOnly bool) ([]Coupon, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	q := `SELECT ` + couponColumns + ` FROM coupons`
	if activeOnly {
		q += ` WHERE is_active`
	}
	q += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Coupon, 0)
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, c *Coupon) (*Coupon, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var maxDiscount any
	if c.MaxDiscount != nil {
		maxDiscount = c.MaxDiscount.String()
	}
	updated, err := scanCoupon(r.db.QueryRow(ctx, `
		UPDATE coupons SET
			code = COALESCE(NULLIF($2,''), code),
			discount_type = COALESCE(NULLIF($3,''), discount_type),
			discount_value = COALESCE(NULLIF($4,'')::numeric, discount_value),
			min_purchase = COALESCE(NULLIF($5,'')::numeric, min_purchase),
			max_discount = COALESCE($6::numeric, max_discount),
			is_active = $7,
			start_date = COALESCE($8, start_date),
			end_date = COALESCE($9, end_date),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+couponColumns,
		c.ID, c.Code, c.DiscountType, c.DiscountValue.String(), c.MinPurchase.String(),
		maxDiscount, c.IsActive, c.StartDate, c.EndDate))
	if err != nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

func (r *PGRepo) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM coupons WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
