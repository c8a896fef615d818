package favorite

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mcastellan/shopcore/internal/product"
)

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Favorite, error)
	Toggle(ctx context.Context, userID, productID string) (added bool, err error)
	Check(ctx context.Context, userID, productID string) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Favorite, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT f.id, f.user_id, f.product_id, p.name, p.price::text, p.image_url, f.created_at
		FROM favorites f JOIN products p ON p.id = f.product_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Favorite, 0)
	for rows.Next() {
		var f Favorite
		var price string
		if err := rows.Scan(&f.ID, &f.UserID, &f.ProductID, &f.Name, &price, &f.ImageURL, &f.CreatedAt); err != nil {
			return nil, err
		}
		if f.Price, err = decimal.NewFromString(price); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Toggle removes the mark when it exists, otherwise creates it. The returned
// flag reports which side happened.
func (r *PGRepo) Toggle(ctx context.Context, userID, productID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		DELETE FROM favorites WHERE user_id=$1 AND product_id=$2
	`, userID, productID)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}

	if _, err := r.db.Exec(ctx, `
		INSERT INTO favorites (id, user_id, product_id) VALUES ($1,$2,$3)
	`, uuid.NewString(), userID, productID); err != nil {
		return false, product.ErrNotFound
	}
	return true, nil
}

func (r *PGRepo) Check(ctx context.Context, userID, productID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id=$1 AND product_id=$2)
	`, userID, productID).Scan(&exists)
	return exists, err
}
