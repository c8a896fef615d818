package rating

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound   = errors.New("rating not found")
	ErrOutOfRange = errors.New("rating must be between 1 and 5")
)

type Repository interface {
	// Rate inserts or updates the caller's rating for a product and
	// recomputes the product aggregate in the same transaction.
	Rate(ctx context.Context, userID, productID string, value int, comment string) (*Rating, error)
	ListByProduct(ctx context.Context, productID string) ([]Rating, error)
	GetByID(ctx context.Context, id string) (*Rating, error)
	Delete(ctx context.Context, id string) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Rate(ctx context.Context, userID, productID string, value int, comment string) (*Rating, error) {
	if value < 1 || value > 5 {
		return nil, ErrOutOfRange
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var rt Rating
	err = tx.QueryRow(ctx, `
		INSERT INTO ratings (id, product_id, user_id, rating, comment)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (product_id, user_id)
		DO UPDATE SET rating=EXCLUDED.rating, comment=EXCLUDED.comment, updated_at=NOW()
		RETURNING id, product_id, user_id, rating, comment, created_at, updated_at
	`, uuid.NewString(), productID, userID, value, comment).Scan(
		&rt.ID, &rt.ProductID, &rt.UserID, &rt.Rating, &rt.Comment, &rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		return nil, err
	}

	// derived aggregate lives on the product row
	if _, err := tx.Exec(ctx, `
		UPDATE products
		SET average_rating = COALESCE((SELECT AVG(rating) FROM ratings WHERE product_id=$1), 0),
		    updated_at = NOW()
		WHERE id = $1
	`, productID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *PGRepo) ListByProduct(ctx context.Context, productID string) ([]Rating, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.product_id, r.user_id, u.username, r.rating, r.comment, r.created_at, r.updated_at
		FROM ratings r JOIN users u ON u.id = r.user_id
		WHERE r.product_id = $1
		ORDER BY r.created_at DESC
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Rating
	for rows.Next() {
		var rt Rating
		if err := rows.Scan(&rt.ID, &rt.ProductID, &rt.UserID, &rt.Username, &rt.Rating,
			&rt.Comment, &rt.CreatedAt, &rt.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Rating, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rt Rating
	err := r.db.QueryRow(ctx, `
		SELECT id, product_id, user_id, rating, comment, created_at, updated_at
		FROM ratings WHERE id=$1
	`, id).Scan(&rt.ID, &rt.ProductID, &rt.UserID, &rt.Rating, &rt.Comment, &rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		return nil, ErrNotFound
	}
	return &rt, nil
}

func (r *PGRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var productID string
	if err := tx.QueryRow(ctx, `
		DELETE FROM ratings WHERE id=$1 RETURNING product_id
	`, id).Scan(&productID); err != nil {
		return ErrNotFound
	}

	if _, err := tx.Exec(ctx, `
		UPDATE products
		SET average_rating = COALESCE((SELECT AVG(rating) FROM ratings WHERE product_id=$1), 0),
		    updated_at = NOW()
		WHERE id = $1
	`, productID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
