// Package product provides the repository interface and PostgreSQL implementation for managing products.
package product

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("product not found")
)

type Query struct {
	Q      string
	Limit  int
	Offset int
}

type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, q Query) ([]Product, error)
	ListByCategory(ctx context.Context, categoryID string) ([]Product, error)
	Update(ctx context.Context, p *Product, updatePrice, updateStock bool) error
	Delete(ctx context.Context, id string) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const productColumns = `id, category_id, name, description, price::text, stock,
	size, color, image_url, average_rating::text, created_at, updated_at`

func scanProduct(row pgx.Row) (*Product, error) {
	var p Product
	var price, rating string
	if err := row.Scan(&p.ID, &p.CategoryID, &p.Name, &p.Description, &price, &p.Stock,
		&p.Size, &p.Color, &p.ImageURL, &rating, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	var err error
	if p.Price, err = decimal.NewFromString(price); err != nil {
		return nil, err
	}
	if p.AverageRating, err = decimal.NewFromString(rating); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PGRepo) Create(ctx context.Context, p *Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO products (id, category_id, name, description, price, stock, size, color, image_url)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`, p.ID, p.CategoryID, p.Name, p.Description, p.Price.String(), p.Stock, p.Size, p.Color, p.ImageURL)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRow(ctx, `
		SELECT `+productColumns+` FROM products WHERE id=$1
	`, id))
	if err != nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (r *PGRepo) List(ctx context.Context, q Query) ([]Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	search := strings.TrimSpace(q.Q)

	rows, err := r.db.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE ($1 = '' OR name ILIKE '%'||$1||'%' OR description ILIKE '%'||$1||'%')
		ORDER BY name
		LIMIT $2 OFFSET $3
	`, search, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collect(rows)
}

func (r *PGRepo) ListByCategory(ctx context.Context, categoryID string) ([]Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT `+productColumns+` FROM products WHERE category_id=$1 ORDER BY name
	`, categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collect(rows)
}

func collect(rows pgx.Rows) ([]Product, error) {
	var out []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, p *Product, updatePrice, updateStock bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET category_id = COALESCE(NULLIF($2,'')::uuid, category_id),
		    name        = COALESCE(NULLIF($3,''), name),
		    description = COALESCE(NULLIF($4,''), description),
		    size        = COALESCE(NULLIF($5,''), size),
		    color       = COALESCE(NULLIF($6,''), color),
		    image_url   = COALESCE(NULLIF($7,''), image_url),
		    price       = CASE WHEN $8 THEN $9::numeric ELSE price END,
		    stock       = CASE WHEN $10 THEN $11 ELSE stock END,
		    updated_at  = NOW()
		WHERE id = $1
	`, p.ID, p.CategoryID, p.Name, p.Description, p.Size, p.Color, p.ImageURL,
		updatePrice, p.Price.String(), updateStock, p.Stock)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}
