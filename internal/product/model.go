package product

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string `json:"id"`
	CategoryID  string `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// NUMERIC in Postgres; carried as a decimal to avoid rounding errors
	Price         decimal.Decimal `json:"price"`
	Stock         int             `json:"stock"`
	Size          string          `json:"size,omitempty"`
	Color         string          `json:"color,omitempty"`
	ImageURL      string          `json:"image_url,omitempty"`
	AverageRating decimal.Decimal `json:"average_rating"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// StockError reports a requested quantity exceeding live stock. It names the
// offending product and the quantity still available.
type StockError struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Available int    `json:"available"`
	Requested int    `json:"requested"`
}

func (e *StockError) Error() string {
	return fmt.Sprintf("not enough stock for %s. Available: %d", e.Name, e.Available)
}

// CreateProductRequest payload of creation.
// swagger:model CreateProductRequest
type CreateProductRequest struct {
	CategoryID  string `json:"category_id" example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	Name        string `json:"name"        example:"Denim Jacket"`
	Description string `json:"description" example:"Classic fit"`
	Price       string `json:"price"       example:"59.90"`
	Stock       int    `json:"stock"       example:"10"`
	Size        string `json:"size"        example:"M"`
	Color       string `json:"color"       example:"blue"`
	ImageURL    string `json:"image_url"`
}

// UpdateProductRequest payload of partial update.
// swagger:model UpdateProductRequest
type UpdateProductRequest struct {
	CategoryID  string `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Stock       *int   `json:"stock"`
	Size        string `json:"size"`
	Color       string `json:"color"`
	ImageURL    string `json:"image_url"`
}

// ListResponse represents the paginated response of products.
// swagger:model
type ListResponse struct {
	Q      string    `json:"q,omitempty"`
	Limit  int       `json:"limit"`
	Offset int       `json:"offset"`
	Items  []Product `json:"items"`
}
