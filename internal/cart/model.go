package cart

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Items     []Item    `json:"items"`
	Total     string    `json:"total"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Item carries the live product data alongside the stored quantity. Unlike
// order items the price here is NOT frozen: subtotals always reflect the
// product's current price.
type Item struct {
	ID        string          `json:"id"`
	CartID    string          `json:"cart_id"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"image_url,omitempty"`
	Stock     int             `json:"stock"`
	Quantity  int             `json:"quantity"`
}

// Subtotal is current price × quantity.
func (it Item) Subtotal() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Total sums live subtotals across all items.
func Total(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}
