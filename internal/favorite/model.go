package favorite

import (
	"time"

	"github.com/shopspring/decimal"
)

// Favorite joins the mark with the product fields list screens render.
type Favorite struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"image_url,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
