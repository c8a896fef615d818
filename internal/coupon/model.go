package coupon

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypePercentage = "percentage"
	TypeFixed      = "fixed"
)

type Coupon struct {
	ID            string          `json:"id"`
	Code          string          `json:"code"`
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	MinPurchase   decimal.Decimal `json:"min_purchase"`
	// nil means the percentage discount is uncapped
	MaxDiscount *decimal.Decimal `json:"max_discount,omitempty"`
	IsActive    bool             `json:"is_active"`
	StartDate   time.Time        `json:"start_date"`
	EndDate     time.Time        `json:"end_date"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
