package coupon

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// IsValid reports whether the coupon is active and inside its validity
// window at the given instant.
func (c *Coupon) IsValid(now time.Time) bool {
	return c.IsActive && !now.Before(c.StartDate) && !now.After(c.EndDate)
}

// CalculateDiscount returns the discount for a purchase total. Invalid
// coupons and totals below the minimum purchase yield zero. Percentage
// discounts are capped at MaxDiscount when set; fixed discounts return the
// raw value and may exceed the total, so callers clamp before applying.
func (c *Coupon) CalculateDiscount(total decimal.Decimal, now time.Time) decimal.Decimal {
	if !c.IsValid(now) || total.LessThan(c.MinPurchase) {
		return decimal.Zero
	}

	if c.DiscountType == TypePercentage {
		discount := total.Mul(c.DiscountValue).Div(hundred)
		if c.MaxDiscount != nil && discount.GreaterThan(*c.MaxDiscount) {
			discount = *c.MaxDiscount
		}
		return discount
	}
	return c.DiscountValue
}
