package coupon

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testCoupon() *Coupon {
	return &Coupon{
		Code:          "SAVE10",
		DiscountType:  TypePercentage,
		DiscountValue: dec("10"),
		MinPurchase:   dec("50"),
		IsActive:      true,
		StartDate:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
	}
}

func TestIsValid(t *testing.T) {
	c := testCoupon()
	in := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	before := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	after := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, c.IsValid(in))
	assert.False(t, c.IsValid(before))
	assert.False(t, c.IsValid(after))

	c.IsActive = false
	assert.False(t, c.IsValid(in))
}

func TestCalculateDiscount_Percentage(t *testing.T) {
	c := testCoupon()
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.True(t, dec("10").Equal(c.CalculateDiscount(dec("100"), now)), "10%% of 100")
	assert.True(t, decimal.Zero.Equal(c.CalculateDiscount(dec("40"), now)), "below min purchase")
	assert.True(t, dec("5").Equal(c.CalculateDiscount(dec("50"), now)), "exactly min purchase qualifies")
}

func TestCalculateDiscount_PercentageCapped(t *testing.T) {
	c := testCoupon()
	c.DiscountValue = dec("50")
	cap := dec("20")
	c.MaxDiscount = &cap
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// 50% of 100 is 50, capped at 20
	assert.True(t, dec("20").Equal(c.CalculateDiscount(dec("100"), now)))
}

func TestCalculateDiscount_Fixed(t *testing.T) {
	c := testCoupon()
	c.DiscountType = TypeFixed
	c.DiscountValue = dec("15")
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.True(t, dec("15").Equal(c.CalculateDiscount(dec("100"), now)))
	assert.True(t, decimal.Zero.Equal(c.CalculateDiscount(dec("40"), now)), "min purchase still applies")
}

func TestCalculateDiscount_InvalidCouponIsZero(t *testing.T) {
	c := testCoupon()
	c.IsActive = false
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.True(t, decimal.Zero.Equal(c.CalculateDiscount(dec("100"), now)))
}
