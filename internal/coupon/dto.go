package coupon

import "time"

// CreateCouponRequest swagger:model
type CreateCouponRequest struct {
	Code          string    `json:"code" binding:"required"`
	DiscountType  string    `json:"discount_type" binding:"required,oneof=percentage fixed"`
	DiscountValue string    `json:"discount_value" binding:"required"`
	MinPurchase   string    `json:"min_purchase"`
	MaxDiscount   string    `json:"max_discount"`
	IsActive      bool      `json:"is_active"`
	StartDate     time.Time `json:"start_date" binding:"required"`
	EndDate       time.Time `json:"end_date" binding:"required"`
}

// UpdateCouponRequest swagger:model
type UpdateCouponRequest struct {
	Code          string     `json:"code"`
	DiscountType  string     `json:"discount_type" binding:"omitempty,oneof=percentage fixed"`
	DiscountValue string     `json:"discount_value"`
	MinPurchase   string     `json:"min_purchase"`
	MaxDiscount   string     `json:"max_discount"`
	IsActive      *bool      `json:"is_active"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
}

// ValidateCouponRequest swagger:model
type ValidateCouponRequest struct {
	Code  string `json:"code" binding:"required"`
	Total string `json:"total" binding:"required"`
}

// ValidateCouponResponse swagger:model
type ValidateCouponResponse struct {
	Valid    bool   `json:"valid"`
	Code     string `json:"code"`
	Discount string `json:"discount"`
	Total    string `json:"total"`
	Final    string `json:"final"`
}
