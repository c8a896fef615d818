package notification

import "time"

// Types mirror the events that produce notifications.
const (
	TypeOrderPlaced    = "order_placed"
	TypeOrderShipped   = "order_shipped"
	TypeOrderDelivered = "order_delivered"
	TypeOrderCancelled = "order_cancelled"
	TypeCoupon         = "coupon"
)

type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	OrderID   string    `json:"order_id,omitempty"`
	CouponID  string    `json:"coupon_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
