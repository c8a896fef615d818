package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mcastellan/shopcore/internal/order"
	"github.com/mcastellan/shopcore/internal/product"
)

// CheckoutLine is one cart item joined with the live product row, read under
// a row lock by the checkout transaction.
type CheckoutLine struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
	Stock     int
	Quantity  int
}

// BuildOrder validates the drained cart and produces the order header and
// items for it: prices frozen at their current values, total computed from
// the frozen prices. It performs no I/O, so the checkout transaction calls
// it between locking the rows and writing the order.
//
// Validation is all-or-nothing: the first unsatisfiable line aborts the
// whole checkout before anything is written.
func BuildOrder(userID, shippingAddress string, lines []CheckoutLine) (*order.Order, []order.Item, error) {
	if len(lines) == 0 {
		return nil, nil, ErrEmptyCart
	}

	for _, l := range lines {
		if l.Quantity > l.Stock {
			return nil, nil, &product.StockError{
				ProductID: l.ProductID,
				Name:      l.Name,
				Available: l.Stock,
				Requested: l.Quantity,
			}
		}
	}

	o := &order.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Status:          order.StatusPending,
		ShippingAddress: shippingAddress,
	}

	items := make([]order.Item, 0, len(lines))
	for _, l := range lines {
		items = append(items, order.Item{
			ID:        uuid.NewString(),
			OrderID:   o.ID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Price:     l.Price,
		})
	}
	o.TotalPrice = order.Total(items)
	return o, items, nil
}
