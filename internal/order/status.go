package order

import (
	"fmt"

	"github.com/mcastellan/shopcore/internal/product"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusShipped   Status = "Shipped"
	StatusDelivered Status = "Delivered"
	StatusCancelled Status = "Cancelled"
)

// transitions is the full state machine; Delivered and Cancelled are
// terminal.
var transitions = map[Status][]Status{
	StatusPending:   {StatusShipped, StatusCancelled},
	StatusShipped:   {StatusDelivered, StatusCancelled},
	StatusDelivered: {},
	StatusCancelled: {},
}

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusShipped, StatusDelivered, StatusCancelled:
		return Status(s), true
	}
	return "", false
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionError reports a status change the state machine forbids.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot transition from %s to %s", e.From, e.To)
}

// StockLine pairs an order item with the live stock of its product.
type StockLine struct {
	ProductID string
	Name      string
	Quantity  int
	Stock     int
}

// FindShortfall returns a StockError for the first line whose quantity
// exceeds live stock, or nil when every line is satisfiable.
func FindShortfall(lines []StockLine) *product.StockError {
	for _, l := range lines {
		if l.Quantity > l.Stock {
			return &product.StockError{
				ProductID: l.ProductID,
				Name:      l.Name,
				Available: l.Stock,
				Requested: l.Quantity,
			}
		}
	}
	return nil
}
