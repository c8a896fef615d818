package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mcastellan/shopcore/internal/notification"
	"github.com/mcastellan/shopcore/internal/product"
)

var (
	ErrNotFound        = errors.New("order not found")
	ErrNotPending      = errors.New("order is no longer pending")
	ErrInvalidQuantity = errors.New("quantity must be greater than 0")
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*Order, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Order, error)
	ListAll(ctx context.Context, limit, offset int) ([]Order, error)
	UpdateStatus(ctx context.Context, id string, to Status) (*Order, error)
	AddProduct(ctx context.Context, orderID, productID string, qty int) (*Order, error)
	RemoveItem(ctx context.Context, orderID, productID string) (*Order, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// InsertTx writes the order header and its items inside the caller's
// transaction; the checkout orchestrator builds on this.
func InsertTx(ctx context.Context, tx pgx.Tx, o *Order, items []Item) error {
	if _, err := tx.Exec(ctx, `
		INSERT INTO orders (id, user_id, status, shipping_address, total_price)
		VALUES ($1,$2,$3,$4,$5)
	`, o.ID, o.UserID, string(o.Status), o.ShippingAddress, o.TotalPrice.String()); err != nil {
		return err
	}
	for _, it := range items {
		if _, err := tx.Exec(ctx, `
			INSERT INTO order_items (id, order_id, product_id, quantity, price)
			VALUES ($1,$2,$3,$4,$5)
		`, it.ID, o.ID, it.ProductID, it.Quantity, it.Price.String()); err != nil {
			return err
		}
	}
	return nil
}

const orderColumns = `id, user_id, status, shipping_address, total_price::text, created_at, updated_at`

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	var status, total string
	if err := row.Scan(&o.ID, &o.UserID, &status, &o.ShippingAddress, &total, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	o.Status = Status(status)
	var err error
	if o.TotalPrice, err = decimal.NewFromString(total); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, id))
	if err != nil {
		return nil, ErrNotFound
	}

	rows, err := r.db.Query(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, p.name, oi.quantity, oi.price::text
		FROM order_items oi JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY p.name
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var it Item
		var price string
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Name, &it.Quantity, &price); err != nil {
			return nil, err
		}
		if it.Price, err = decimal.NewFromString(price); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, it)
	}
	return o, rows.Err()
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Order, error) {
	return r.list(ctx, `WHERE user_id=$3`, limit, offset, userID)
}

func (r *PGRepo) ListAll(ctx context.Context, limit, offset int) ([]Order, error) {
	return r.list(ctx, ``, limit, offset)
}

func (r *PGRepo) list(ctx context.Context, where string, limit, offset int, args ...any) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := fmt.Sprintf(`
		SELECT %s FROM orders %s
		ORDER BY created_at DESC LIMIT $1 OFFSET $2
	`, orderColumns, where)

	rows, err := r.db.Query(ctx, query, append([]any{limit, offset}, args...)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

// UpdateStatus enforces the state machine under a row lock. Shipping
// re-validates live stock; delivering only re-checks and logs shortfalls,
// because stock was already decremented at checkout.
func (r *PGRepo) UpdateStatus(ctx context.Context, id string, to Status) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var userID, cur string
	if err := tx.QueryRow(ctx, `
		SELECT user_id, status FROM orders WHERE id=$1 FOR UPDATE
	`, id).Scan(&userID, &cur); err != nil {
		return nil, ErrNotFound
	}

	from := Status(cur)
	if !CanTransition(from, to) {
		return nil, &TransitionError{From: from, To: to}
	}

	if to == StatusShipped || to == StatusDelivered {
		lines, err := lockStockLines(ctx, tx, id)
		if err != nil {
			return nil, err
		}
		if shortfall := FindShortfall(lines); shortfall != nil {
			if to == StatusShipped {
				return nil, shortfall
			}
			// Delivered: checkout already took the stock, so a shortfall
			// here is an inventory inconsistency for operators, not a
			// reason to fail the delivery.
			log.Printf("[order] stock inconsistency delivering order %s: %v", id, shortfall)
		}
	}

	if _, err := tx.Exec(ctx, `
		UPDATE orders SET status=$2, updated_at=NOW() WHERE id=$1
	`, id, string(to)); err != nil {
		return nil, err
	}

	if err := notification.InsertTx(ctx, tx, statusNotification(id, userID, to)); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func lockStockLines(ctx context.Context, tx pgx.Tx, orderID string) ([]StockLine, error) {
	rows, err := tx.Query(ctx, `
		SELECT oi.product_id, p.name, oi.quantity, p.stock
		FROM order_items oi JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY oi.product_id
		FOR UPDATE OF p
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []StockLine
	for rows.Next() {
		var l StockLine
		if err := rows.Scan(&l.ProductID, &l.Name, &l.Quantity, &l.Stock); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func statusNotification(orderID, userID string, to Status) notification.Notification {
	n := notification.Notification{UserID: userID, OrderID: orderID}
	switch to {
	case StatusShipped:
		n.Type = notification.TypeOrderShipped
		n.Message = fmt.Sprintf("Your order #%s has been shipped", orderID)
	case StatusDelivered:
		n.Type = notification.TypeOrderDelivered
		n.Message = fmt.Sprintf("Your order #%s has been delivered", orderID)
	case StatusCancelled:
		n.Type = notification.TypeOrderCancelled
		n.Message = fmt.Sprintf("Your order #%s has been cancelled", orderID)
	}
	return n
}

// AddProduct creates or increments an order item while the order is still
// pending. The unit price is frozen when the item row is first created and
// never touched on repeat adds; the cached total is recomputed in the same
// transaction so it is never stale.
func (r *PGRepo) AddProduct(ctx context.Context, orderID, productID string, qty int) (*Order, error) {
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var cur string
	if err := tx.QueryRow(ctx, `
		SELECT status FROM orders WHERE id=$1 FOR UPDATE
	`, orderID).Scan(&cur); err != nil {
		return nil, ErrNotFound
	}
	if Status(cur) != StatusPending {
		return nil, ErrNotPending
	}

	var price string
	if err := tx.QueryRow(ctx, `
		SELECT price::text FROM products WHERE id=$1
	`, productID).Scan(&price); err != nil {
		return nil, product.ErrNotFound
	}

	// On a repeat add only the quantity grows. The price column keeps the
	// value captured when the row was first written, even if the product's
	// live price has changed since.
	if _, err := tx.Exec(ctx, `
		INSERT INTO order_items (id, order_id, product_id, quantity, price)
		VALUES ($1,$2,$3,$4,$5)
		ON CONFLICT (order_id, product_id)
		DO UPDATE SET quantity = order_items.quantity + EXCLUDED.quantity
	`, uuid.NewString(), orderID, productID, qty, price); err != nil {
		return nil, err
	}

	if err := recomputeTotalTx(ctx, tx, orderID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, orderID)
}

// RemoveItem deletes an order item and recomputes the cached total in the
// same transaction.
func (r *PGRepo) RemoveItem(ctx context.Context, orderID, productID string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var cur string
	if err := tx.QueryRow(ctx, `
		SELECT status FROM orders WHERE id=$1 FOR UPDATE
	`, orderID).Scan(&cur); err != nil {
		return nil, ErrNotFound
	}
	if Status(cur) != StatusPending {
		return nil, ErrNotPending
	}

	tag, err := tx.Exec(ctx, `
		DELETE FROM order_items WHERE order_id=$1 AND product_id=$2
	`, orderID, productID)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrNotFound
	}

	if err := recomputeTotalTx(ctx, tx, orderID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, orderID)
}

func recomputeTotalTx(ctx context.Context, tx pgx.Tx, orderID string) error {
	_, err := tx.Exec(ctx, `
		UPDATE orders
		SET total_price = COALESCE((SELECT SUM(price * quantity) FROM order_items WHERE order_id=$1), 0),
		    updated_at = NOW()
		WHERE id = $1
	`, orderID)
	return err
}
