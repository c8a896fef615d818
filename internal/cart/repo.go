package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mcastellan/shopcore/internal/notification"
	"github.com/mcastellan/shopcore/internal/order"
	"github.com/mcastellan/shopcore/internal/product"
)

var (
	ErrCartNotFound    = errors.New("cart not found")
	ErrItemNotFound    = errors.New("item not found in cart")
	ErrInvalidQuantity = errors.New("quantity must be greater than 0")
	ErrEmptyCart       = errors.New("cart is empty")
)

type Repository interface {
	AddProduct(ctx context.Context, userID, productID string, qty int) ([]Item, error)
	RemoveProduct(ctx context.Context, userID, productID string) error
	SetQuantity(ctx context.Context, userID, productID string, qty int) ([]Item, error)
	Items(ctx context.Context, userID string) ([]Item, error)
	Clear(ctx context.Context, userID string) error
	Owner(ctx context.Context, cartID string) (string, error)
	Merge(ctx context.Context, sourceCartID, targetUserID string) error
	Checkout(ctx context.Context, userID string) (*order.Order, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

// ensureCartTx returns the user's cart id, creating the row on first use.
func ensureCartTx(ctx context.Context, tx pgx.Tx, userID string) (string, error) {
	var cartID string
	err := tx.QueryRow(ctx, `
		INSERT INTO carts (id, user_id) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET updated_at = NOW()
		RETURNING id
	`, uuid.NewString(), userID).Scan(&cartID)
	return cartID, err
}

// AddProduct creates the (cart, product) item or increments its quantity.
// The live stock is checked against the requested quantity so the caller
// gets the available count back in the error.
func (r *PGRepo) AddProduct(ctx context.Context, userID, productID string, qty int) ([]Item, error) {
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

	cartID, err := ensureCartTx(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	var name string
	var stock int
	if err := tx.QueryRow(ctx, `
		SELECT name, stock FROM products WHERE id=$1
	`, productID).Scan(&name, &stock); err != nil {
		return nil, product.ErrNotFound
	}
	if stock < qty {
		return nil, &product.StockError{ProductID: productID, Name: name, Available: stock, Requested: qty}
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO cart_items (id, cart_id, product_id, quantity)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = NOW()
	`, uuid.NewString(), cartID, productID, qty); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.Items(ctx, userID)
}

func (r *PGRepo) RemoveProduct(ctx context.Context, userID, productID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		DELETE FROM cart_items ci
		USING carts c
		WHERE ci.cart_id = c.id AND c.user_id = $1 AND ci.product_id = $2
	`, userID, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}

// SetQuantity overwrites the quantity of an existing item.
func (r *PGRepo) SetQuantity(ctx context.Context, userID, productID string, qty int) ([]Item, error) {
	if qty <= 0 {
		return nil, ErrInvalidQuantity
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var name string
	var stock int
	if err := r.db.QueryRow(ctx, `
		SELECT name, stock FROM products WHERE id=$1
	`, productID).Scan(&name, &stock); err != nil {
		return nil, product.ErrNotFound
	}
	if stock < qty {
		return nil, &product.StockError{ProductID: productID, Name: name, Available: stock, Requested: qty}
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE cart_items ci
		SET quantity = $3, updated_at = NOW()
		FROM carts c
		WHERE ci.cart_id = c.id AND c.user_id = $1 AND ci.product_id = $2
	`, userID, productID, qty)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrItemNotFound
	}
	return r.Items(ctx, userID)
}

func (r *PGRepo) Items(ctx context.Context, userID string) ([]Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT ci.id, ci.cart_id, ci.product_id, p.name, p.price::text, p.image_url, p.stock, ci.quantity
		FROM cart_items ci
		JOIN carts c ON c.id = ci.cart_id
		JOIN products p ON p.id = ci.product_id
		WHERE c.user_id = $1
		ORDER BY ci.created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]Item, 0)
	for rows.Next() {
		var it Item
		var price string
		if err := rows.Scan(&it.ID, &it.CartID, &it.ProductID, &it.Name, &price, &it.ImageURL, &it.Stock, &it.Quantity); err != nil {
			return nil, err
		}
		if it.Price, err = decimal.NewFromString(price); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PGRepo) Clear(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		DELETE FROM cart_items ci
		USING carts c
		WHERE ci.cart_id = c.id AND c.user_id = $1
	`, userID)
	return err
}

// Owner reports which user a cart belongs to; the merge handler uses it for
// the same-user authorization check.
func (r *PGRepo) Owner(ctx context.Context, cartID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var userID string
	if err := r.db.QueryRow(ctx, `SELECT user_id FROM carts WHERE id=$1`, cartID).Scan(&userID); err != nil {
		return "", ErrCartNotFound
	}
	return userID, nil
}

// Merge folds every item of the source cart into the target user's cart
// (summing quantities on collision), then deletes the source cart.
func (r *PGRepo) Merge(ctx context.Context, sourceCartID, targetUserID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	targetCartID, err := ensureCartTx(ctx, tx, targetUserID)
	if err != nil {
		return err
	}
	if targetCartID == sourceCartID {
		// merging a cart into itself is a no-op
		return tx.Commit(ctx)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO cart_items (cart_id, product_id, quantity)
		SELECT $1, product_id, quantity FROM cart_items WHERE cart_id = $2
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = NOW()
	`, targetCartID, sourceCartID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM carts WHERE id=$1`, sourceCartID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Checkout atomically drains the cart into a new pending order: lock the
// product rows, re-validate stock, write the order with frozen prices,
// decrement stock, clear the cart and emit the order_placed notification.
// Everything happens in one transaction, so a failed checkout leaves no
// trace. Concurrent checkouts of the same cart serialize on the product row
// locks; the loser re-reads and sees either an empty cart or the reduced
// stock.
func (r *PGRepo) Checkout(ctx context.Context, userID string) (*order.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var cartID string
	if err := tx.QueryRow(ctx, `
		SELECT id FROM carts WHERE user_id=$1 FOR UPDATE
	`, userID).Scan(&cartID); err != nil {
		return nil, ErrEmptyCart
	}

	lines, err := lockCheckoutLines(ctx, tx, cartID)
	if err != nil {
		return nil, err
	}

	var address string
	if err := tx.QueryRow(ctx, `SELECT address FROM users WHERE id=$1`, userID).Scan(&address); err != nil {
		return nil, err
	}

	o, items, err := BuildOrder(userID, address, lines)
	if err != nil {
		return nil, err
	}

	if err := order.InsertTx(ctx, tx, o, items); err != nil {
		return nil, err
	}

	for _, it := range items {
		if _, err := tx.Exec(ctx, `
			UPDATE products SET stock = stock - $2, updated_at = NOW() WHERE id = $1
		`, it.ProductID, it.Quantity); err != nil {
			return nil, err
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id=$1`, cartID); err != nil {
		return nil, err
	}

	if err := notification.InsertTx(ctx, tx, notification.Notification{
		UserID:  userID,
		Type:    notification.TypeOrderPlaced,
		Message: fmt.Sprintf("Your order #%s has been placed successfully", o.ID),
		OrderID: o.ID,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

func lockCheckoutLines(ctx context.Context, tx pgx.Tx, cartID string) ([]CheckoutLine, error) {
	rows, err := tx.Query(ctx, `
		SELECT ci.product_id, p.name, p.price::text, p.stock, ci.quantity
		FROM cart_items ci JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.product_id
		FOR UPDATE OF p
	`, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []CheckoutLine
	for rows.Next() {
		var l CheckoutLine
		var price string
		if err := rows.Scan(&l.ProductID, &l.Name, &price, &l.Stock, &l.Quantity); err != nil {
			return nil, err
		}
		if l.Price, err = decimal.NewFromString(price); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
