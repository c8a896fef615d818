package cart

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcastellan/shopcore/internal/order"
	"github.com/mcastellan/shopcore/internal/product"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestBuildOrder_EmptyCart(t *testing.T) {
	_, _, err := BuildOrder("u1", "somewhere", nil)
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, _, err = BuildOrder("u1", "somewhere", []CheckoutLine{})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

// A single unsatisfiable line aborts the whole checkout.
func TestBuildOrder_AllOrNothing(t *testing.T) {
	lines := []CheckoutLine{
		{ProductID: "a", Name: "Jacket", Price: dec("59.90"), Stock: 10, Quantity: 1},
		{ProductID: "b", Name: "Boots", Price: dec("120.00"), Stock: 1, Quantity: 2},
	}
	o, items, err := BuildOrder("u1", "somewhere", lines)
	assert.Nil(t, o)
	assert.Nil(t, items)

	var stockErr *product.StockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, "b", stockErr.ProductID)
	assert.Equal(t, 1, stockErr.Available)
	assert.Equal(t, 2, stockErr.Requested)
	assert.Contains(t, stockErr.Error(), "not enough stock for Boots")
}

func TestBuildOrder_FreezesPricesAndTotal(t *testing.T) {
	lines := []CheckoutLine{
		{ProductID: "a", Name: "Jacket", Price: dec("59.90"), Stock: 10, Quantity: 2},
		{ProductID: "b", Name: "Scarf", Price: dec("9.95"), Stock: 3, Quantity: 3},
	}
	o, items, err := BuildOrder("u1", "742 Evergreen Terrace", lines)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "u1", o.UserID)
	assert.Equal(t, order.StatusPending, o.Status)
	assert.Equal(t, "742 Evergreen Terrace", o.ShippingAddress)
	assert.NotEmpty(t, o.ID)

	for i, it := range items {
		assert.Equal(t, o.ID, it.OrderID)
		assert.Equal(t, lines[i].ProductID, it.ProductID)
		assert.Equal(t, lines[i].Quantity, it.Quantity)
		assert.True(t, lines[i].Price.Equal(it.Price), "price frozen from the line")
	}

	// 2*59.90 + 3*9.95 = 149.65
	assert.True(t, dec("149.65").Equal(o.TotalPrice), "got %s", o.TotalPrice)
	assert.True(t, order.Total(items).Equal(o.TotalPrice))
}

func TestBuildOrder_ExactStockOK(t *testing.T) {
	lines := []CheckoutLine{
		{ProductID: "a", Name: "Jacket", Price: dec("10.00"), Stock: 2, Quantity: 2},
	}
	o, items, err := BuildOrder("u1", "", lines)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.True(t, dec("20.00").Equal(o.TotalPrice))
}

func TestCartTotal_LivePrices(t *testing.T) {
	items := []Item{
		{ProductID: "a", Price: dec("5.50"), Quantity: 2},
		{ProductID: "b", Price: dec("1.25"), Quantity: 4},
	}
	assert.True(t, dec("16.00").Equal(Total(items)))
	assert.True(t, decimal.Zero.Equal(Total(nil)))
}
