package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcastellan/shopcore/internal/cart"
	"github.com/mcastellan/shopcore/internal/category"
	"github.com/mcastellan/shopcore/internal/content"
	"github.com/mcastellan/shopcore/internal/coupon"
	"github.com/mcastellan/shopcore/internal/notification"
	"github.com/mcastellan/shopcore/internal/order"
	"github.com/mcastellan/shopcore/internal/product"
	"github.com/mcastellan/shopcore/internal/rating"
	"github.com/mcastellan/shopcore/internal/user"
)

// fail maps domain errors onto HTTP statuses in one place so handlers stay
// thin. Stock shortfalls carry the available quantity in the body.
func fail(c *gin.Context, err error) {
	var stockErr *product.StockError
	if errors.As(err, &stockErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      stockErr.Error(),
			"product_id": stockErr.ProductID,
			"available":  stockErr.Available,
			"requested":  stockErr.Requested,
		})
		return
	}

	var transErr *order.TransitionError
	if errors.As(err, &transErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": transErr.Error()})
		return
	}

	switch {
	case errors.Is(err, user.ErrNotFound),
		errors.Is(err, category.ErrNotFound),
		errors.Is(err, product.ErrNotFound),
		errors.Is(err, order.ErrNotFound),
		errors.Is(err, coupon.ErrNotFound),
		errors.Is(err, notification.ErrNotFound),
		errors.Is(err, rating.ErrNotFound),
		errors.Is(err, content.ErrNotFound),
		errors.Is(err, cart.ErrCartNotFound),
		errors.Is(err, cart.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, user.ErrAlreadyExist),
		errors.Is(err, category.ErrAlreadyExist),
		errors.Is(err, coupon.ErrAlreadyExist):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, user.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, cart.ErrEmptyCart),
		errors.Is(err, cart.ErrInvalidQuantity),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, order.ErrNotPending),
		errors.Is(err, rating.ErrOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
}
