package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcastellan/shopcore/internal/cart"
	"github.com/mcastellan/shopcore/internal/httpx"
)

type cartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

type mergeCartRequest struct {
	SourceCartID string `json:"source_cart_id" binding:"required"`
}

func cartResponse(c *gin.Context, status int, items []cart.Item) {
	c.JSON(status, gin.H{
		"items": items,
		"total": cart.Total(items).String(),
	})
}

func getCartHandler(repo cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := httpx.Current(c)
		items, err := repo.Items(c.Request.Context(), p.UserID)
		if err != nil {
			fail(c, err)
			return
		}
		cartResponse(c, http.StatusOK, items)
	}
}

func addCartItemHandler(repo cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req cartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		p, _ := httpx.Current(c)
		items, err := repo.AddProduct(c.Request.Context(), p.UserID, req.ProductID, req.Quantity)
		if err != nil {
			fail(c, err)
			return
		}
		cartResponse(c, http.StatusCreated, items)
	}
}

func updateCartItemHandler(repo cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req setQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		p, _ := httpx.Current(c)
		items, err := repo.SetQuantity(c.Request.Context(), p.UserID, c.Param("productID"), req.Quantity)
		if err != nil {
			fail(c, err)
			return
		}
		cartResponse(c, http.StatusOK, items)
	}
}

func removeCartItemHandler(repo cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := httpx.Current(c)
		if err := repo.RemoveProduct(c.Request.Context(), p.UserID, c.Param("productID")); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func clearCartHandler(repo cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := httpx.Current(c)
		if err := repo.Clear(c.Request.Context(), p.UserID); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// mergeCartHandler folds another cart into the caller's. Only the cart's
// owner may merge it, which covers the device-to-account handoff after
// login.
func mergeCartHandler(repo cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req mergeCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		p, _ := httpx.Current(c)
		owner, err := repo.Owner(c.Request.Context(), req.SourceCartID)
		if err != nil {
			fail(c, err)
			return
		}
		if owner != p.UserID && !p.IsStaff {
			forbidden(c)
			return
		}
		if err := repo.Merge(c.Request.Context(), req.SourceCartID, p.UserID); err != nil {
			fail(c, err)
			return
		}
		items, err := repo.Items(c.Request.Context(), p.UserID)
		if err != nil {
			fail(c, err)
			return
		}
		cartResponse(c, http.StatusOK, items)
	}
}

// checkoutHandler turns the cart into a pending order.
func checkoutHandler(repo cart.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := httpx.Current(c)
		o, err := repo.Checkout(c.Request.Context(), p.UserID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, o)
	}
}
