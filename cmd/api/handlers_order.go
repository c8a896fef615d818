package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcastellan/shopcore/internal/httpx"
	"github.com/mcastellan/shopcore/internal/order"
)

func listMyOrdersHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := httpx.Current(c)
		limit, offset := pagination(c)
		out, err := repo.ListByUser(c.Request.Context(), p.UserID, limit, offset)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": out, "limit": limit, "offset": offset})
	}
}

func listAllOrdersHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := pagination(c)
		out, err := repo.ListAll(c.Request.Context(), limit, offset)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": out, "limit": limit, "offset": offset})
	}
}

// getOrderHandler returns the order to its owner or to staff.
func getOrderHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := httpx.Current(c)
		o, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		if o.UserID != p.UserID && !p.IsStaff {
			forbidden(c)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

func addOrderItemHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" {
			badRequest(c, "product_id and quantity are required")
			return
		}
		p, _ := httpx.Current(c)
		o, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		if o.UserID != p.UserID && !p.IsStaff {
			forbidden(c)
			return
		}
		out, err := repo.AddProduct(c.Request.Context(), o.ID, req.ProductID, req.Quantity)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func removeOrderItemHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := httpx.Current(c)
		o, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		if o.UserID != p.UserID && !p.IsStaff {
			forbidden(c)
			return
		}
		out, err := repo.RemoveItem(c.Request.Context(), o.ID, c.Param("productID"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// updateOrderStatusHandler drives the state machine. Owners may only cancel
// their own orders; every other transition is staff-side fulfilment.
func updateOrderStatusHandler(repo order.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		to, ok := order.ParseStatus(req.Status)
		if !ok {
			badRequest(c, "status must be one of Pending, Shipped, Delivered, Cancelled")
			return
		}

		p, _ := httpx.Current(c)
		o, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		if !p.IsStaff {
			if o.UserID != p.UserID || to != order.StatusCancelled {
				forbidden(c)
				return
			}
		}

		out, err := repo.UpdateStatus(c.Request.Context(), o.ID, to)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
