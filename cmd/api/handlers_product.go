package main

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mcastellan/shopcore/internal/product"
)

func pagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}

// listProductsHandler paginates without search; /products/search handles q.
func listProductsHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset := pagination(c)
		items, err := repo.List(c.Request.Context(), product.Query{Limit: limit, Offset: offset})
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, product.ListResponse{Limit: limit, Offset: offset, Items: items})
	}
}

// searchProductsHandler requires q of at least two characters.
func searchProductsHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := strings.TrimSpace(c.Query("q"))
		if len(q) < 2 {
			badRequest(c, "q must be at least 2 characters")
			return
		}
		limit, offset := pagination(c)
		items, err := repo.List(c.Request.Context(), product.Query{Q: q, Limit: limit, Offset: offset})
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, product.ListResponse{Q: q, Limit: limit, Offset: offset, Items: items})
	}
}

func getProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// createProductHandler godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Param body body product.CreateProductRequest true "product"
// @Success 201 {object} product.Product
// @Router /admin/products [post]
func createProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req product.CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		if req.Name == "" || req.Price == "" || req.CategoryID == "" {
			badRequest(c, "name, price and category_id are required")
			return
		}
		price, err := decimal.NewFromString(req.Price)
		if err != nil || price.IsNegative() {
			badRequest(c, "price must be a non-negative decimal")
			return
		}
		if req.Stock < 0 {
			badRequest(c, "stock must be >= 0")
			return
		}
		p := &product.Product{
			ID:          uuid.NewString(),
			CategoryID:  req.CategoryID,
			Name:        req.Name,
			Description: req.Description,
			Price:       price,
			Stock:       req.Stock,
			Size:        req.Size,
			Color:       req.Color,
			ImageURL:    req.ImageURL,
		}
		if err := repo.Create(c.Request.Context(), p); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

// updateProductHandler applies a partial update. Price and stock change only
// when the payload carries them.
func updateProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req product.UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}

		p := &product.Product{
			ID:          c.Param("id"),
			CategoryID:  req.CategoryID,
			Name:        req.Name,
			Description: req.Description,
			Size:        req.Size,
			Color:       req.Color,
			ImageURL:    req.ImageURL,
		}

		updatePrice := req.Price != ""
		if updatePrice {
			price, err := decimal.NewFromString(req.Price)
			if err != nil || price.IsNegative() {
				badRequest(c, "price must be a non-negative decimal")
				return
			}
			p.Price = price
		}

		updateStock := req.Stock != nil
		if updateStock {
			if *req.Stock < 0 {
				badRequest(c, "stock must be >= 0")
				return
			}
			p.Stock = *req.Stock
		}

		if err := repo.Update(c.Request.Context(), p, updatePrice, updateStock); err != nil {
			fail(c, err)
			return
		}
		out, err := repo.GetByID(c.Request.Context(), p.ID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func deleteProductHandler(repo product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := repo.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		if !ok {
			fail(c, product.ErrNotFound)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
