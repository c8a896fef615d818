package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mcastellan/shopcore/internal/category"
	"github.com/mcastellan/shopcore/internal/product"
)

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

func listCategoriesHandler(repo category.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repo.List(c.Request.Context(), c.Query("search"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": out})
	}
}

func getCategoryHandler(repo category.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// listProductsByCategoryHandler 404s on an unknown category rather than
// returning an empty list.
func listProductsByCategoryHandler(categories category.Repository, products product.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		cat, err := categories.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		items, err := products.ListByCategory(c.Request.Context(), cat.ID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"category": cat, "items": items})
	}
}

func createCategoryHandler(repo category.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req categoryRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
			badRequest(c, "name is required")
			return
		}
		cat := &category.Category{
			ID:          uuid.NewString(),
			Name:        req.Name,
			Description: req.Description,
			ImageURL:    req.ImageURL,
		}
		if err := repo.Create(c.Request.Context(), cat); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, cat)
	}
}

func updateCategoryHandler(repo category.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req categoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		cat := &category.Category{
			ID:          c.Param("id"),
			Name:        req.Name,
			Description: req.Description,
			ImageURL:    req.ImageURL,
		}
		if err := repo.Update(c.Request.Context(), cat); err != nil {
			fail(c, err)
			return
		}
		out, err := repo.GetByID(c.Request.Context(), cat.ID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func deleteCategoryHandler(repo category.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := repo.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		if !ok {
			fail(c, category.ErrNotFound)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
