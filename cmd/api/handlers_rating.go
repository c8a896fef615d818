package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcastellan/shopcore/internal/httpx"
	"github.com/mcastellan/shopcore/internal/rating"
)

type rateRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

func listRatingsHandler(repo rating.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := repo.ListByProduct(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": out})
	}
}

// rateProductHandler upserts the caller's rating; rating again replaces the
// previous value.
func rateProductHandler(repo rating.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req rateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		p, _ := httpx.Current(c)
		rt, err := repo.Rate(c.Request.Context(), p.UserID, c.Param("id"), req.Rating, req.Comment)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, rt)
	}
}

// deleteRatingHandler allows the author or staff to remove a rating.
func deleteRatingHandler(repo rating.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := httpx.Current(c)
		rt, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		if rt.UserID != p.UserID && !p.IsStaff {
			forbidden(c)
			return
		}
		if err := repo.Delete(c.Request.Context(), rt.ID); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
