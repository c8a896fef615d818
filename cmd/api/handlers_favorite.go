package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcastellan/shopcore/internal/favorite"
	"github.com/mcastellan/shopcore/internal/httpx"
)

func listFavoritesHandler(repo favorite.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := httpx.Current(c)
		out, err := repo.ListByUser(c.Request.Context(), p.UserID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": out})
	}
}

// toggleFavoriteHandler flips the mark and reports which way it went.
func toggleFavoriteHandler(repo favorite.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := httpx.Current(c)
		added, err := repo.Toggle(c.Request.Context(), p.UserID, c.Param("productID"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"is_favorited": added})
	}
}

func checkFavoriteHandler(repo favorite.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := httpx.Current(c)
		ok, err := repo.Check(c.Request.Context(), p.UserID, c.Param("productID"))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"is_favorited": ok})
	}
}
