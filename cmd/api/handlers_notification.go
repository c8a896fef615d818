package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcastellan/shopcore/internal/httpx"
	"github.com/mcastellan/shopcore/internal/notification"
)

func listNotificationsHandler(repo notification.Repository) gin.HandlerFunc {
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

func markNotificationReadHandler(repo notification.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := httpx.Current(c)
		n, err := repo.MarkRead(c.Request.Context(), c.Param("id"), p.UserID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, n)
	}
}

func clearNotificationsHandler(repo notification.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := httpx.Current(c)
		if err := repo.ClearByUser(c.Request.Context(), p.UserID); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
