package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcastellan/shopcore/internal/httpx"
	"github.com/mcastellan/shopcore/internal/user"
)

type updateProfileRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email" binding:"omitempty,email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

type deleteAccountRequest struct {
	Password string `json:"password" binding:"required"`
}

func getProfileHandler(users *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, _ := httpx.Current(c)
		u, err := users.GetByID(c.Request.Context(), p.UserID)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// updateProfileHandler applies a partial update; empty fields are kept.
func updateProfileHandler(users *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		if req.Gender != "" && !validGender(req.Gender) {
			badRequest(c, "gender must be one of Male, Female, Other")
			return
		}
		p, _ := httpx.Current(c)
		u, err := users.UpdateProfile(c.Request.Context(), &user.User{
			ID:        p.UserID,
			Username:  req.Username,
			Email:     req.Email,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Gender:    req.Gender,
			Phone:     req.Phone,
			Address:   req.Address,
		})
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

func updatePasswordHandler(users *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updatePasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		p, _ := httpx.Current(c)
		if err := users.UpdatePassword(c.Request.Context(), p.UserID, req.CurrentPassword, req.NewPassword); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"detail": "password updated"})
	}
}

// deleteAccountHandler removes the account after a password re-check.
func deleteAccountHandler(users *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req deleteAccountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		p, _ := httpx.Current(c)
		if err := users.DeleteAccount(c.Request.Context(), p.UserID, req.Password); err != nil {
			fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
