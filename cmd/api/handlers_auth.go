package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mcastellan/shopcore/internal/user"
)

type registerRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type authResponse struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}

// registerHandler godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body registerRequest true "account"
// @Success 201 {object} authResponse
// @Router /auth/register [post]
func registerHandler(users *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		if req.Gender != "" && !validGender(req.Gender) {
			badRequest(c, "gender must be one of Male, Female, Other")
			return
		}
		u, token, err := users.Register(c.Request.Context(), user.RegisterInput{
			Username:  req.Username,
			Email:     req.Email,
			Password:  req.Password,
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
		c.JSON(http.StatusCreated, authResponse{Token: token, User: u})
	}
}

func validGender(g string) bool {
	for _, opt := range user.GenderOptions {
		if g == opt {
			return true
		}
	}
	return false
}

// loginHandler godoc
// @Summary Log in with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "credentials"
// @Success 200 {object} authResponse
// @Router /auth/login [post]
func loginHandler(users *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		u, token, err := users.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, authResponse{Token: token, User: u})
	}
}

// logoutHandler revokes the caller's token.
func logoutHandler(users *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("Authorization")
		key := strings.TrimPrefix(strings.TrimPrefix(raw, "Token "), "Bearer ")
		if err := users.Logout(c.Request.Context(), key); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"detail": "logged out"})
	}
}
