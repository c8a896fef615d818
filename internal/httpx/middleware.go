package httpx

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set("rid", rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		rid, _ := c.Get("rid")
		log.Printf("[http] rid=%v %s %s status=%d dur=%s",
			rid, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// Principal is the authenticated caller attached to the request context.
type Principal struct {
	UserID  string
	IsStaff bool
}

// Authenticator resolves an opaque token key to a principal.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (Principal, error)
}

const principalKey = "principal"

// TokenAuth accepts "Authorization: Token <key>" (the original API scheme)
// or "Authorization: Bearer <key>" and aborts with 401 otherwise.
func TokenAuth(a Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader("Authorization")
		var key string
		switch {
		case strings.HasPrefix(raw, "Token "):
			key = strings.TrimPrefix(raw, "Token ")
		case strings.HasPrefix(raw, "Bearer "):
			key = strings.TrimPrefix(raw, "Bearer ")
		}
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		p, err := a.Authenticate(c.Request.Context(), key)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(principalKey, p)
		c.Next()
	}
}

// RequireStaff must run after TokenAuth.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := Current(c)
		if !ok || !p.IsStaff {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "staff privileges required"})
			return
		}
		c.Next()
	}
}

// Current returns the principal set by TokenAuth.
func Current(c *gin.Context) (Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return Principal{}, false
	}
	p, ok := v.(Principal)
	return p, ok
}
