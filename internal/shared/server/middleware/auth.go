package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-studio/internal/shared/auth"
	"resume-studio/internal/shared/server/respond"
)

const (
	userIDKey    = "userId"
	userEmailKey = "userEmail"
	userNameKey  = "userName"
	isGuestKey   = "isGuest"
)

// Auth validates the bearer token or guest header and stores identity in context.
//
// Requests carrying a valid JWT are authenticated users. Requests carrying an
// X-Guest-Id header get a "guest:" prefixed identity with no email. Everything
// else is rejected. OAuth start/callback routes are exempt so the login flow
// can bootstrap.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/v1/auth/google/") || path == "/healthz" || path == "/metrics" {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if header != "" {
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				respond.Error(c, http.StatusUnauthorized, "unauthorized", "Malformed Authorization header", nil)
				return
			}
			claims, err := auth.VerifyJWT(strings.TrimSpace(parts[1]))
			if err != nil {
				respond.Error(c, http.StatusUnauthorized, "unauthorized", "Invalid or expired token", nil)
				return
			}
			c.Set(userIDKey, claims.Sub)
			c.Set(userEmailKey, claims.Email)
			c.Set(userNameKey, claims.Name)
			c.Set(isGuestKey, false)
			c.Next()
			return
		}

		if guestID := strings.TrimSpace(c.GetHeader("X-Guest-Id")); guestID != "" {
			c.Set(userIDKey, "guest:"+guestID)
			c.Set(isGuestKey, true)
			c.Next()
			return
		}

		respond.Error(c, http.StatusUnauthorized, "unauthorized", "Authentication required", nil)
	}
}

// UserIDFromContext returns the authenticated identity, empty if none.
func UserIDFromContext(c *gin.Context) string {
	return c.GetString(userIDKey)
}

// UserEmailFromContext returns the authenticated email, empty for guests.
func UserEmailFromContext(c *gin.Context) string {
	return c.GetString(userEmailKey)
}

// IsGuest reports whether the request identity is a guest.
func IsGuest(c *gin.Context) bool {
	val, ok := c.Get(isGuestKey)
	if !ok {
		return false
	}
	guest, _ := val.(bool)
	return guest
}
