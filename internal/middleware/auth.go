package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/qaplayground/playground/internal/auth"
)

type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	cookieName string
}

func NewAuthMiddleware(jwtManager *auth.JWTManager, cookieName string) *AuthMiddleware {
	if cookieName == "" {
		cookieName = "auth_token"
	}
	return &AuthMiddleware{
		jwtManager: jwtManager,
		cookieName: cookieName,
	}
}

// RequireAuth gates page routes behind a valid session token. Browser
// requests are redirected to the login page; API requests get a 401 body.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.extractToken(c)
		if token == "" {
			m.unauthorizedResponse(c, "Missing authorization token")
			return
		}

		if m.jwtManager == nil {
			m.unauthorizedResponse(c, "Authentication is not configured")
			return
		}

		claims, err := m.jwtManager.ValidateToken(token)
		if err != nil {
			m.unauthorizedResponse(c, "Invalid or expired token")
			return
		}

		c.Set("username", claims.Username)
		c.Set("claims", claims)

		c.Next()
	}
}

// Identify resolves the session token without gating the request. A valid
// token sets the username into the context; anything else passes through
// anonymously.
func (m *AuthMiddleware) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.extractToken(c)
		if token != "" && m.jwtManager != nil {
			if claims, err := m.jwtManager.ValidateToken(token); err == nil {
				c.Set("username", claims.Username)
				c.Set("claims", claims)
			}
		}
		c.Next()
	}
}

func (m *AuthMiddleware) IsAuthenticated(c *gin.Context) bool {
	_, exists := c.Get("username")
	return exists
}

func (m *AuthMiddleware) extractToken(c *gin.Context) string {
	// Check Authorization header
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
	}

	// Check query parameter
	if token := c.Query("token"); token != "" {
		return token
	}

	// Check session cookie
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie != "" {
		return cookie
	}

	return ""
}

func (m *AuthMiddleware) unauthorizedResponse(c *gin.Context, message string) {
	accept := c.GetHeader("Accept")
	if strings.Contains(accept, "text/html") {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}

	c.JSON(http.StatusUnauthorized, gin.H{
		"error": message,
	})
	c.Abort()
}
