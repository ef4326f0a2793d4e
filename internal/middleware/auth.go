package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bookline/booking-api/internal/httperr"
	"github.com/bookline/booking-api/internal/token"
)

const (
	ContextClientID    = "clientID"
	ContextClientEmail = "clientEmail"
)

// AuthMiddleware protege as rotas privadas. Sem token a operação nem
// começa (401); token presente mas inválido ou expirado é 403.
func AuthMiddleware(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Authorization header is required.")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			httperr.Unauthorized(c, "invalid_authorization_header", "Bearer token is required.")
			c.Abort()
			return
		}

		identity, err := tokens.Verify(parts[1])
		if err != nil {
			code := "invalid_token"
			if err == token.ErrExpired {
				code = "expired_token"
			}
			httperr.Forbidden(c, code, "Token is not valid.")
			c.Abort()
			return
		}

		c.Set(ContextClientID, identity.ID)
		c.Set(ContextClientEmail, identity.Email)

		c.Next()
	}
}
