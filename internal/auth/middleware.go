package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/account-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal identifies the authenticated caller. It carries token claims
// only; the user row is loaded by the service so that a valid token whose
// account was deleted surfaces as not-found rather than unauthenticated.
type Principal struct {
	UserID string
	Email  string
}

// Middleware validates bearer tokens on protected routes.
type Middleware struct {
	tokens *TokenManager
	logger *zap.Logger
}

// NewMiddleware constructs the bearer-token middleware.
func NewMiddleware(tokens *TokenManager, logger *zap.Logger) *Middleware {
	return &Middleware{tokens: tokens, logger: logger}
}

// Handle rejects requests without a valid bearer token. The rejection body
// is uniform regardless of the failure mode; the detail is only logged.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		m.logger.Debug("token rejected", zap.String("path", c.Path()), zap.Error(err))
		return apperrors.NewUnauthorized("invalid or expired token")
	}

	c.Locals(principalKey, &Principal{UserID: claims.UserID(), Email: claims.Email})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated caller, if any.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
