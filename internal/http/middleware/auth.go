package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"fileapi/internal/apperr"
	"fileapi/internal/model"
)

const (
	// PrincipalLocalKey is the key under which the verified principal is stored
	// in Fiber's context locals.
	PrincipalLocalKey = "principal"

	bearerPrefix = "Bearer "
)

// TokenVerifier validates a bearer token string and returns the principal it
// carries. Verification is stateless; see auth.TokenIssuer.
type TokenVerifier interface {
	Verify(token string) (*model.Principal, error)
}

// RequireAuth gates protected routes behind a bearer token.
//
// Behavior:
//   - No Authorization header, or one without the Bearer scheme: 401 NO_TOKEN.
//   - Signature or expiry failure: 403 INVALID_TOKEN.
//   - On success the decoded principal is stored under PrincipalLocalKey and
//     the request proceeds. The guard never touches persistent state.
func RequireAuth(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, bearerPrefix) {
			return fiber.NewError(fiber.StatusUnauthorized, apperr.ErrNoToken.Error())
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		if token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, apperr.ErrNoToken.Error())
		}

		principal, err := verifier.Verify(token)
		if err != nil {
			return fiber.NewError(fiber.StatusForbidden, apperr.ErrInvalidToken.Error())
		}

		c.Locals(PrincipalLocalKey, principal)
		return c.Next()
	}
}

// PrincipalFromCtx returns the principal attached by RequireAuth, or nil on an
// unguarded route.
func PrincipalFromCtx(c *fiber.Ctx) *model.Principal {
	if p, ok := c.Locals(PrincipalLocalKey).(*model.Principal); ok {
		return p
	}
	return nil
}
