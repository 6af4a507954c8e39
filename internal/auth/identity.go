package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/foodyy-service/internal/domain"
)

const identityKey = "auth_identity"

// Identity is the request-scoped result of a successful token resolution.
type Identity struct {
	Principal domain.Principal
	Role      domain.Role
	Token     string
}

// CredentialStore resolves an identifier within one role namespace. The gate
// and the authenticator both consume it; persistence provides it.
type CredentialStore interface {
	FindPrincipal(ctx context.Context, identifier string, role domain.Role) (domain.Principal, error)
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// IdentityFromContext retrieves the authenticated caller, if any.
func IdentityFromContext(c *fiber.Ctx) (*Identity, bool) {
	val := c.Locals(identityKey)
	if val == nil {
		return nil, false
	}
	identity, ok := val.(*Identity)
	return identity, ok
}

// attachIdentity stores the identity at most once per request.
func attachIdentity(c *fiber.Ctx, identity *Identity) {
	if _, exists := IdentityFromContext(c); exists {
		return
	}
	c.Locals(identityKey, identity)
}
