package auth

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Gate is the fail-open half of the request pipeline. It tries to turn a
// bearer token into an Identity and attaches it to the request context; every
// failure mode (no header, revoked, malformed, expired, unknown or disabled
// principal) just leaves the request anonymous. Whether anonymous is
// acceptable for the target route is the Policy's call, not the gate's.
type Gate struct {
	tokens    *TokenManager
	blacklist Blacklist
	store     CredentialStore
	policy    *Policy
	logger    *zap.Logger
}

// NewGate constructs the middleware.
func NewGate(tokens *TokenManager, blacklist Blacklist, store CredentialStore, policy *Policy, logger *zap.Logger) *Gate {
	return &Gate{tokens: tokens, blacklist: blacklist, store: store, policy: policy, logger: logger}
}

// Handle resolves the caller's identity for protected routes.
func (g *Gate) Handle(c *fiber.Ctx) error {
	if g.policy.Public(c.Method(), c.Path()) {
		return c.Next()
	}

	token, ok := BearerToken(c.Get(fiber.HeaderAuthorization))
	if !ok {
		return c.Next()
	}

	ctx := c.UserContext()
	if g.blacklist.IsRevoked(ctx, token) {
		g.logger.Debug("revoked token presented", zap.String("path", c.Path()))
		return c.Next()
	}

	claims, err := g.tokens.Parse(token)
	if err != nil {
		g.logger.Debug("token rejected", zap.String("path", c.Path()), zap.Error(err))
		return c.Next()
	}

	role := RoleNamespaceFor(claims.Subject)
	principal, err := g.store.FindPrincipal(ctx, claims.Subject, role)
	if err != nil {
		g.logger.Debug("principal lookup failed",
			zap.String("subject", claims.Subject),
			zap.String("namespace", string(role)),
			zap.Error(err))
		return c.Next()
	}
	if !principal.IsEnabled() {
		g.logger.Debug("principal disabled", zap.String("subject", claims.Subject))
		return c.Next()
	}

	attachIdentity(c, &Identity{Principal: principal, Role: principal.AccountRole(), Token: token})
	return c.Next()
}
