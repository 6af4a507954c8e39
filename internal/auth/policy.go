package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/foodyy-service/internal/domain"
	apperrors "github.com/spec-kit/foodyy-service/pkg/util/errorutil"
)

// Rule maps a request shape to an access requirement. Zero-value fields are
// wildcards: empty Method matches every method, empty Role means any
// authenticated identity.
type Rule struct {
	Method string
	Exact  string
	Prefix string
	Suffix string
	Public bool
	Role   domain.Role
}

func (r Rule) matches(method, path string) bool {
	if r.Method != "" && r.Method != method {
		return false
	}
	if r.Exact != "" && r.Exact != path {
		return false
	}
	if r.Prefix != "" && !strings.HasPrefix(path, r.Prefix) {
		return false
	}
	if r.Suffix != "" && !strings.HasSuffix(path, r.Suffix) {
		return false
	}
	return true
}

// Decision is the outcome of evaluating the rule list for a request.
type Decision struct {
	Public bool
	// Role is the required role; empty means any authenticated identity.
	Role domain.Role
}

// Policy is an ordered first-match-wins rule list. It is fail-closed: a
// request matching no rule still requires an authenticated identity.
type Policy struct {
	rules []Rule
}

// NewPolicy builds a policy from an ordered rule list.
func NewPolicy(rules []Rule) *Policy {
	return &Policy{rules: rules}
}

// DefaultRules is the service's route policy: preflight and the public
// endpoints are open, /admin is admin-only, /customer is customer-only, and
// everything else needs some authenticated identity.
func DefaultRules() []Rule {
	return []Rule{
		{Method: fiber.MethodOptions, Public: true},
		{Exact: "/admin/signin", Public: true},
		{Exact: "/customer/signin", Public: true},
		{Exact: "/customer/signup", Public: true},
		// Sign-out is open: the handler validates the header itself and a
		// revoked or expired token must still be able to sign out.
		{Exact: "/admin/signout", Public: true},
		{Exact: "/customer/signout", Public: true},
		{Prefix: "/forgot-password/", Public: true},
		{Prefix: "/health/", Public: true},
		{Prefix: "/admin/food/", Suffix: "/image", Public: true},
		{Prefix: "/customer/food/", Suffix: "/image", Public: true},
		{Prefix: "/admin", Role: domain.RoleAdmin},
		{Prefix: "/customer", Role: domain.RoleCustomer},
	}
}

// Evaluate walks the rules in order and returns the first match, or the
// fail-closed default.
func (p *Policy) Evaluate(method, path string) Decision {
	for _, rule := range p.rules {
		if rule.matches(method, path) {
			return Decision{Public: rule.Public, Role: rule.Role}
		}
	}
	return Decision{}
}

// Public reports whether the route is open to anonymous callers.
func (p *Policy) Public(method, path string) bool {
	return p.Evaluate(method, path).Public
}

// Enforce is the fail-closed half of the pipeline: it rejects requests whose
// route demands an identity or role the gate did not attach.
func (p *Policy) Enforce() fiber.Handler {
	return func(c *fiber.Ctx) error {
		decision := p.Evaluate(c.Method(), c.Path())
		if decision.Public {
			return c.Next()
		}

		identity, ok := IdentityFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if decision.Role != "" && identity.Role != decision.Role {
			return apperrors.NewForbidden("insufficient role")
		}
		return c.Next()
	}
}
