package auth

import (
	"strings"

	"github.com/spec-kit/foodyy-service/internal/domain"
)

// RoleNamespaceFor decides which account namespace an identifier belongs to.
// Customers log in with an email, admins with a plain username, so an
// identifier containing "@" resolves against the customer namespace and
// anything else against the admin namespace. This is policy: every lookup in
// the codebase goes through this one function, and an admin username is not
// allowed to contain "@".
func RoleNamespaceFor(identifier string) domain.Role {
	if strings.Contains(identifier, "@") {
		return domain.RoleCustomer
	}
	return domain.RoleAdmin
}
