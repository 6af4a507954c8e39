package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/foodyy-service/internal/domain"
)

func TestRoleNamespaceFor(t *testing.T) {
	tests := []struct {
		identifier string
		want       domain.Role
	}{
		{"alice@example.com", domain.RoleCustomer},
		{"bob@shop", domain.RoleCustomer},
		{"@leading", domain.RoleCustomer},
		{"trailing@", domain.RoleCustomer},
		{"admin", domain.RoleAdmin},
		{"", domain.RoleAdmin},
		{"superuser-01", domain.RoleAdmin},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoleNamespaceFor(tt.identifier), "identifier %q", tt.identifier)
	}
}
