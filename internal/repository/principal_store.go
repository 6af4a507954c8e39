package repository

import (
	"context"
	"fmt"

	"github.com/spec-kit/foodyy-service/internal/auth"
	"github.com/spec-kit/foodyy-service/internal/domain"
)

type principalStore struct {
	admins    AdminRepository
	customers CustomerRepository
}

// NewPrincipalStore bridges the two account repositories into the single
// lookup capability the auth layer consumes. The role argument selects the
// namespace; it never falls through from one to the other.
func NewPrincipalStore(admins AdminRepository, customers CustomerRepository) auth.CredentialStore {
	return &principalStore{admins: admins, customers: customers}
}

func (s *principalStore) FindPrincipal(ctx context.Context, identifier string, role domain.Role) (domain.Principal, error) {
	switch role {
	case domain.RoleAdmin:
		admin, err := s.admins.GetByUsername(ctx, identifier)
		if err != nil {
			return nil, err
		}
		return admin, nil
	case domain.RoleCustomer:
		customer, err := s.customers.GetByEmail(ctx, identifier)
		if err != nil {
			return nil, err
		}
		return customer, nil
	default:
		return nil, fmt.Errorf("unknown role namespace %q", role)
	}
}
