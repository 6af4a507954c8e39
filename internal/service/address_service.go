package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/foodyy-service/internal/domain"
	"github.com/spec-kit/foodyy-service/internal/repository"
	apperrors "github.com/spec-kit/foodyy-service/pkg/util/errorutil"
)

// AddressService manages a customer's saved delivery addresses.
type AddressService struct {
	addresses repository.AddressRepository
}

// NewAddressService builds the service.
func NewAddressService(addresses repository.AddressRepository) *AddressService {
	return &AddressService{addresses: addresses}
}

// ListByCustomer returns the customer's addresses.
func (s *AddressService) ListByCustomer(ctx context.Context, customerID int) ([]domain.Address, error) {
	return s.addresses.ListByCustomer(ctx, customerID)
}

// Save creates the address when it carries no ID and updates it otherwise.
// Updates only touch rows owned by the customer.
func (s *AddressService) Save(ctx context.Context, customerID int, address *domain.Address) (*domain.Address, error) {
	address.CustomerID = customerID
	if address.ID == 0 {
		if err := s.addresses.Create(ctx, address); err != nil {
			return nil, err
		}
		return address, nil
	}

	if err := s.addresses.Update(ctx, address); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("address", nil)
		}
		return nil, err
	}
	return address, nil
}

// Delete removes an address.
func (s *AddressService) Delete(ctx context.Context, id int) error {
	if err := s.addresses.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("address", nil)
		}
		return err
	}
	return nil
}

// GetByID fetches one address.
func (s *AddressService) GetByID(ctx context.Context, id int) (*domain.Address, error) {
	address, err := s.addresses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("address", nil)
		}
		return nil, err
	}
	return address, nil
}
