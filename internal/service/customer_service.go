package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/foodyy-service/internal/auth"
	"github.com/spec-kit/foodyy-service/internal/domain"
	"github.com/spec-kit/foodyy-service/internal/events"
	"github.com/spec-kit/foodyy-service/internal/repository"
	apperrors "github.com/spec-kit/foodyy-service/pkg/util/errorutil"
)

// SignUpInput collects the fields of a new customer registration.
type SignUpInput struct {
	Name      string
	Email     string
	Phone     string
	Password  string
	Address   string
	ImageName string
	ImageType string
	ImageData []byte
}

// CustomerService manages customer accounts and profiles.
type CustomerService struct {
	customers  repository.CustomerRepository
	carts      repository.CartRepository
	dispatcher events.Dispatcher
	bcryptCost int
}

// NewCustomerService builds the service.
func NewCustomerService(customers repository.CustomerRepository, carts repository.CartRepository, dispatcher events.Dispatcher, bcryptCost int) *CustomerService {
	return &CustomerService{customers: customers, carts: carts, dispatcher: dispatcher, bcryptCost: bcryptCost}
}

// SignUp registers a new customer and creates their empty cart. Email and
// phone must both be unused.
func (s *CustomerService) SignUp(ctx context.Context, input SignUpInput) (*domain.Customer, error) {
	if _, err := s.customers.GetByEmail(ctx, input.Email); err == nil {
		return nil, apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if _, err := s.customers.GetByPhone(ctx, input.Phone); err == nil {
		return nil, apperrors.NewConflict("phone number already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: hash,
		Address:      input.Address,
		ImageName:    input.ImageName,
		ImageType:    input.ImageType,
		ImageData:    input.ImageData,
		Enabled:      true,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}

	if _, err := s.carts.Create(ctx, customer.ID); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       events.EventCustomerRegistered,
		CustomerID: customer.ID,
		Timestamp:  time.Now(),
		Payload: events.CustomerRegisteredPayload{
			Name:  customer.Name,
			Email: customer.Email,
		},
	})
	return customer, nil
}

// GetByID fetches a customer.
func (s *CustomerService) GetByID(ctx context.Context, id int) (*domain.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("customer", nil)
		}
		return nil, err
	}
	return customer, nil
}

// GetByEmail fetches a customer by email.
func (s *CustomerService) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	customer, err := s.customers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("customer", nil)
		}
		return nil, err
	}
	return customer, nil
}

// List returns all customers.
func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.List(ctx)
}

// Search returns customers matching the keyword on name, email or phone.
func (s *CustomerService) Search(ctx context.Context, keyword string) ([]domain.Customer, error) {
	return s.customers.Search(ctx, keyword)
}

// UpdateProfile rewrites profile fields. The password hash is untouched;
// credential changes go through the forgot-password flow or CheckPassword
// gated endpoints.
func (s *CustomerService) UpdateProfile(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	existing, err := s.GetByID(ctx, customer.ID)
	if err != nil {
		return nil, err
	}

	existing.Name = customer.Name
	existing.Phone = customer.Phone
	existing.Address = customer.Address
	if customer.Email != "" {
		existing.Email = customer.Email
	}
	if len(customer.ImageData) > 0 {
		existing.ImageName = customer.ImageName
		existing.ImageType = customer.ImageType
		existing.ImageData = customer.ImageData
	}

	if err := s.customers.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a customer account and, via cascade, their cart, wishlist,
// addresses and OTPs.
func (s *CustomerService) Delete(ctx context.Context, id int) error {
	if err := s.customers.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("customer", nil)
		}
		return err
	}
	return nil
}

// CheckPassword verifies a customer's current password, used by the profile
// screens before sensitive edits.
func (s *CustomerService) CheckPassword(ctx context.Context, id int, password string) (bool, error) {
	customer, err := s.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return auth.CheckPassword(customer.PasswordHash, password), nil
}

// Count returns the number of registered customers.
func (s *CustomerService) Count(ctx context.Context) (int64, error) {
	return s.customers.Count(ctx)
}
