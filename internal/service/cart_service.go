package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/foodyy-service/internal/domain"
	"github.com/spec-kit/foodyy-service/internal/repository"
	apperrors "github.com/spec-kit/foodyy-service/pkg/util/errorutil"
)

// CartService manages cart contents.
type CartService struct {
	carts     repository.CartRepository
	customers repository.CustomerRepository
	foods     repository.FoodRepository
}

// NewCartService builds the service.
func NewCartService(carts repository.CartRepository, customers repository.CustomerRepository, foods repository.FoodRepository) *CartService {
	return &CartService{carts: carts, customers: customers, foods: foods}
}

// GetByCustomer returns the customer's cart, creating an empty one for
// accounts that predate cart auto-creation.
func (s *CartService) GetByCustomer(ctx context.Context, customerID int) (*domain.Cart, error) {
	if _, err := s.customers.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("customer", nil)
		}
		return nil, err
	}

	cart, err := s.carts.GetByCustomer(ctx, customerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return s.carts.Create(ctx, customerID)
	}
	return cart, err
}

// AddItem puts a food line into the cart, merging quantity when the food is
// already there. The catalog price is snapshotted on first addition.
func (s *CartService) AddItem(ctx context.Context, customerID, foodID, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, apperrors.NewBadRequest("quantity must be greater than 0")
	}

	food, err := s.foods.GetByID(ctx, foodID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("food item", nil)
		}
		return nil, err
	}
	if !food.Available {
		return nil, apperrors.NewBadRequest("food item is not available")
	}

	cart, err := s.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	item := &domain.CartItem{
		CartID:          cart.ID,
		FoodID:          food.ID,
		Quantity:        quantity,
		PriceAtAddition: food.Price,
	}
	if err := s.carts.AddItem(ctx, item); err != nil {
		return nil, err
	}

	return s.carts.GetByCustomer(ctx, customerID)
}

// UpdateItemQuantity sets a line's quantity after checking the line belongs
// to the customer.
func (s *CartService) UpdateItemQuantity(ctx context.Context, customerID, itemID, quantity int) error {
	if quantity <= 0 {
		return apperrors.NewBadRequest("quantity must be greater than 0")
	}
	if err := s.checkOwnership(ctx, customerID, itemID); err != nil {
		return err
	}
	return s.carts.UpdateItemQuantity(ctx, itemID, quantity)
}

// DeleteItem removes a line after checking ownership.
func (s *CartService) DeleteItem(ctx context.Context, customerID, itemID int) error {
	if err := s.checkOwnership(ctx, customerID, itemID); err != nil {
		return err
	}
	return s.carts.DeleteItem(ctx, itemID)
}

func (s *CartService) checkOwnership(ctx context.Context, customerID, itemID int) error {
	item, err := s.carts.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("cart item", nil)
		}
		return err
	}

	cart, err := s.carts.GetByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("cart item", nil)
		}
		return err
	}
	if item.CartID != cart.ID {
		// do not reveal the item exists in someone else's cart
		return apperrors.NewNotFound("cart item", nil)
	}
	return nil
}
