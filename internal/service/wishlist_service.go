package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/foodyy-service/internal/domain"
	"github.com/spec-kit/foodyy-service/internal/repository"
	apperrors "github.com/spec-kit/foodyy-service/pkg/util/errorutil"
)

// WishlistService manages saved catalog items.
type WishlistService struct {
	wishlists repository.WishlistRepository
	foods     repository.FoodRepository
	cart      *CartService
}

// NewWishlistService builds the service.
func NewWishlistService(wishlists repository.WishlistRepository, foods repository.FoodRepository, cart *CartService) *WishlistService {
	return &WishlistService{wishlists: wishlists, foods: foods, cart: cart}
}

// Add saves a food item to the customer's wishlist. Re-adding is a no-op.
func (s *WishlistService) Add(ctx context.Context, customerID, foodID int) error {
	if _, err := s.foods.GetByID(ctx, foodID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("food item", nil)
		}
		return err
	}
	_, err := s.wishlists.Add(ctx, customerID, foodID)
	return err
}

// Remove drops a food item from the wishlist.
func (s *WishlistService) Remove(ctx context.Context, customerID, foodID int) error {
	if err := s.wishlists.Remove(ctx, customerID, foodID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("wishlist entry", nil)
		}
		return err
	}
	return nil
}

// ListByCustomer returns the wishlist with catalog details joined in.
func (s *WishlistService) ListByCustomer(ctx context.Context, customerID int) ([]domain.WishlistEntry, error) {
	return s.wishlists.ListByCustomer(ctx, customerID)
}

// MoveToCart transfers a wishlist entry into the cart (quantity 1) and
// removes it from the wishlist.
func (s *WishlistService) MoveToCart(ctx context.Context, wishlistID int) error {
	entry, err := s.wishlists.GetByID(ctx, wishlistID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("wishlist entry", nil)
		}
		return err
	}

	if _, err := s.cart.AddItem(ctx, entry.CustomerID, entry.FoodID, 1); err != nil {
		return err
	}
	return s.wishlists.Delete(ctx, entry.ID)
}
