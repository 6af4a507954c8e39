package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/foodyy-service/internal/api/dto"
	"github.com/spec-kit/foodyy-service/internal/service"
)

// WishlistHandler exposes wishlist endpoints.
type WishlistHandler struct {
	wishlists *service.WishlistService
}

// NewWishlistHandler constructs handler.
func NewWishlistHandler(wishlistService *service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlists: wishlistService}
}

// Add handles POST /customer/:custId/wishlist/:foodId.
func (h *WishlistHandler) Add(c *fiber.Ctx) error {
	customerID, err := paramInt(c, "custId")
	if err != nil {
		return err
	}
	foodID, err := paramInt(c, "foodId")
	if err != nil {
		return err
	}
	if err := h.wishlists.Add(c.Context(), customerID, foodID); err != nil {
		return err
	}
	return c.Status(http.StatusCreated).SendString("Added to wishlist")
}

// Remove handles DELETE /customer/:custId/wishlist/:foodId.
func (h *WishlistHandler) Remove(c *fiber.Ctx) error {
	customerID, err := paramInt(c, "custId")
	if err != nil {
		return err
	}
	foodID, err := paramInt(c, "foodId")
	if err != nil {
		return err
	}
	if err := h.wishlists.Remove(c.Context(), customerID, foodID); err != nil {
		return err
	}
	return c.SendString("Removed from wishlist")
}

// List handles GET /customer/:custId/wishlist.
func (h *WishlistHandler) List(c *fiber.Ctx) error {
	customerID, err := paramInt(c, "custId")
	if err != nil {
		return err
	}
	entries, err := h.wishlists.ListByCustomer(c.Context(), customerID)
	if err != nil {
		return err
	}

	out := make([]fiber.Map, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		out = append(out, fiber.Map{
			"id":   e.ID,
			"food": dto.NewFoodResponse(e.Food),
		})
	}
	return c.JSON(out)
}

// MoveToCart handles POST /customer/wishlist/:wishlistId/move-to-cart.
func (h *WishlistHandler) MoveToCart(c *fiber.Ctx) error {
	wishlistID, err := paramInt(c, "wishlistId")
	if err != nil {
		return err
	}
	if err := h.wishlists.MoveToCart(c.Context(), wishlistID); err != nil {
		return err
	}
	return c.Status(http.StatusOK).SendString("Moved to cart")
}
