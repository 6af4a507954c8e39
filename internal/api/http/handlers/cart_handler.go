package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/foodyy-service/internal/api/dto"
	"github.com/spec-kit/foodyy-service/internal/service"
)

// CartHandler exposes cart endpoints.
type CartHandler struct {
	carts *service.CartService
}

// NewCartHandler constructs handler.
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{carts: cartService}
}

// Get handles GET /cart/:custId.
func (h *CartHandler) Get(c *fiber.Ctx) error {
	customerID, err := paramInt(c, "custId")
	if err != nil {
		return err
	}
	cart, err := h.carts.GetByCustomer(c.Context(), customerID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCartResponse(cart))
}

// AddItem handles POST /cart/:custId/add/:foodId.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	customerID, err := paramInt(c, "custId")
	if err != nil {
		return err
	}
	foodID, err := paramInt(c, "foodId")
	if err != nil {
		return err
	}
	quantity := c.QueryInt("quantity", 1)

	cart, err := h.carts.AddItem(c.Context(), customerID, foodID, quantity)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewCartResponse(cart))
}

// UpdateItemQuantity handles PUT /cart/:custId/item/:itemId.
func (h *CartHandler) UpdateItemQuantity(c *fiber.Ctx) error {
	customerID, err := paramInt(c, "custId")
	if err != nil {
		return err
	}
	itemID, err := paramInt(c, "itemId")
	if err != nil {
		return err
	}

	var req dto.CartQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Validate(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.carts.UpdateItemQuantity(c.Context(), customerID, itemID, req.Quantity); err != nil {
		return err
	}
	cart, err := h.carts.GetByCustomer(c.Context(), customerID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCartResponse(cart))
}

// DeleteItem handles DELETE /cart/:custId/item/:itemId.
func (h *CartHandler) DeleteItem(c *fiber.Ctx) error {
	customerID, err := paramInt(c, "custId")
	if err != nil {
		return err
	}
	itemID, err := paramInt(c, "itemId")
	if err != nil {
		return err
	}
	if err := h.carts.DeleteItem(c.Context(), customerID, itemID); err != nil {
		return err
	}
	return c.SendString("Item removed from cart")
}
