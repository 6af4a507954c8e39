package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/foodyy-service/internal/api/dto"
	"github.com/spec-kit/foodyy-service/internal/domain"
	"github.com/spec-kit/foodyy-service/internal/service"
)

// OrderHandler exposes order endpoints.
type OrderHandler struct {
	orders *service.OrderService
}

// NewOrderHandler constructs handler.
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orderService}
}

// Place handles POST /:custId/order/place.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	customerID, err := paramInt(c, "custId")
	if err != nil {
		return err
	}

	var req dto.OrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Validate(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	order, err := h.orders.Place(c.Context(), customerID, req.Address)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Order placed successfully",
		"order":   dto.NewOrderResponse(order),
	})
}

// ListByCustomer handles GET /customer/:custId/orders.
func (h *OrderHandler) ListByCustomer(c *fiber.Ctx) error {
	customerID, err := paramInt(c, "custId")
	if err != nil {
		return err
	}
	orders, err := h.orders.ListByCustomer(c.Context(), customerID)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewOrderResponses(orders))
}

// ListAll handles GET /admin/orders.
func (h *OrderHandler) ListAll(c *fiber.Ctx) error {
	orders, err := h.orders.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewOrderResponses(orders))
}

// UpdateStatus handles PUT /admin/order/:orderId/status.
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	orderID := c.Params("orderId")
	status := c.Query("status")
	if status == "" {
		return fiber.NewError(http.StatusBadRequest, "status query parameter is required")
	}

	order, err := h.orders.UpdateStatus(c.Context(), orderID, domain.OrderStatus(status))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewOrderResponse(order))
}
