package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/foodyy-service/internal/api/dto"
	"github.com/spec-kit/foodyy-service/internal/service"
)

// AddressHandler exposes delivery-address endpoints.
type AddressHandler struct {
	addresses *service.AddressService
}

// NewAddressHandler constructs handler.
func NewAddressHandler(addressService *service.AddressService) *AddressHandler {
	return &AddressHandler{addresses: addressService}
}

// List handles GET /customer/:custId/addresses.
func (h *AddressHandler) List(c *fiber.Ctx) error {
	customerID, err := paramInt(c, "custId")
	if err != nil {
		return err
	}
	addresses, err := h.addresses.ListByCustomer(c.Context(), customerID)
	if err != nil {
		return err
	}

	out := make([]dto.AddressResponse, 0, len(addresses))
	for i := range addresses {
		out = append(out, dto.NewAddressResponse(&addresses[i]))
	}
	return c.JSON(out)
}

// Save handles POST /customer/:custId/address. Creates a new address, or
// updates an existing one when the payload carries an id.
func (h *AddressHandler) Save(c *fiber.Ctx) error {
	customerID, err := paramInt(c, "custId")
	if err != nil {
		return err
	}

	var req dto.AddressRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Validate(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	saved, err := h.addresses.Save(c.Context(), customerID, req.ToDomain())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewAddressResponse(saved))
}

// Delete handles DELETE /customer/address/:addressId.
func (h *AddressHandler) Delete(c *fiber.Ctx) error {
	addressID, err := paramInt(c, "addressId")
	if err != nil {
		return err
	}
	if err := h.addresses.Delete(c.Context(), addressID); err != nil {
		return err
	}
	return c.SendString("Address deleted successfully")
}
