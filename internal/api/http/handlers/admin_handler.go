package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/foodyy-service/internal/api/dto"
	"github.com/spec-kit/foodyy-service/internal/domain"
	"github.com/spec-kit/foodyy-service/internal/service"
)

// AdminHandler exposes admin auth endpoints.
type AdminHandler struct {
	auth *service.AuthService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(authService *service.AuthService) *AdminHandler {
	return &AdminHandler{auth: authService}
}

// SignIn handles POST /admin/signin.
func (h *AdminHandler) SignIn(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Username == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "username and password required")
	}

	result, err := h.auth.SignIn(c.Context(), req.Username, req.Password, domain.RoleAdmin)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return fiber.NewError(http.StatusUnauthorized, "Invalid credentials")
		}
		return err
	}

	return c.JSON(dto.AdminLoginResponse{
		Message:   "Login successful",
		Token:     result.Token,
		TokenType: "Bearer",
	})
}

// SignOut handles POST /admin/signout.
func (h *AdminHandler) SignOut(c *fiber.Ctx) error {
	err := h.auth.Logout(c.Context(), c.Get(fiber.HeaderAuthorization))
	if err != nil {
		if errors.Is(err, service.ErrMissingToken) {
			return c.Status(http.StatusBadRequest).SendString("Token missing or invalid")
		}
		return err
	}
	return c.SendString("Admin logout successful")
}
