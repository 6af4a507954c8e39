package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/foodyy-service/internal/api/dto"
	"github.com/spec-kit/foodyy-service/internal/service"
)

// ForgotPasswordHandler exposes the OTP-based password reset flow.
type ForgotPasswordHandler struct {
	resets *service.ForgotPasswordService
}

// NewForgotPasswordHandler constructs handler.
func NewForgotPasswordHandler(resetService *service.ForgotPasswordService) *ForgotPasswordHandler {
	return &ForgotPasswordHandler{resets: resetService}
}

// SendOTP handles POST /forgot-password/verify-email/:email.
func (h *ForgotPasswordHandler) SendOTP(c *fiber.Ctx) error {
	email := c.Params("email")
	if email == "" {
		return fiber.NewError(http.StatusBadRequest, "email is required")
	}
	if err := h.resets.RequestOTP(c.Context(), email); err != nil {
		return err
	}
	return c.SendString("OTP sent to registered email")
}

// VerifyOTP handles POST /forgot-password/verify-otp/:otp/:email.
func (h *ForgotPasswordHandler) VerifyOTP(c *fiber.Ctx) error {
	code, err := strconv.Atoi(c.Params("otp"))
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid otp")
	}
	email := c.Params("email")
	if err := h.resets.VerifyOTP(c.Context(), code, email); err != nil {
		return err
	}
	return c.SendString("OTP verified")
}

// ChangePassword handles POST /forgot-password/change-password/:email.
func (h *ForgotPasswordHandler) ChangePassword(c *fiber.Ctx) error {
	email := c.Params("email")

	var req dto.ForgotPasswordChangeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Validate(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.resets.ChangePassword(c.Context(), email, req.Password); err != nil {
		return err
	}
	return c.SendString("Password changed successfully")
}
