package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/foodyy-service/internal/api/dto"
	"github.com/spec-kit/foodyy-service/internal/domain"
	"github.com/spec-kit/foodyy-service/internal/service"
)

// CustomerHandler exposes customer auth and account endpoints.
type CustomerHandler struct {
	auth      *service.AuthService
	customers *service.CustomerService
}

// NewCustomerHandler constructs handler.
func NewCustomerHandler(authService *service.AuthService, customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{auth: authService, customers: customerService}
}

// SignUp handles POST /customer/signup.
func (h *CustomerHandler) SignUp(c *fiber.Ctx) error {
	var req dto.CustomerSignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Validate(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	customer, err := h.customers.SignUp(c.Context(), service.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Address:  req.Address,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"customerId": customer.ID,
		"name":       customer.Name,
		"email":      customer.Email,
		"phone":      customer.Phone,
	})
}

// SignIn handles POST /customer/signin.
func (h *CustomerHandler) SignIn(c *fiber.Ctx) error {
	var req dto.CustomerLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "email and password required")
	}

	result, err := h.auth.SignIn(c.Context(), req.Email, req.Password, domain.RoleCustomer)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return fiber.NewError(http.StatusUnauthorized, "Invalid credentials")
		}
		return err
	}

	customer, ok := result.Principal.(*domain.Customer)
	if !ok {
		return fiber.NewError(http.StatusInternalServerError, "unexpected principal type")
	}

	return c.JSON(dto.CustomerLoginResponse{
		Token: result.Token,
		ID:    customer.ID,
		Name:  customer.Name,
		Email: customer.Email,
	})
}

// SignOut handles POST /customer/signout.
func (h *CustomerHandler) SignOut(c *fiber.Ctx) error {
	err := h.auth.Logout(c.Context(), c.Get(fiber.HeaderAuthorization))
	if err != nil {
		if errors.Is(err, service.ErrMissingToken) {
			return c.Status(http.StatusBadRequest).SendString("Token missing or invalid")
		}
		return err
	}
	return c.SendString("Customer logout successful")
}

// VerifyPassword handles POST /customer/verify-password/:custId.
func (h *CustomerHandler) VerifyPassword(c *fiber.Ctx) error {
	id, err := paramInt(c, "custId")
	if err != nil {
		return err
	}

	var req dto.PasswordCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	matched, err := h.customers.CheckPassword(c.Context(), id, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"valid": matched})
}

// Get handles GET /customer/:custId and GET /admin/customer/:custId.
func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	id, err := paramInt(c, "custId")
	if err != nil {
		return err
	}
	customer, err := h.customers.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCustomerResponse(customer))
}

// List handles GET /admin/customers.
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	customers, err := h.customers.List(c.Context())
	if err != nil {
		return err
	}
	resp := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		resp = append(resp, dto.NewCustomerResponse(&customers[i]))
	}
	return c.JSON(resp)
}

// Search handles GET /admin/customers/search.
func (h *CustomerHandler) Search(c *fiber.Ctx) error {
	keyword := c.Query("keyword")
	customers, err := h.customers.Search(c.Context(), keyword)
	if err != nil {
		return err
	}
	resp := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		resp = append(resp, dto.NewCustomerResponse(&customers[i]))
	}
	return c.JSON(resp)
}

// Update handles PUT /customer/:custId and PUT /admin/customer/:custId.
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := paramInt(c, "custId")
	if err != nil {
		return err
	}

	var req dto.CustomerUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if err := dto.Validate(req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.customers.UpdateProfile(c.Context(), &domain.Customer{
		ID:      id,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCustomerResponse(updated))
}

// Delete handles DELETE /customer/:custId and DELETE /admin/customer/:custId.
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := paramInt(c, "custId")
	if err != nil {
		return err
	}

	customer, err := h.customers.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	if err := h.customers.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendString(customer.Name + "'s account deleted successfully")
}

func paramInt(c *fiber.Ctx, name string) (int, error) {
	val, err := strconv.Atoi(c.Params(name))
	if err != nil {
		return 0, fiber.NewError(http.StatusBadRequest, "invalid "+name)
	}
	return val, nil
}
