package dto

import (
	"time"

	"github.com/spec-kit/foodyy-service/internal/domain"
)

// CustomerSignUpRequest payload for new customers.
type CustomerSignUpRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,max=15"`
	Password string `json:"password" validate:"required,min=8,password_strength"`
	Address  string `json:"address"`
}

// CustomerUpdateRequest payload for profile edits.
type CustomerUpdateRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"omitempty,max=15"`
	Address string `json:"address"`
}

// CustomerResponse is the non-secret customer view.
type CustomerResponse struct {
	ID        int       `json:"customerId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewCustomerResponse maps the domain model, dropping the password hash and
// image bytes.
func NewCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}
