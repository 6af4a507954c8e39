package dto

import "github.com/spec-kit/foodyy-service/internal/domain"

// AddressRequest payload for creating or updating a delivery address. ID is
// set only on updates.
type AddressRequest struct {
	ID          int    `json:"id"`
	Street      string `json:"street" validate:"required"`
	City        string `json:"city" validate:"required"`
	State       string `json:"state"`
	ZipCode     string `json:"zipCode"`
	AddressType string `json:"addressType"`
}

// ToDomain maps the request.
func (r AddressRequest) ToDomain() *domain.Address {
	return &domain.Address{
		ID:          r.ID,
		Street:      r.Street,
		City:        r.City,
		State:       r.State,
		ZipCode:     r.ZipCode,
		AddressType: r.AddressType,
	}
}

// AddressResponse is the address wire format.
type AddressResponse struct {
	ID          int    `json:"id"`
	Street      string `json:"street"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zipCode"`
	AddressType string `json:"addressType"`
}

// NewAddressResponse maps the domain model.
func NewAddressResponse(a *domain.Address) AddressResponse {
	return AddressResponse{
		ID:          a.ID,
		Street:      a.Street,
		City:        a.City,
		State:       a.State,
		ZipCode:     a.ZipCode,
		AddressType: a.AddressType,
	}
}
