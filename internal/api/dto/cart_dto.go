package dto

import (
	"time"

	"github.com/spec-kit/foodyy-service/internal/domain"
)

// CartItemResponse is one line of a cart.
type CartItemResponse struct {
	ID              int     `json:"id"`
	FoodID          int     `json:"foodId"`
	FoodName        string  `json:"foodName"`
	Quantity        int     `json:"quantity"`
	PriceAtAddition float64 `json:"priceAtTimeOfAddition"`
	LineTotal       float64 `json:"lineTotal"`
}

// CartResponse is the cart wire format.
type CartResponse struct {
	ID         int                `json:"id"`
	CustomerID int                `json:"customerId"`
	CreatedAt  time.Time          `json:"createdAt"`
	Items      []CartItemResponse `json:"cartItems"`
}

// NewCartResponse maps the domain model.
func NewCartResponse(cart *domain.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, CartItemResponse{
			ID:              item.ID,
			FoodID:          item.FoodID,
			FoodName:        item.FoodName,
			Quantity:        item.Quantity,
			PriceAtAddition: item.PriceAtAddition,
			LineTotal:       item.PriceAtAddition * float64(item.Quantity),
		})
	}
	return CartResponse{
		ID:         cart.ID,
		CustomerID: cart.CustomerID,
		CreatedAt:  cart.CreatedAt,
		Items:      items,
	}
}

// CartQuantityRequest payload for quantity updates.
type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}
