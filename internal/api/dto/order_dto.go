package dto

import (
	"time"

	"github.com/spec-kit/foodyy-service/internal/domain"
)

// OrderRequest payload for placing an order.
type OrderRequest struct {
	Address string `json:"address" validate:"required"`
}

// OrderItemResponse is one line of an order.
type OrderItemResponse struct {
	FoodName   string  `json:"foodName"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"totalPrice"`
}

// OrderResponse is the order wire format.
type OrderResponse struct {
	OrderID      string              `json:"orderId"`
	CustomerName string              `json:"customerName"`
	Email        string              `json:"email"`
	Address      string              `json:"address"`
	Status       string              `json:"status"`
	OrderDate    time.Time           `json:"orderDate"`
	TotalAmount  float64             `json:"totalAmount"`
	Items        []OrderItemResponse `json:"orderItems"`
}

// NewOrderResponse maps the domain model.
func NewOrderResponse(order *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			FoodName:   item.FoodName,
			Quantity:   item.Quantity,
			TotalPrice: item.TotalPrice,
		})
	}
	return OrderResponse{
		OrderID:      order.OrderID,
		CustomerName: order.CustomerName,
		Email:        order.Email,
		Address:      order.Address,
		Status:       string(order.Status),
		OrderDate:    order.OrderDate,
		TotalAmount:  order.TotalAmount,
		Items:        items,
	}
}

// NewOrderResponses maps a slice.
func NewOrderResponses(orders []domain.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, NewOrderResponse(&orders[i]))
	}
	return out
}
