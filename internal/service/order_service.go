package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/foodyy-service/internal/domain"
	"github.com/spec-kit/foodyy-service/internal/events"
	"github.com/spec-kit/foodyy-service/internal/repository"
	apperrors "github.com/spec-kit/foodyy-service/pkg/util/errorutil"
)

var validOrderStatuses = map[domain.OrderStatus]struct{}{
	domain.OrderStatusPlaced:    {},
	domain.OrderStatusPreparing: {},
	domain.OrderStatusOnTheWay:  {},
	domain.OrderStatusDelivered: {},
	domain.OrderStatusCancelled: {},
}

// OrderService places orders from cart contents and tracks their status.
type OrderService struct {
	orders     repository.OrderRepository
	customers  repository.CustomerRepository
	carts      repository.CartRepository
	dispatcher events.Dispatcher
}

// NewOrderService builds the service.
func NewOrderService(orders repository.OrderRepository, customers repository.CustomerRepository, carts repository.CartRepository, dispatcher events.Dispatcher) *OrderService {
	return &OrderService{orders: orders, customers: customers, carts: carts, dispatcher: dispatcher}
}

// newOrderRef builds the customer-facing order reference.
func newOrderRef() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

// Place snapshots the customer's cart into an order, computes the grand
// total from the prices captured at addition time, and clears the cart.
func (s *OrderService) Place(ctx context.Context, customerID int, address string) (*domain.Order, error) {
	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("customer", nil)
		}
		return nil, err
	}

	cart, err := s.carts.GetByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewBadRequest("cart is empty, cannot place order")
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, apperrors.NewBadRequest("cart is empty, cannot place order")
	}

	order := &domain.Order{
		OrderID:      newOrderRef(),
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Email:        customer.Email,
		Address:      address,
		Status:       domain.OrderStatusPlaced,
	}

	var grandTotal float64
	for _, cartItem := range cart.Items {
		lineTotal := cartItem.PriceAtAddition * float64(cartItem.Quantity)
		order.Items = append(order.Items, domain.OrderItem{
			FoodID:     cartItem.FoodID,
			FoodName:   cartItem.FoodName,
			Quantity:   cartItem.Quantity,
			TotalPrice: lineTotal,
		})
		grandTotal += lineTotal
	}
	order.TotalAmount = grandTotal

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	if err := s.carts.ClearByCustomer(ctx, customerID); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       events.EventOrderPlaced,
		CustomerID: customer.ID,
		Timestamp:  time.Now(),
		Payload: events.OrderPlacedPayload{
			OrderID:     order.OrderID,
			Email:       order.Email,
			TotalAmount: order.TotalAmount,
			ItemCount:   len(order.Items),
		},
	})
	return order, nil
}

// ListByCustomer returns a customer's orders, newest first.
func (s *OrderService) ListByCustomer(ctx context.Context, customerID int) ([]domain.Order, error) {
	return s.orders.ListByCustomer(ctx, customerID)
}

// ListAll returns every order, newest first.
func (s *OrderService) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.orders.ListAll(ctx)
}

// UpdateStatus moves an order to a new fulfilment status.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	if _, ok := validOrderStatuses[status]; !ok {
		return nil, apperrors.NewBadRequest("unknown order status")
	}

	order, err := s.orders.GetByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("order", nil)
		}
		return nil, err
	}

	oldStatus := order.Status
	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	order.Status = status

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:         uuid.NewString(),
		Type:       events.EventOrderStatusChanged,
		CustomerID: order.CustomerID,
		Timestamp:  time.Now(),
		Payload: events.OrderStatusChangedPayload{
			OrderID:   order.OrderID,
			Email:     order.Email,
			OldStatus: oldStatus,
			NewStatus: status,
		},
	})
	return order, nil
}
