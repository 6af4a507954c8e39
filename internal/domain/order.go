package domain

import "time"

// OrderStatus tracks fulfilment progress.
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "PLACED"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusOnTheWay  OrderStatus = "OUT_FOR_DELIVERY"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Order is a placed order with its line items snapshotted from the cart.
// OrderID is the customer-facing reference ("ORD-" + 8 hex chars), distinct
// from the database key.
type Order struct {
	ID           int
	OrderID      string
	CustomerID   int
	CustomerName string
	Email        string
	Address      string
	Status       OrderStatus
	OrderDate    time.Time
	TotalAmount  float64
	Items        []OrderItem
}

// OrderItem is one food line of an order. TotalPrice is quantity times the
// cart's price-at-addition, fixed at placement time.
type OrderItem struct {
	ID         int
	OrderID    int
	FoodID     int
	FoodName   string
	Quantity   int
	TotalPrice float64
}
