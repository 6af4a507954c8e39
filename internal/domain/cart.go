package domain

import "time"

// Cart holds a customer's pending selection. One cart per customer, created
// at sign-up and emptied when an order is placed.
type Cart struct {
	ID         int
	CustomerID int
	CreatedAt  time.Time
	Items      []CartItem
}

// CartItem is a single food line in a cart. PriceAtAddition snapshots the
// catalog price when the item was added so later price edits do not move a
// cart already in progress.
type CartItem struct {
	ID              int
	CartID          int
	FoodID          int
	FoodName        string
	Quantity        int
	PriceAtAddition float64
}
