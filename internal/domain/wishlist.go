package domain

// WishlistEntry links a customer to a saved catalog item.
type WishlistEntry struct {
	ID         int
	CustomerID int
	FoodID     int
	Food       *Food
}
