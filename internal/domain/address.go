package domain

// Address is a saved delivery address belonging to a customer.
type Address struct {
	ID          int
	CustomerID  int
	Street      string
	City        string
	State       string
	ZipCode     string
	AddressType string
}
