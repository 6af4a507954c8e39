package domain

import "time"

// Customer models a registered storefront account. Email and phone are unique
// across customers; the email doubles as the login identifier.
type Customer struct {
	ID           int
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Address      string
	ImageName    string
	ImageType    string
	ImageData    []byte
	Enabled      bool
	CreatedAt    time.Time
}

func (c *Customer) Identifier() string { return c.Email }
func (c *Customer) Credential() string { return c.PasswordHash }
func (c *Customer) AccountRole() Role  { return RoleCustomer }
func (c *Customer) IsEnabled() bool    { return c.Enabled }
