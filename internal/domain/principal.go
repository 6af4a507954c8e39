package domain

// Role partitions accounts into the two namespaces an identifier can be
// resolved against.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

// Principal is the shared view over admin and customer accounts consumed by
// the authentication layer. Only the two account types in this package
// implement it.
type Principal interface {
	// Identifier is the login name: username for admins, email for customers.
	Identifier() string
	// Credential is the stored bcrypt digest.
	Credential() string
	AccountRole() Role
	IsEnabled() bool
}
