package domain

import "time"

// Admin models a back-office operator account. Admins are provisioned by
// migration; there is no sign-up path for them.
type Admin struct {
	ID           int
	Username     string
	PasswordHash string
	Enabled      bool
	CreatedAt    time.Time
}

func (a *Admin) Identifier() string { return a.Username }
func (a *Admin) Credential() string { return a.PasswordHash }
func (a *Admin) AccountRole() Role  { return RoleAdmin }
func (a *Admin) IsEnabled() bool    { return a.Enabled }
