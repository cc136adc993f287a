// Package model defines the domain records shared across the application.
package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// User is the profile of the single local user. At most one instance
// exists; it is created at onboarding and cleared only by a full reset.
type User struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	ID        string
	Name      string
	Salary    decimal.Decimal // monthly net income
}

// Validate checks form-layer constraints.
func (u *User) Validate() error {
	if u.Name == "" {
		return fmt.Errorf("profile name is required")
	}
	if u.Salary.IsNegative() {
		return fmt.Errorf("salary cannot be negative, got %s", u.Salary)
	}
	return nil
}
