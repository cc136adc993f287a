package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a monthly spending limit for one category.
//
// A budget is conceptually keyed by (CategoryID, Month, Year) but the
// store does not enforce uniqueness of that key; duplicate budgets for
// the same category and month are possible and aggregate views must
// tolerate them.
//
// Spent is a point-in-time snapshot of matching spend computed when the
// budget was created or a template was applied. It is never refreshed;
// consumers that need the actual figure recompute it from expenses.
type Budget struct {
	CreatedAt        time.Time
	UpdatedAt        time.Time
	ID               string
	CategoryID       string
	CategorySnapshot Category
	Amount           decimal.Decimal
	Spent            decimal.Decimal
	Month            time.Month
	Year             int
}

// Validate checks form-layer constraints.
func (b *Budget) Validate() error {
	if b.CategoryID == "" {
		return fmt.Errorf("budget category is required")
	}
	if !b.Amount.IsPositive() {
		return fmt.Errorf("budget amount must be positive, got %s", b.Amount)
	}
	if b.Month < time.January || b.Month > time.December {
		return fmt.Errorf("budget month must be between 1 and 12, got %d", b.Month)
	}
	if b.Year <= 0 {
		return fmt.Errorf("budget year must be positive, got %d", b.Year)
	}
	return nil
}
