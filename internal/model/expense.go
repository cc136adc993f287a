package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseType describes how an expense recurs, if at all.
type ExpenseType string

const (
	// ExpenseOneTime is a single, dated expense.
	ExpenseOneTime ExpenseType = "one-time"
	// ExpenseRecurring repeats monthly on RecurringDay.
	ExpenseRecurring ExpenseType = "recurring"
	// ExpenseAnnual repeats yearly on RecurringDay/RecurringMonth.
	ExpenseAnnual ExpenseType = "annual"
)

// Expense is a single recorded expense.
//
// CategoryID references the live categories collection; CategorySnapshot
// is the category as it looked when the expense was written and is never
// updated afterwards. List views read the live collection for current
// color and name; the snapshot preserves the historical record.
//
// Recurrence fields are advisory metadata. The store never expands
// recurring or annual expenses into future occurrences; only the literal
// Date is used by aggregation.
type Expense struct {
	Date             time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
	ID               string
	Description      string
	CategoryID       string
	Type             ExpenseType
	CategorySnapshot Category
	Amount           decimal.Decimal
	RecurringDay     int        // 1-31, day of month for recurring and annual
	RecurringMonth   time.Month // 1-12, month for annual only
}

// Validate checks form-layer constraints. The store accepts any
// well-typed payload; callers are expected to validate first.
func (e *Expense) Validate() error {
	if e.Description == "" {
		return fmt.Errorf("expense description is required")
	}
	if !e.Amount.IsPositive() {
		return fmt.Errorf("expense amount must be positive, got %s", e.Amount)
	}
	switch e.Type {
	case ExpenseOneTime:
	case ExpenseRecurring:
		if e.RecurringDay < 1 || e.RecurringDay > 31 {
			return fmt.Errorf("recurring day must be between 1 and 31, got %d", e.RecurringDay)
		}
	case ExpenseAnnual:
		if e.RecurringDay < 1 || e.RecurringDay > 31 {
			return fmt.Errorf("recurring day must be between 1 and 31, got %d", e.RecurringDay)
		}
		if e.RecurringMonth < time.January || e.RecurringMonth > time.December {
			return fmt.Errorf("recurring month must be between 1 and 12, got %d", e.RecurringMonth)
		}
	default:
		return fmt.Errorf("unknown expense type %q", e.Type)
	}
	return nil
}
