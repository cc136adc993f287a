package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mavit/mavit-cash/internal/model"
)

// BudgetStatus classifies how a budget's actual spend compares to its
// limit.
type BudgetStatus string

const (
	// BudgetWithin means spend is under 80% of the limit.
	BudgetWithin BudgetStatus = "within budget"
	// BudgetNearLimit means spend is between 80% and 100% of the limit.
	BudgetNearLimit BudgetStatus = "near limit"
	// BudgetOver means spend exceeds the limit.
	BudgetOver BudgetStatus = "over budget"
)

// Utilization is one budget's recomputed spend against its limit.
// Percent is unbounded above 100; presentation clamps bar widths but
// shows the true value as text.
type Utilization struct {
	Status  BudgetStatus
	Spent   decimal.Decimal
	Percent float64
}

// BudgetUtilization recomputes a budget's actual spend from the
// expenses matching its category and month, ignoring the budget's
// stored Spent field, which is a stale point-in-time snapshot.
func BudgetUtilization(b model.Budget, expenses []model.Expense) Utilization {
	spent := decimal.Zero
	for _, e := range expenses {
		if e.CategoryID == b.CategoryID && InMonth(e.Date, b.Month, b.Year) {
			spent = spent.Add(e.Amount)
		}
	}

	u := Utilization{Spent: spent, Status: BudgetWithin}
	if b.Amount.IsPositive() {
		u.Percent, _ = spent.Div(b.Amount).Mul(decimal.NewFromInt(100)).Float64()
	}
	switch {
	case u.Percent > 100:
		u.Status = BudgetOver
	case u.Percent >= 80:
		u.Status = BudgetNearLimit
	}
	return u
}

// BudgetsForMonth filters budgets targeting the given month. Duplicate
// budgets for one category are kept as-is.
func BudgetsForMonth(budgets []model.Budget, month time.Month, year int) []model.Budget {
	var out []model.Budget
	for _, b := range budgets {
		if b.Month == month && b.Year == year {
			out = append(out, b)
		}
	}
	return out
}
