package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryAmount is one row of a per-category spend breakdown.
// Percentage is the share of the month's total, 0 when the total is 0.
type CategoryAmount struct {
	CategoryID   string
	CategoryName string
	Color        string
	Amount       decimal.Decimal
	Percentage   float64
}

// BudgetComparison contrasts one budget with the spend actually
// recorded for its category and month. Spent is recomputed from
// expenses, not read from the budget's stale Spent field.
type BudgetComparison struct {
	CategoryID   string
	CategoryName string
	Budgeted     decimal.Decimal
	Spent        decimal.Decimal
	Variance     decimal.Decimal // Budgeted - Spent; negative when over
}

// MonthlyReport aggregates one calendar month of activity.
type MonthlyReport struct {
	GeneratedAt        time.Time
	ExpensesByCategory []CategoryAmount
	BudgetComparison   []BudgetComparison
	TotalIncome        decimal.Decimal
	TotalExpenses      decimal.Decimal
	Balance            decimal.Decimal
	Month              time.Month
	Year               int
}
