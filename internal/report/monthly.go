// Package report derives aggregate figures from a state snapshot. All
// functions are pure: they read the snapshot they are given and never
// touch the store.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mavit/mavit-cash/internal/model"
)

// InMonth reports whether t falls inside the given calendar month.
func InMonth(t time.Time, month time.Month, year int) bool {
	return t.Month() == month && t.Year() == year
}

// MonthlyExpenses filters expenses whose literal stored date falls in
// the given month. Recurring and annual expenses are not expanded into
// virtual occurrences; only the stored date counts.
func MonthlyExpenses(expenses []model.Expense, month time.Month, year int) []model.Expense {
	var out []model.Expense
	for _, e := range expenses {
		if InMonth(e.Date, month, year) {
			out = append(out, e)
		}
	}
	return out
}

// MonthlyTotal sums the amounts of the month's expenses.
func MonthlyTotal(expenses []model.Expense, month time.Month, year int) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if InMonth(e.Date, month, year) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// CategoryBreakdown sums the month's expenses per live category and
// computes each category's share of the total. Categories with no
// matching spend are excluded; rows are ordered by amount, largest
// first. The share is 0 when the month's total is 0.
func CategoryBreakdown(expenses []model.Expense, categories []model.Category, month time.Month, year int) []model.CategoryAmount {
	monthly := MonthlyExpenses(expenses, month, year)
	total := decimal.Zero
	for _, e := range monthly {
		total = total.Add(e.Amount)
	}

	var rows []model.CategoryAmount
	for _, c := range categories {
		sum := decimal.Zero
		for _, e := range monthly {
			if e.CategoryID == c.ID {
				sum = sum.Add(e.Amount)
			}
		}
		if sum.IsZero() {
			continue
		}
		row := model.CategoryAmount{
			CategoryID:   c.ID,
			CategoryName: c.Name,
			Color:        c.Color,
			Amount:       sum,
		}
		if total.IsPositive() {
			row.Percentage, _ = sum.Div(total).Mul(decimal.NewFromInt(100)).Float64()
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Amount.GreaterThan(rows[j].Amount)
	})
	return rows
}
