package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mavit/mavit-cash/internal/model"
)

// BuildMonthlyReport assembles the full monthly picture: income from
// the profile salary, total and per-category spend, and a comparison
// row for every budget targeting the month (duplicates included, spend
// recomputed live).
func BuildMonthlyReport(snap model.Snapshot, month time.Month, year int, now time.Time) model.MonthlyReport {
	income := decimal.Zero
	if snap.User != nil {
		income = snap.User.Salary
	}
	total := MonthlyTotal(snap.Expenses, month, year)

	r := model.MonthlyReport{
		GeneratedAt:        now,
		Month:              month,
		Year:               year,
		TotalIncome:        income,
		TotalExpenses:      total,
		Balance:            income.Sub(total),
		ExpensesByCategory: CategoryBreakdown(snap.Expenses, snap.Categories, month, year),
	}

	for _, b := range BudgetsForMonth(snap.Budgets, month, year) {
		u := BudgetUtilization(b, snap.Expenses)
		r.BudgetComparison = append(r.BudgetComparison, model.BudgetComparison{
			CategoryID:   b.CategoryID,
			CategoryName: b.CategorySnapshot.Name,
			Budgeted:     b.Amount,
			Spent:        u.Spent,
			Variance:     b.Amount.Sub(u.Spent),
		})
	}
	return r
}
