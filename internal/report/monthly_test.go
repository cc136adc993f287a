package report

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mavit/mavit-cash/internal/model"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthlyTotal(t *testing.T) {
	expenses := []model.Expense{
		{Amount: money("100"), Date: day(2024, time.April, 3)},
		{Amount: money("50.50"), Date: day(2024, time.April, 28)},
		{Amount: money("999"), Date: day(2024, time.March, 31)}, // other month
		{Amount: money("999"), Date: day(2023, time.April, 3)},  // other year
	}

	total := MonthlyTotal(expenses, time.April, 2024)
	if !total.Equal(money("150.50")) {
		t.Errorf("total = %s, want 150.50", total)
	}
}

func TestMonthlyTotal_RecurringNotExpanded(t *testing.T) {
	// A recurring expense dated in March contributes nothing to April;
	// only the literal stored date counts.
	expenses := []model.Expense{
		{Amount: money("80"), Date: day(2024, time.March, 5), Type: model.ExpenseRecurring, RecurringDay: 5},
	}

	if total := MonthlyTotal(expenses, time.April, 2024); !total.IsZero() {
		t.Errorf("recurring expense was expanded: total = %s", total)
	}
}

func TestCategoryBreakdown(t *testing.T) {
	categories := []model.Category{
		{ID: "food", Name: "Alimentação"},
		{ID: "transport", Name: "Transporte"},
		{ID: "health", Name: "Saúde"},
	}
	expenses := []model.Expense{
		{CategoryID: "food", Amount: money("100"), Date: day(2024, time.April, 2)},
		{CategoryID: "food", Amount: money("50"), Date: day(2024, time.April, 10)},
		{CategoryID: "transport", Amount: money("50"), Date: day(2024, time.April, 20)},
	}

	rows := CategoryBreakdown(expenses, categories, time.April, 2024)

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows (zero-spend category excluded), got %d", len(rows))
	}
	if rows[0].CategoryName != "Alimentação" || !rows[0].Amount.Equal(money("150")) {
		t.Errorf("top row = %+v, want Alimentação 150", rows[0])
	}
	if math.Abs(rows[0].Percentage-75) > 1e-9 {
		t.Errorf("food share = %v, want 75", rows[0].Percentage)
	}
	if rows[1].CategoryName != "Transporte" || math.Abs(rows[1].Percentage-25) > 1e-9 {
		t.Errorf("second row = %+v, want Transporte 25%%", rows[1])
	}
}

func TestCategoryBreakdown_EmptyMonth(t *testing.T) {
	categories := []model.Category{{ID: "food", Name: "Alimentação"}}

	rows := CategoryBreakdown(nil, categories, time.April, 2024)
	if len(rows) != 0 {
		t.Errorf("expected no rows for an empty month, got %+v", rows)
	}
}

func TestBuildMonthlyReport(t *testing.T) {
	food := model.Category{ID: "food", Name: "Alimentação"}
	snap := model.Snapshot{
		User: &model.User{Name: "Ana", Salary: money("5000")},
		Expenses: []model.Expense{
			{CategoryID: "food", Amount: money("1250"), Date: day(2024, time.April, 5)},
		},
		Budgets: []model.Budget{
			{CategoryID: "food", CategorySnapshot: food, Amount: money("1000"),
				Spent: money("0"), Month: time.April, Year: 2024},
		},
		Categories: []model.Category{food},
	}

	now := day(2024, time.May, 1)
	r := BuildMonthlyReport(snap, time.April, 2024, now)

	if !r.TotalIncome.Equal(money("5000")) || !r.TotalExpenses.Equal(money("1250")) {
		t.Errorf("totals wrong: income=%s expenses=%s", r.TotalIncome, r.TotalExpenses)
	}
	if !r.Balance.Equal(money("3750")) {
		t.Errorf("balance = %s, want 3750", r.Balance)
	}
	if len(r.BudgetComparison) != 1 {
		t.Fatalf("expected 1 budget comparison row, got %d", len(r.BudgetComparison))
	}
	row := r.BudgetComparison[0]
	// Spend is recomputed from expenses, not read from the stale field.
	if !row.Spent.Equal(money("1250")) {
		t.Errorf("row spent = %s, want recomputed 1250", row.Spent)
	}
	if !row.Variance.Equal(money("-250")) {
		t.Errorf("row variance = %s, want -250", row.Variance)
	}
}

func TestBuildMonthlyReport_NoUser(t *testing.T) {
	r := BuildMonthlyReport(model.Snapshot{}, time.April, 2024, day(2024, time.May, 1))
	if !r.TotalIncome.IsZero() || !r.Balance.IsZero() {
		t.Errorf("expected zero income without a profile: %+v", r)
	}
}
