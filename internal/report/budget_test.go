package report

import (
	"math"
	"testing"
	"time"

	"github.com/mavit/mavit-cash/internal/model"
)

func TestBudgetUtilization(t *testing.T) {
	budget := model.Budget{
		CategoryID: "food",
		Amount:     money("1000"),
		Spent:      money("1"), // stale snapshot, must be ignored
		Month:      time.April,
		Year:       2024,
	}

	tests := []struct {
		name        string
		wantStatus  BudgetStatus
		wantPercent float64
		expenses    []model.Expense
	}{
		{
			name:        "over budget at 125 percent",
			wantStatus:  BudgetOver,
			wantPercent: 125,
			expenses: []model.Expense{
				{CategoryID: "food", Amount: money("1250"), Date: day(2024, time.April, 10)},
			},
		},
		{
			name:        "within budget under 80 percent",
			wantStatus:  BudgetWithin,
			wantPercent: 79.9,
			expenses: []model.Expense{
				{CategoryID: "food", Amount: money("799"), Date: day(2024, time.April, 10)},
			},
		},
		{
			name:        "near limit at exactly 80 percent",
			wantStatus:  BudgetNearLimit,
			wantPercent: 80,
			expenses: []model.Expense{
				{CategoryID: "food", Amount: money("800"), Date: day(2024, time.April, 10)},
			},
		},
		{
			name:        "near limit at exactly 100 percent",
			wantStatus:  BudgetNearLimit,
			wantPercent: 100,
			expenses: []model.Expense{
				{CategoryID: "food", Amount: money("1000"), Date: day(2024, time.April, 10)},
			},
		},
		{
			name:        "other categories and months ignored",
			wantStatus:  BudgetWithin,
			wantPercent: 10,
			expenses: []model.Expense{
				{CategoryID: "food", Amount: money("100"), Date: day(2024, time.April, 10)},
				{CategoryID: "transport", Amount: money("900"), Date: day(2024, time.April, 10)},
				{CategoryID: "food", Amount: money("900"), Date: day(2024, time.May, 10)},
			},
		},
		{
			name:        "no expenses",
			wantStatus:  BudgetWithin,
			wantPercent: 0,
			expenses:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := BudgetUtilization(budget, tt.expenses)
			if u.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", u.Status, tt.wantStatus)
			}
			if math.Abs(u.Percent-tt.wantPercent) > 1e-9 {
				t.Errorf("percent = %v, want %v", u.Percent, tt.wantPercent)
			}
		})
	}
}

func TestBudgetsForMonth_KeepsDuplicates(t *testing.T) {
	budgets := []model.Budget{
		{ID: "b1", CategoryID: "food", Month: time.April, Year: 2024},
		{ID: "b2", CategoryID: "food", Month: time.April, Year: 2024}, // duplicate key, allowed
		{ID: "b3", CategoryID: "food", Month: time.May, Year: 2024},
	}

	got := BudgetsForMonth(budgets, time.April, 2024)
	if len(got) != 2 {
		t.Fatalf("expected both duplicate budgets, got %d", len(got))
	}
	if got[0].ID != "b1" || got[1].ID != "b2" {
		t.Errorf("unexpected budgets: %+v", got)
	}
}
