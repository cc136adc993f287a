package report

import (
	"testing"
	"time"

	"github.com/mavit/mavit-cash/internal/model"
)

func templateSnapshot() model.Snapshot {
	return model.Snapshot{
		User: &model.User{Name: "Ana", Salary: money("4000")},
		Categories: []model.Category{
			{ID: "housing", Name: "Moradia"},
			{ID: "food", Name: "Alimentação"},
		},
		Expenses: []model.Expense{
			{CategoryID: "food", Amount: money("320"), Date: day(2024, time.April, 12)},
			{CategoryID: "food", Amount: money("999"), Date: day(2024, time.March, 12)},
		},
	}
}

func TestApplyTemplate(t *testing.T) {
	tmpl, ok := TemplateByID("50-30-20")
	if !ok {
		t.Fatal("builtin template missing")
	}

	budgets := ApplyTemplate(tmpl, templateSnapshot(), time.April, 2024)

	// Only Moradia and Alimentação exist in this snapshot; the other
	// four distribution lines are skipped silently.
	if len(budgets) != 2 {
		t.Fatalf("expected 2 budgets, got %d", len(budgets))
	}

	housing := budgets[0]
	if housing.CategoryID != "housing" {
		t.Fatalf("unexpected first budget: %+v", housing)
	}
	// 4000 * 25%
	if !housing.Amount.Equal(money("1000")) {
		t.Errorf("housing amount = %s, want 1000", housing.Amount)
	}
	if !housing.Spent.IsZero() {
		t.Errorf("housing spent = %s, want 0", housing.Spent)
	}

	food := budgets[1]
	// 4000 * 15%
	if !food.Amount.Equal(money("600")) {
		t.Errorf("food amount = %s, want 600", food.Amount)
	}
	// Pre-populated from April's existing expenses only.
	if !food.Spent.Equal(money("320")) {
		t.Errorf("food spent = %s, want 320", food.Spent)
	}
	if food.Month != time.April || food.Year != 2024 {
		t.Errorf("wrong target month: %+v", food)
	}
	if food.ID != "" || !food.CreatedAt.IsZero() {
		t.Errorf("payload should carry no identity, store assigns it: %+v", food)
	}
	if food.CategorySnapshot.Name != "Alimentação" {
		t.Errorf("category snapshot not embedded: %+v", food.CategorySnapshot)
	}
}

func TestApplyTemplate_NoUser(t *testing.T) {
	snap := templateSnapshot()
	snap.User = nil

	if budgets := ApplyTemplate(BuiltinTemplates()[0], snap, time.April, 2024); budgets != nil {
		t.Errorf("expected no budgets without a profile, got %d", len(budgets))
	}
}

func TestApplyTemplate_ZeroSalary(t *testing.T) {
	snap := templateSnapshot()
	snap.User.Salary = money("0")

	if budgets := ApplyTemplate(BuiltinTemplates()[0], snap, time.April, 2024); budgets != nil {
		t.Errorf("expected no budgets with zero salary, got %d", len(budgets))
	}
}
