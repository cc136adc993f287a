package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mavit/mavit-cash/internal/model"
)

var hundred = decimal.NewFromInt(100)

// BuiltinTemplates returns the budget templates shipped with the
// application.
func BuiltinTemplates() []model.BudgetTemplate {
	pct := func(n int64) decimal.Decimal { return decimal.NewFromInt(n) }
	return []model.BudgetTemplate{
		{
			ID:          "50-30-20",
			Name:        "Método 50/30/20",
			Description: "Distribuição clássica: 50% necessidades, 30% desejos, 20% poupança",
			Distribution: []model.TemplateLine{
				{CategoryName: "Moradia", Percentage: pct(25)},
				{CategoryName: "Alimentação", Percentage: pct(15)},
				{CategoryName: "Transporte", Percentage: pct(10)},
				{CategoryName: "Entretenimento", Percentage: pct(20)},
				{CategoryName: "Roupas", Percentage: pct(10)},
				{CategoryName: "Outros", Percentage: pct(20)},
			},
		},
	}
}

// TemplateByID finds a builtin template, or false when unknown.
func TemplateByID(id string) (model.BudgetTemplate, bool) {
	for _, t := range BuiltinTemplates() {
		if t.ID == id {
			return t, true
		}
	}
	return model.BudgetTemplate{}, false
}

// ApplyTemplate translates a template into budget payloads for the
// given month: each distribution line is matched to a category by name
// (no match skips the line silently) and budgeted at salary ×
// percentage / 100. Spent is pre-populated from the month's existing
// expenses, the one place that point-in-time figure is written. With no
// user or a non-positive salary nothing is produced.
//
// The returned payloads carry no ids or timestamps; the store assigns
// those on add.
func ApplyTemplate(t model.BudgetTemplate, snap model.Snapshot, month time.Month, year int) []model.Budget {
	if snap.User == nil || !snap.User.Salary.IsPositive() {
		return nil
	}
	salary := snap.User.Salary

	var budgets []model.Budget
	for _, line := range t.Distribution {
		category, ok := categoryByName(snap.Categories, line.CategoryName)
		if !ok {
			continue
		}

		spent := decimal.Zero
		for _, e := range snap.Expenses {
			if e.CategoryID == category.ID && InMonth(e.Date, month, year) {
				spent = spent.Add(e.Amount)
			}
		}

		budgets = append(budgets, model.Budget{
			CategoryID:       category.ID,
			CategorySnapshot: category,
			Amount:           salary.Mul(line.Percentage).Div(hundred),
			Spent:            spent,
			Month:            month,
			Year:             year,
		})
	}
	return budgets
}

func categoryByName(categories []model.Category, name string) (model.Category, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c, true
		}
	}
	return model.Category{}, false
}
