package model

import "github.com/shopspring/decimal"

// TemplateLine assigns a percentage of the user's salary to a category,
// matched by name.
type TemplateLine struct {
	CategoryName string
	Percentage   decimal.Decimal
}

// BudgetTemplate is a named percentage distribution over categories,
// applied to generate one month's budgets from the user's salary.
type BudgetTemplate struct {
	ID           string
	Name         string
	Description  string
	Distribution []TemplateLine
}
