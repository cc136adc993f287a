package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestExpense_Validate(t *testing.T) {
	valid := Expense{
		Description: "Mercado",
		Amount:      decimal.RequireFromString("42.50"),
		Type:        ExpenseOneTime,
	}

	tests := []struct {
		name    string
		mutate  func(*Expense)
		wantErr bool
	}{
		{
			name:   "valid one-time",
			mutate: func(*Expense) {},
		},
		{
			name: "valid recurring",
			mutate: func(e *Expense) {
				e.Type = ExpenseRecurring
				e.RecurringDay = 15
			},
		},
		{
			name: "valid annual",
			mutate: func(e *Expense) {
				e.Type = ExpenseAnnual
				e.RecurringDay = 28
				e.RecurringMonth = time.November
			},
		},
		{
			name:    "missing description",
			mutate:  func(e *Expense) { e.Description = "" },
			wantErr: true,
		},
		{
			name:    "zero amount",
			mutate:  func(e *Expense) { e.Amount = decimal.Zero },
			wantErr: true,
		},
		{
			name:    "negative amount",
			mutate:  func(e *Expense) { e.Amount = decimal.RequireFromString("-1") },
			wantErr: true,
		},
		{
			name: "recurring day out of range",
			mutate: func(e *Expense) {
				e.Type = ExpenseRecurring
				e.RecurringDay = 32
			},
			wantErr: true,
		},
		{
			name: "annual without month",
			mutate: func(e *Expense) {
				e.Type = ExpenseAnnual
				e.RecurringDay = 10
			},
			wantErr: true,
		},
		{
			name:    "unknown type",
			mutate:  func(e *Expense) { e.Type = "weekly" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)
			err := e.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected an error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
