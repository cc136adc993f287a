package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDebt_Validate(t *testing.T) {
	valid := Debt{
		Name:            "Cartão",
		TotalAmount:     decimal.RequireFromString("3000"),
		RemainingAmount: decimal.RequireFromString("1200"),
		InterestRate:    decimal.RequireFromString("12.5"),
		MinimumPayment:  decimal.RequireFromString("150"),
		Priority:        StrategySnowball,
	}

	tests := []struct {
		name    string
		mutate  func(*Debt)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Debt) {}},
		{
			name:   "zero interest is allowed",
			mutate: func(d *Debt) { d.InterestRate = decimal.Zero },
		},
		{
			name:   "remaining equal to total is allowed",
			mutate: func(d *Debt) { d.RemainingAmount = d.TotalAmount },
		},
		{
			name:    "missing name",
			mutate:  func(d *Debt) { d.Name = "" },
			wantErr: true,
		},
		{
			name:    "remaining above total",
			mutate:  func(d *Debt) { d.RemainingAmount = decimal.RequireFromString("3001") },
			wantErr: true,
		},
		{
			name:    "zero remaining",
			mutate:  func(d *Debt) { d.RemainingAmount = decimal.Zero },
			wantErr: true,
		},
		{
			name:    "negative interest",
			mutate:  func(d *Debt) { d.InterestRate = decimal.RequireFromString("-1") },
			wantErr: true,
		},
		{
			name:    "zero minimum payment",
			mutate:  func(d *Debt) { d.MinimumPayment = decimal.Zero },
			wantErr: true,
		},
		{
			name:    "unknown strategy",
			mutate:  func(d *Debt) { d.Priority = "tsunami" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.mutate(&d)
			err := d.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected an error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestDebt_Progress(t *testing.T) {
	d := Debt{
		TotalAmount:     decimal.RequireFromString("1000"),
		RemainingAmount: decimal.RequireFromString("250"),
	}
	if got := d.Progress(); got != 0.75 {
		t.Errorf("progress = %v, want 0.75", got)
	}
}
