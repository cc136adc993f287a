package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DebtStrategy selects the payoff ordering for the debt list.
type DebtStrategy string

const (
	// StrategySnowball pays smallest remaining balance first.
	StrategySnowball DebtStrategy = "snowball"
	// StrategyAvalanche pays highest interest rate first.
	StrategyAvalanche DebtStrategy = "avalanche"
)

// Debt is an outstanding debt being paid down.
//
// Priority is stored per debt for historical reasons; in practice the
// list is ordered by a single strategy. See report.EffectiveStrategy for
// how the global strategy is resolved.
type Debt struct {
	CreatedAt       time.Time
	UpdatedAt       time.Time
	ID              string
	Name            string
	Priority        DebtStrategy
	TotalAmount     decimal.Decimal
	RemainingAmount decimal.Decimal
	InterestRate    decimal.Decimal // annual rate in percent
	MinimumPayment  decimal.Decimal // per month
}

// Validate checks form-layer constraints for a new debt. The remaining
// amount bound is not re-checked on updates.
func (d *Debt) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("debt name is required")
	}
	if !d.TotalAmount.IsPositive() {
		return fmt.Errorf("debt total amount must be positive, got %s", d.TotalAmount)
	}
	if !d.RemainingAmount.IsPositive() || d.RemainingAmount.GreaterThan(d.TotalAmount) {
		return fmt.Errorf("debt remaining amount must be between 0 and %s, got %s", d.TotalAmount, d.RemainingAmount)
	}
	if d.InterestRate.IsNegative() {
		return fmt.Errorf("debt interest rate cannot be negative, got %s", d.InterestRate)
	}
	if !d.MinimumPayment.IsPositive() {
		return fmt.Errorf("debt minimum payment must be positive, got %s", d.MinimumPayment)
	}
	switch d.Priority {
	case StrategySnowball, StrategyAvalanche:
	default:
		return fmt.Errorf("unknown payoff strategy %q", d.Priority)
	}
	return nil
}

// Progress returns the fraction of the debt already paid off.
func (d *Debt) Progress() float64 {
	if !d.TotalAmount.IsPositive() {
		return 0
	}
	paid := d.TotalAmount.Sub(d.RemainingAmount)
	progress, _ := paid.Div(d.TotalAmount).Float64()
	return progress
}
