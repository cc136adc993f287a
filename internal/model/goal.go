package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings goal. CurrentAmount may exceed TargetAmount; the
// deadline is only required to be in the future at creation time and is
// never re-validated afterwards.
type Goal struct {
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Deadline      *time.Time
	CompletedAt   *time.Time
	ID            string
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Completed     bool
}

// Validate checks form-layer constraints for a new goal. now anchors the
// future-deadline check.
func (g *Goal) Validate(now time.Time) error {
	if g.Name == "" {
		return fmt.Errorf("goal name is required")
	}
	if !g.TargetAmount.IsPositive() {
		return fmt.Errorf("goal target amount must be positive, got %s", g.TargetAmount)
	}
	if g.CurrentAmount.IsNegative() {
		return fmt.Errorf("goal current amount cannot be negative, got %s", g.CurrentAmount)
	}
	if g.Deadline != nil && !g.Deadline.After(now) {
		return fmt.Errorf("goal deadline must be in the future")
	}
	return nil
}

// Progress returns completion as a fraction of the target, unbounded
// above 1. A zero target yields 0.
func (g *Goal) Progress() float64 {
	if !g.TargetAmount.IsPositive() {
		return 0
	}
	progress, _ := g.CurrentAmount.Div(g.TargetAmount).Float64()
	return progress
}
