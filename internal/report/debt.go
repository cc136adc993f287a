package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mavit/mavit-cash/internal/model"
)

// EffectiveStrategy resolves the payoff strategy for the debt list. A
// strategy set in settings wins; otherwise it falls back to the first
// debt's per-record Priority field, which is how historical data
// carried the strategy. Snowball is the default for an empty list.
func EffectiveStrategy(settings model.AppSettings, debts []model.Debt) model.DebtStrategy {
	if settings.DebtStrategy != "" {
		return settings.DebtStrategy
	}
	if len(debts) > 0 && debts[0].Priority != "" {
		return debts[0].Priority
	}
	return model.StrategySnowball
}

// PrioritizeDebts orders debts for payoff focus: snowball sorts by
// ascending remaining balance, avalanche by descending interest rate.
// The sort is stable and returns a new slice; the first element is the
// priority debt.
func PrioritizeDebts(debts []model.Debt, strategy model.DebtStrategy) []model.Debt {
	out := append([]model.Debt(nil), debts...)
	switch strategy {
	case model.StrategyAvalanche:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].InterestRate.GreaterThan(out[j].InterestRate)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].RemainingAmount.LessThan(out[j].RemainingAmount)
		})
	}
	return out
}

// PayoffProjection estimates when a debt is paid off at its minimum
// payment. The interest figure is a simple linear approximation, not an
// amortization schedule.
type PayoffProjection struct {
	Months            int
	EstimatedInterest decimal.Decimal
}

// ProjectPayoff computes months to payoff as ceil(remaining / minimum
// payment) and estimated remaining interest as remaining × rate/100 ×
// months/12. A non-positive minimum payment projects zero months.
func ProjectPayoff(d model.Debt) PayoffProjection {
	if !d.MinimumPayment.IsPositive() {
		return PayoffProjection{EstimatedInterest: decimal.Zero}
	}

	months := d.RemainingAmount.Div(d.MinimumPayment).Ceil().IntPart()
	interest := d.RemainingAmount.
		Mul(d.InterestRate).Div(decimal.NewFromInt(100)).
		Mul(decimal.NewFromInt(months)).Div(decimal.NewFromInt(12))

	return PayoffProjection{
		Months:            int(months),
		EstimatedInterest: interest,
	}
}

// DebtSummary aggregates the whole debt list for the overview header.
type DebtSummary struct {
	TotalRemaining  decimal.Decimal
	TotalOriginal   decimal.Decimal
	TotalPaid       decimal.Decimal
	TotalMinPayment decimal.Decimal
	AverageProgress float64 // mean per-debt paid fraction, 0..1
}

// SummarizeDebts totals the debt collection.
func SummarizeDebts(debts []model.Debt) DebtSummary {
	s := DebtSummary{
		TotalRemaining:  decimal.Zero,
		TotalOriginal:   decimal.Zero,
		TotalPaid:       decimal.Zero,
		TotalMinPayment: decimal.Zero,
	}
	progress := 0.0
	for _, d := range debts {
		s.TotalRemaining = s.TotalRemaining.Add(d.RemainingAmount)
		s.TotalOriginal = s.TotalOriginal.Add(d.TotalAmount)
		s.TotalMinPayment = s.TotalMinPayment.Add(d.MinimumPayment)
		progress += d.Progress()
	}
	s.TotalPaid = s.TotalOriginal.Sub(s.TotalRemaining)
	if len(debts) > 0 {
		s.AverageProgress = progress / float64(len(debts))
	}
	return s
}
