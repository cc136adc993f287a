package report

import (
	"testing"

	"github.com/mavit/mavit-cash/internal/model"
)

func testDebts() []model.Debt {
	return []model.Debt{
		{ID: "A", Name: "A", RemainingAmount: money("500"), InterestRate: money("5"), Priority: model.StrategySnowball},
		{ID: "B", Name: "B", RemainingAmount: money("200"), InterestRate: money("12"), Priority: model.StrategySnowball},
		{ID: "C", Name: "C", RemainingAmount: money("800"), InterestRate: money("8"), Priority: model.StrategySnowball},
	}
}

func assertOrder(t *testing.T, debts []model.Debt, want ...string) {
	t.Helper()
	if len(debts) != len(want) {
		t.Fatalf("expected %d debts, got %d", len(want), len(debts))
	}
	for i, id := range want {
		if debts[i].ID != id {
			t.Fatalf("position %d = %q, want %q (full order %v)", i, debts[i].ID, id, debts)
		}
	}
}

func TestPrioritizeDebts_Snowball(t *testing.T) {
	ordered := PrioritizeDebts(testDebts(), model.StrategySnowball)
	assertOrder(t, ordered, "B", "A", "C")
}

func TestPrioritizeDebts_Avalanche(t *testing.T) {
	ordered := PrioritizeDebts(testDebts(), model.StrategyAvalanche)
	assertOrder(t, ordered, "B", "C", "A")
}

func TestPrioritizeDebts_DoesNotMutateInput(t *testing.T) {
	debts := testDebts()
	_ = PrioritizeDebts(debts, model.StrategySnowball)
	assertOrder(t, debts, "A", "B", "C")
}

func TestEffectiveStrategy(t *testing.T) {
	tests := []struct {
		name     string
		settings model.AppSettings
		debts    []model.Debt
		want     model.DebtStrategy
	}{
		{
			name:     "settings win over per-debt priority",
			settings: model.AppSettings{DebtStrategy: model.StrategyAvalanche},
			debts:    testDebts(),
			want:     model.StrategyAvalanche,
		},
		{
			name:  "falls back to first debt's priority",
			debts: []model.Debt{{Priority: model.StrategyAvalanche}, {Priority: model.StrategySnowball}},
			want:  model.StrategyAvalanche,
		},
		{
			name: "defaults to snowball with no debts",
			want: model.StrategySnowball,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectiveStrategy(tt.settings, tt.debts); got != tt.want {
				t.Errorf("EffectiveStrategy = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProjectPayoff(t *testing.T) {
	debt := model.Debt{
		RemainingAmount: money("1200"),
		InterestRate:    money("12"),
		MinimumPayment:  money("150"),
	}

	p := ProjectPayoff(debt)
	if p.Months != 8 {
		t.Errorf("months = %d, want 8", p.Months)
	}
	// 1200 * 0.12 * 8/12 = 96
	if !p.EstimatedInterest.Equal(money("96")) {
		t.Errorf("interest = %s, want 96", p.EstimatedInterest)
	}
}

func TestProjectPayoff_RoundsMonthsUp(t *testing.T) {
	debt := model.Debt{
		RemainingAmount: money("1000"),
		InterestRate:    money("0"),
		MinimumPayment:  money("300"),
	}

	p := ProjectPayoff(debt)
	if p.Months != 4 {
		t.Errorf("months = %d, want ceil(1000/300) = 4", p.Months)
	}
	if !p.EstimatedInterest.IsZero() {
		t.Errorf("zero-rate debt accrued interest: %s", p.EstimatedInterest)
	}
}

func TestProjectPayoff_ZeroMinimumPayment(t *testing.T) {
	p := ProjectPayoff(model.Debt{RemainingAmount: money("1000")})
	if p.Months != 0 || !p.EstimatedInterest.IsZero() {
		t.Errorf("expected empty projection, got %+v", p)
	}
}

func TestSummarizeDebts(t *testing.T) {
	debts := []model.Debt{
		{TotalAmount: money("1000"), RemainingAmount: money("500"), MinimumPayment: money("50")},
		{TotalAmount: money("2000"), RemainingAmount: money("2000"), MinimumPayment: money("100")},
	}

	s := SummarizeDebts(debts)
	if !s.TotalRemaining.Equal(money("2500")) || !s.TotalOriginal.Equal(money("3000")) {
		t.Errorf("totals wrong: %+v", s)
	}
	if !s.TotalPaid.Equal(money("500")) {
		t.Errorf("paid = %s, want 500", s.TotalPaid)
	}
	if !s.TotalMinPayment.Equal(money("150")) {
		t.Errorf("min payment = %s, want 150", s.TotalMinPayment)
	}
	// (0.5 + 0) / 2
	if s.AverageProgress != 0.25 {
		t.Errorf("average progress = %v, want 0.25", s.AverageProgress)
	}
}
