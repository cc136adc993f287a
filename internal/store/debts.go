package store

import (
	"github.com/shopspring/decimal"

	"github.com/mavit/mavit-cash/internal/model"
)

// AddDebt assigns a fresh id and timestamps, appends the debt and
// returns the stored copy.
func (s *Store) AddDebt(d model.Debt) model.Debt {
	s.mutate(func(st *model.Snapshot) {
		now := s.stamp()
		d.ID = s.newID()
		d.CreatedAt = now
		d.UpdatedAt = now
		st.Debts = append(append([]model.Debt(nil), st.Debts...), d)
	})
	return d
}

// DebtPatch is a partial debt update; nil fields are left untouched.
// The remaining-amount bound checked at creation is not re-validated.
type DebtPatch struct {
	Name            *string
	TotalAmount     *decimal.Decimal
	RemainingAmount *decimal.Decimal
	InterestRate    *decimal.Decimal
	MinimumPayment  *decimal.Decimal
	Priority        *model.DebtStrategy
}

// UpdateDebt merges the patch over the matching debt and refreshes
// UpdatedAt. An absent id is a silent no-op.
func (s *Store) UpdateDebt(id string, patch DebtPatch) {
	s.mutate(func(st *model.Snapshot) {
		next := append([]model.Debt(nil), st.Debts...)
		for i := range next {
			if next[i].ID != id {
				continue
			}
			applyDebtPatch(&next[i], patch)
			next[i].UpdatedAt = s.stamp()
		}
		st.Debts = next
	})
}

// DeleteDebt removes the matching debt; no-op when absent.
func (s *Store) DeleteDebt(id string) {
	s.mutate(func(st *model.Snapshot) {
		next := make([]model.Debt, 0, len(st.Debts))
		for _, d := range st.Debts {
			if d.ID != id {
				next = append(next, d)
			}
		}
		st.Debts = next
	})
}

// Debts returns a copy of the debt collection.
func (s *Store) Debts() []model.Debt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Debt(nil), s.state.Debts...)
}

func applyDebtPatch(d *model.Debt, patch DebtPatch) {
	if patch.Name != nil {
		d.Name = *patch.Name
	}
	if patch.TotalAmount != nil {
		d.TotalAmount = *patch.TotalAmount
	}
	if patch.RemainingAmount != nil {
		d.RemainingAmount = *patch.RemainingAmount
	}
	if patch.InterestRate != nil {
		d.InterestRate = *patch.InterestRate
	}
	if patch.MinimumPayment != nil {
		d.MinimumPayment = *patch.MinimumPayment
	}
	if patch.Priority != nil {
		d.Priority = *patch.Priority
	}
}
