package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mavit/mavit-cash/internal/model"
)

// AddBudget assigns a fresh id and timestamps, appends the budget and
// returns the stored copy. Uniqueness of (categoryId, month, year) is
// not enforced; duplicate budgets are allowed and views must tolerate
// them.
func (s *Store) AddBudget(b model.Budget) model.Budget {
	s.mutate(func(st *model.Snapshot) {
		now := s.stamp()
		b.ID = s.newID()
		b.CreatedAt = now
		b.UpdatedAt = now
		st.Budgets = append(append([]model.Budget(nil), st.Budgets...), b)
	})
	return b
}

// BudgetPatch is a partial budget update; nil fields are left
// untouched. Patching Spent overwrites the stored point-in-time figure;
// nothing ever refreshes it automatically.
type BudgetPatch struct {
	CategoryID       *string
	CategorySnapshot *model.Category
	Amount           *decimal.Decimal
	Spent            *decimal.Decimal
	Month            *time.Month
	Year             *int
}

// UpdateBudget merges the patch over the matching budget and refreshes
// UpdatedAt. An absent id is a silent no-op.
func (s *Store) UpdateBudget(id string, patch BudgetPatch) {
	s.mutate(func(st *model.Snapshot) {
		next := append([]model.Budget(nil), st.Budgets...)
		for i := range next {
			if next[i].ID != id {
				continue
			}
			applyBudgetPatch(&next[i], patch)
			next[i].UpdatedAt = s.stamp()
		}
		st.Budgets = next
	})
}

// DeleteBudget removes the matching budget; no-op when absent.
func (s *Store) DeleteBudget(id string) {
	s.mutate(func(st *model.Snapshot) {
		next := make([]model.Budget, 0, len(st.Budgets))
		for _, b := range st.Budgets {
			if b.ID != id {
				next = append(next, b)
			}
		}
		st.Budgets = next
	})
}

// Budgets returns a copy of the budget collection.
func (s *Store) Budgets() []model.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Budget(nil), s.state.Budgets...)
}

func applyBudgetPatch(b *model.Budget, patch BudgetPatch) {
	if patch.CategoryID != nil {
		b.CategoryID = *patch.CategoryID
	}
	if patch.CategorySnapshot != nil {
		b.CategorySnapshot = *patch.CategorySnapshot
	}
	if patch.Amount != nil {
		b.Amount = *patch.Amount
	}
	if patch.Spent != nil {
		b.Spent = *patch.Spent
	}
	if patch.Month != nil {
		b.Month = *patch.Month
	}
	if patch.Year != nil {
		b.Year = *patch.Year
	}
}
