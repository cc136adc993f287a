package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mavit/mavit-cash/internal/model"
)

// AddExpense assigns a fresh id and timestamps, appends the expense and
// returns the stored copy. The payload's ID and timestamps, if set, are
// overwritten.
func (s *Store) AddExpense(e model.Expense) model.Expense {
	s.mutate(func(st *model.Snapshot) {
		now := s.stamp()
		e.ID = s.newID()
		e.CreatedAt = now
		e.UpdatedAt = now
		st.Expenses = append(append([]model.Expense(nil), st.Expenses...), e)
	})
	return e
}

// ExpensePatch is a partial expense update; nil fields are left
// untouched.
type ExpensePatch struct {
	Description      *string
	Amount           *decimal.Decimal
	CategoryID       *string
	CategorySnapshot *model.Category
	Date             *time.Time
	Type             *model.ExpenseType
	RecurringDay     *int
	RecurringMonth   *time.Month
}

// UpdateExpense merges the patch over the matching expense and
// refreshes UpdatedAt. An absent id is a silent no-op.
func (s *Store) UpdateExpense(id string, patch ExpensePatch) {
	s.mutate(func(st *model.Snapshot) {
		next := append([]model.Expense(nil), st.Expenses...)
		for i := range next {
			if next[i].ID != id {
				continue
			}
			applyExpensePatch(&next[i], patch)
			next[i].UpdatedAt = s.stamp()
		}
		st.Expenses = next
	})
}

// DeleteExpense removes the matching expense. An absent id is a silent
// no-op; nothing cascades.
func (s *Store) DeleteExpense(id string) {
	s.mutate(func(st *model.Snapshot) {
		next := make([]model.Expense, 0, len(st.Expenses))
		for _, e := range st.Expenses {
			if e.ID != id {
				next = append(next, e)
			}
		}
		st.Expenses = next
	})
}

// Expenses returns a copy of the expense collection.
func (s *Store) Expenses() []model.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Expense(nil), s.state.Expenses...)
}

func applyExpensePatch(e *model.Expense, patch ExpensePatch) {
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.Amount != nil {
		e.Amount = *patch.Amount
	}
	if patch.CategoryID != nil {
		e.CategoryID = *patch.CategoryID
	}
	if patch.CategorySnapshot != nil {
		e.CategorySnapshot = *patch.CategorySnapshot
	}
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	if patch.Type != nil {
		e.Type = *patch.Type
	}
	if patch.RecurringDay != nil {
		e.RecurringDay = *patch.RecurringDay
	}
	if patch.RecurringMonth != nil {
		e.RecurringMonth = *patch.RecurringMonth
	}
}
