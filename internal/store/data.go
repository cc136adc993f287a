package store

import (
	"github.com/mavit/mavit-cash/internal/model"
)

// ResetData replaces the entire state with factory defaults: no user,
// empty collections, the seed category set, default settings. It is
// destructive and takes no backup; any confirmation happens in the
// presentation layer.
func (s *Store) ResetData() {
	s.mutate(func(st *model.Snapshot) {
		*st = defaultSnapshot(s.stamp())
	})
}

// ExportData returns a copy of all persisted collections for external
// serialization. The store itself writes no files; the sidebar UI flag
// is not part of an export.
func (s *Store) ExportData() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.state.Clone()
	out.SidebarCollapsed = false
	return out
}

// ImportPatch carries externally-provided sections to merge into the
// current state. Nil sections are left untouched; present sections
// replace their collection wholesale.
type ImportPatch struct {
	User       *model.User
	Settings   *model.AppSettings
	Expenses   []model.Expense
	Budgets    []model.Budget
	Goals      []model.Goal
	Debts      []model.Debt
	Categories []model.Category
}

// ImportData shallow-merges the patch into the current state. No shape
// validation or migration is performed; the caller is responsible for
// producing a compatible snapshot (typically via the storage codec).
func (s *Store) ImportData(patch ImportPatch) {
	s.mutate(func(st *model.Snapshot) {
		if patch.User != nil {
			u := *patch.User
			st.User = &u
		}
		if patch.Settings != nil {
			st.Settings = *patch.Settings
		}
		if patch.Expenses != nil {
			st.Expenses = append([]model.Expense(nil), patch.Expenses...)
		}
		if patch.Budgets != nil {
			st.Budgets = append([]model.Budget(nil), patch.Budgets...)
		}
		if patch.Goals != nil {
			st.Goals = append([]model.Goal(nil), patch.Goals...)
		}
		if patch.Debts != nil {
			st.Debts = append([]model.Debt(nil), patch.Debts...)
		}
		if patch.Categories != nil {
			st.Categories = append([]model.Category(nil), patch.Categories...)
		}
	})
}
