package store

import (
	"github.com/mavit/mavit-cash/internal/model"
)

// AddCategory assigns a fresh id and creation timestamp, appends the
// category and returns the stored copy. Name uniqueness is a
// convention, not enforced here.
func (s *Store) AddCategory(c model.Category) model.Category {
	s.mutate(func(st *model.Snapshot) {
		c.ID = s.newID()
		c.CreatedAt = s.stamp()
		st.Categories = append(append([]model.Category(nil), st.Categories...), c)
	})
	return c
}

// CategoryPatch is a partial category update; nil fields are left
// untouched.
type CategoryPatch struct {
	Name  *string
	Color *string
	Icon  *string
}

// UpdateCategory merges the patch over the matching category. An absent
// id is a silent no-op. Category snapshots already embedded in expenses
// and budgets keep the old values; only the live collection changes.
func (s *Store) UpdateCategory(id string, patch CategoryPatch) {
	s.mutate(func(st *model.Snapshot) {
		next := append([]model.Category(nil), st.Categories...)
		for i := range next {
			if next[i].ID != id {
				continue
			}
			if patch.Name != nil {
				next[i].Name = *patch.Name
			}
			if patch.Color != nil {
				next[i].Color = *patch.Color
			}
			if patch.Icon != nil {
				next[i].Icon = *patch.Icon
			}
		}
		st.Categories = next
	})
}

// DeleteCategory removes the matching category; no-op when absent.
// Expenses and budgets referencing it are not touched: they keep their
// now-dangling CategoryID and their embedded snapshot.
func (s *Store) DeleteCategory(id string) {
	s.mutate(func(st *model.Snapshot) {
		next := make([]model.Category, 0, len(st.Categories))
		for _, c := range st.Categories {
			if c.ID != id {
				next = append(next, c)
			}
		}
		st.Categories = next
	})
}

// Categories returns a copy of the live category collection.
func (s *Store) Categories() []model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Category(nil), s.state.Categories...)
}

// CategoryByName returns the first category with the given name, or
// false when none matches.
func (s *Store) CategoryByName(name string) (model.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.state.Categories {
		if c.Name == name {
			return c, true
		}
	}
	return model.Category{}, false
}
