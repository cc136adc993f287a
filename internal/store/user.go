package store

import (
	"github.com/shopspring/decimal"

	"github.com/mavit/mavit-cash/internal/model"
)

// SetUser establishes or replaces the singleton profile. An id and
// timestamps are assigned when the payload carries none, so onboarding
// can pass a bare name and salary.
func (s *Store) SetUser(u model.User) model.User {
	s.mutate(func(st *model.Snapshot) {
		now := s.stamp()
		if u.ID == "" {
			u.ID = s.newID()
		}
		if u.CreatedAt.IsZero() {
			u.CreatedAt = now
		}
		u.UpdatedAt = now
		st.User = &u
	})
	return u
}

// UserPatch is a partial profile update; nil fields are left untouched.
type UserPatch struct {
	Name   *string
	Salary *decimal.Decimal
}

// UpdateUser merges the patch over the profile and refreshes UpdatedAt.
// With no user configured this is a silent no-op.
func (s *Store) UpdateUser(patch UserPatch) {
	s.mutate(func(st *model.Snapshot) {
		if st.User == nil {
			return
		}
		u := *st.User
		if patch.Name != nil {
			u.Name = *patch.Name
		}
		if patch.Salary != nil {
			u.Salary = *patch.Salary
		}
		u.UpdatedAt = s.stamp()
		st.User = &u
	})
}

// User returns a copy of the profile, or false when none is configured.
func (s *Store) User() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.User == nil {
		return model.User{}, false
	}
	return *s.state.User, true
}
