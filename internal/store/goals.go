package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mavit/mavit-cash/internal/model"
)

// AddGoal assigns a fresh id and timestamps, appends the goal and
// returns the stored copy.
func (s *Store) AddGoal(g model.Goal) model.Goal {
	s.mutate(func(st *model.Snapshot) {
		now := s.stamp()
		g.ID = s.newID()
		g.CreatedAt = now
		g.UpdatedAt = now
		st.Goals = append(append([]model.Goal(nil), st.Goals...), g)
	})
	return g
}

// GoalPatch is a partial goal update; nil fields are left untouched.
type GoalPatch struct {
	Name          *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	Deadline      **time.Time
	Completed     *bool
}

// UpdateGoal merges the patch over the matching goal and refreshes
// UpdatedAt. An absent id is a silent no-op. The deadline set at
// creation is not re-validated here.
func (s *Store) UpdateGoal(id string, patch GoalPatch) {
	s.mutate(func(st *model.Snapshot) {
		next := append([]model.Goal(nil), st.Goals...)
		for i := range next {
			if next[i].ID != id {
				continue
			}
			applyGoalPatch(&next[i], patch)
			next[i].UpdatedAt = s.stamp()
		}
		st.Goals = next
	})
}

// MarkGoalCompleted flips the goal to completed and stamps CompletedAt.
// It does not check that CurrentAmount has reached TargetAmount; a goal
// can be closed at any progress level.
func (s *Store) MarkGoalCompleted(id string) {
	s.mutate(func(st *model.Snapshot) {
		next := append([]model.Goal(nil), st.Goals...)
		for i := range next {
			if next[i].ID != id {
				continue
			}
			now := s.stamp()
			completedAt := now
			next[i].Completed = true
			next[i].CompletedAt = &completedAt
			next[i].UpdatedAt = now
		}
		st.Goals = next
	})
}

// DeleteGoal removes the matching goal; no-op when absent.
func (s *Store) DeleteGoal(id string) {
	s.mutate(func(st *model.Snapshot) {
		next := make([]model.Goal, 0, len(st.Goals))
		for _, g := range st.Goals {
			if g.ID != id {
				next = append(next, g)
			}
		}
		st.Goals = next
	})
}

// Goals returns a copy of the goal collection.
func (s *Store) Goals() []model.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Goal(nil), s.state.Goals...)
}

func applyGoalPatch(g *model.Goal, patch GoalPatch) {
	if patch.Name != nil {
		g.Name = *patch.Name
	}
	if patch.TargetAmount != nil {
		g.TargetAmount = *patch.TargetAmount
	}
	if patch.CurrentAmount != nil {
		g.CurrentAmount = *patch.CurrentAmount
	}
	if patch.Deadline != nil {
		g.Deadline = *patch.Deadline
	}
	if patch.Completed != nil {
		g.Completed = *patch.Completed
	}
}
