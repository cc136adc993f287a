package model

// Snapshot is the full state tree owned by the store and written to
// disk as a single flat object. Readers always receive a copy; no
// entity is ever mutated in place.
type Snapshot struct {
	User             *User
	Settings         AppSettings
	Expenses         []Expense
	Budgets          []Budget
	Goals            []Goal
	Debts            []Debt
	Categories       []Category
	SidebarCollapsed bool
}

// Clone returns a deep copy of the snapshot. Entity structs contain no
// shared references apart from the optional User and goal date
// pointers, which are duplicated here.
func (s *Snapshot) Clone() Snapshot {
	out := Snapshot{
		Settings:         s.Settings,
		Expenses:         append([]Expense(nil), s.Expenses...),
		Budgets:          append([]Budget(nil), s.Budgets...),
		Debts:            append([]Debt(nil), s.Debts...),
		Categories:       append([]Category(nil), s.Categories...),
		SidebarCollapsed: s.SidebarCollapsed,
	}
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	out.Goals = make([]Goal, len(s.Goals))
	for i, g := range s.Goals {
		out.Goals[i] = g.clone()
	}
	return out
}

func (g Goal) clone() Goal {
	if g.Deadline != nil {
		d := *g.Deadline
		g.Deadline = &d
	}
	if g.CompletedAt != nil {
		c := *g.CompletedAt
		g.CompletedAt = &c
	}
	return g
}
