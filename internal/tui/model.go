// Package tui renders the read-only dashboard. Mutations stay in the
// CLI commands; the dashboard only derives views from a snapshot.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mavit/mavit-cash/internal/model"
)

// Tab identifies a dashboard view.
type Tab int

const (
	TabOverview Tab = iota
	TabBudgets
	TabDebts
	TabGoals
	tabCount
)

func (t Tab) String() string {
	switch t {
	case TabOverview:
		return "Visão Geral"
	case TabBudgets:
		return "Orçamentos"
	case TabDebts:
		return "Dívidas"
	case TabGoals:
		return "Metas"
	default:
		return "?"
	}
}

// SidebarPersister stores the collapsed state of the summary sidebar so
// it survives the session. The financial store implements it.
type SidebarPersister interface {
	SetSidebarCollapsed(collapsed bool)
}

// Model holds the dashboard state.
type Model struct {
	sidebar   SidebarPersister
	help      help.Model
	snapshot  model.Snapshot
	keymap    KeyMap
	month     time.Month
	year      int
	tab       Tab
	width     int
	height    int
	collapsed bool
	showHelp  bool
}

// NewModel builds the dashboard over a snapshot, opening on the current
// calendar month. sidebar may be nil when persistence is not wanted.
func NewModel(snapshot model.Snapshot, now time.Time, sidebar SidebarPersister) Model {
	return Model{
		snapshot:  snapshot,
		sidebar:   sidebar,
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		month:     now.Month(),
		year:      now.Year(),
		collapsed: snapshot.SidebarCollapsed,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.NextTab):
			m.tab = (m.tab + 1) % tabCount
		case key.Matches(msg, m.keymap.PrevTab):
			m.tab = (m.tab + tabCount - 1) % tabCount
		case key.Matches(msg, m.keymap.PrevMonth):
			m.month, m.year = shiftMonth(m.month, m.year, -1)
		case key.Matches(msg, m.keymap.NextMonth):
			m.month, m.year = shiftMonth(m.month, m.year, 1)
		case key.Matches(msg, m.keymap.ToggleSidebar):
			m.collapsed = !m.collapsed
			if m.sidebar != nil {
				m.sidebar.SetSidebarCollapsed(m.collapsed)
			}
		case key.Matches(msg, m.keymap.ToggleHelp):
			m.showHelp = !m.showHelp
		}
	}
	return m, nil
}

func shiftMonth(month time.Month, year, delta int) (time.Month, int) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, delta, 0)
	return t.Month(), t.Year()
}
