package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mavit/mavit-cash/internal/model"
)

// Run opens the dashboard in the alternate screen and blocks until the
// user quits.
func Run(snapshot model.Snapshot, now time.Time, sidebar SidebarPersister) error {
	p := tea.NewProgram(NewModel(snapshot, now, sidebar), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}
