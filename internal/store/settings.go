package store

import (
	"github.com/mavit/mavit-cash/internal/model"
)

// SettingsPatch is a partial settings update; nil fields are left
// untouched.
type SettingsPatch struct {
	Theme         *model.Theme
	Currency      *string
	Language      *string
	BackupPath    *string
	DebtStrategy  *model.DebtStrategy
	AutoBackup    *bool
	Notifications *bool
}

// UpdateSettings shallow-merges the patch into the settings singleton.
func (s *Store) UpdateSettings(patch SettingsPatch) {
	s.mutate(func(st *model.Snapshot) {
		if patch.Theme != nil {
			st.Settings.Theme = *patch.Theme
		}
		if patch.Currency != nil {
			st.Settings.Currency = *patch.Currency
		}
		if patch.Language != nil {
			st.Settings.Language = *patch.Language
		}
		if patch.BackupPath != nil {
			st.Settings.BackupPath = *patch.BackupPath
		}
		if patch.DebtStrategy != nil {
			st.Settings.DebtStrategy = *patch.DebtStrategy
		}
		if patch.AutoBackup != nil {
			st.Settings.AutoBackup = *patch.AutoBackup
		}
		if patch.Notifications != nil {
			st.Settings.Notifications = *patch.Notifications
		}
	})
}

// Settings returns the current settings.
func (s *Store) Settings() model.AppSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Settings
}

// ToggleSidebar flips the collapsed state of the summary sidebar.
func (s *Store) ToggleSidebar() {
	s.mutate(func(st *model.Snapshot) {
		st.SidebarCollapsed = !st.SidebarCollapsed
	})
}

// SetSidebarCollapsed sets the sidebar state explicitly.
func (s *Store) SetSidebarCollapsed(collapsed bool) {
	s.mutate(func(st *model.Snapshot) {
		st.SidebarCollapsed = collapsed
	})
}
