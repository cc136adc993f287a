package model

// Theme selects the presentation color scheme.
type Theme string

const (
	// ThemeDark is the default dark scheme.
	ThemeDark Theme = "dark"
	// ThemeLight is the light scheme.
	ThemeLight Theme = "light"
)

// AppSettings holds process-wide preferences, persisted alongside the
// financial data.
//
// DebtStrategy, when set, is the single global payoff strategy for the
// debt list. When empty, ordering falls back to the first debt's
// per-record Priority field, which is how the data was historically
// shaped.
type AppSettings struct {
	Theme            Theme
	Currency         string // ISO 4217 code
	Language         string // BCP 47 tag
	BackupPath       string
	DebtStrategy     DebtStrategy
	AutoBackup       bool
	Notifications    bool
	SidebarCollapsed bool
}
