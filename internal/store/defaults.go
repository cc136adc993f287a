package store

import (
	"time"

	"github.com/mavit/mavit-cash/internal/model"
)

// seedCategories is the fixed category set installed on first run and
// after a reset. Ids are stable so budgets created against the defaults
// survive a reset.
var seedCategories = []struct {
	id, name, color, icon string
}{
	{"1", "Alimentação", "#ff6b6b", "Utensils"},
	{"2", "Transporte", "#4ecdc4", "Car"},
	{"3", "Moradia", "#45b7d1", "Home"},
	{"4", "Saúde", "#96ceb4", "Heart"},
	{"5", "Educação", "#feca57", "BookOpen"},
	{"6", "Entretenimento", "#ff9ff3", "Music"},
	{"7", "Roupas", "#54a0ff", "Shirt"},
	{"8", "Outros", "#a0a0a0", "Package"},
}

// DefaultCategories returns the seed category set, stamped with the
// given creation time.
func DefaultCategories(now time.Time) []model.Category {
	categories := make([]model.Category, len(seedCategories))
	for i, seed := range seedCategories {
		categories[i] = model.Category{
			ID:        seed.id,
			Name:      seed.name,
			Color:     seed.color,
			Icon:      seed.icon,
			CreatedAt: now,
		}
	}
	return categories
}

// DefaultSettings returns the factory settings.
func DefaultSettings() model.AppSettings {
	return model.AppSettings{
		Theme:         model.ThemeDark,
		Currency:      "BRL",
		Language:      "pt-BR",
		AutoBackup:    true,
		Notifications: true,
	}
}

func defaultSnapshot(now time.Time) model.Snapshot {
	return model.Snapshot{
		User:       nil,
		Expenses:   []model.Expense{},
		Budgets:    []model.Budget{},
		Goals:      []model.Goal{},
		Debts:      []model.Debt{},
		Categories: DefaultCategories(now),
		Settings:   DefaultSettings(),
	}
}
