package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mavit/mavit-cash/internal/model"
)

func fullSnapshot() model.Snapshot {
	createdAt := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	updatedAt := time.Date(2024, 4, 2, 18, 45, 12, 0, time.UTC)
	deadline := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	completedAt := time.Date(2024, 4, 10, 8, 0, 0, 0, time.UTC)

	food := model.Category{
		ID: "1", Name: "Alimentação", Color: "#ff6b6b", Icon: "Utensils", CreatedAt: createdAt,
	}

	return model.Snapshot{
		User: &model.User{
			ID: "u1", Name: "Ana", Salary: decimal.RequireFromString("5000.00"),
			CreatedAt: createdAt, UpdatedAt: updatedAt,
		},
		Expenses: []model.Expense{{
			ID: "e1", Description: "Mercado", Amount: decimal.RequireFromString("125.90"),
			CategoryID: food.ID, CategorySnapshot: food,
			Date: time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC),
			Type: model.ExpenseRecurring, RecurringDay: 5,
			CreatedAt: createdAt, UpdatedAt: updatedAt,
		}},
		Budgets: []model.Budget{{
			ID: "b1", CategoryID: food.ID, CategorySnapshot: food,
			Amount: decimal.RequireFromString("800"), Spent: decimal.RequireFromString("125.90"),
			Month: time.April, Year: 2024,
			CreatedAt: createdAt, UpdatedAt: updatedAt,
		}},
		Goals: []model.Goal{{
			ID: "g1", Name: "Reserva", TargetAmount: decimal.RequireFromString("10000"),
			CurrentAmount: decimal.RequireFromString("2500"),
			Deadline:      &deadline, Completed: true, CompletedAt: &completedAt,
			CreatedAt: createdAt, UpdatedAt: updatedAt,
		}},
		Debts: []model.Debt{{
			ID: "d1", Name: "Cartão", TotalAmount: decimal.RequireFromString("3000"),
			RemainingAmount: decimal.RequireFromString("1200"),
			InterestRate:    decimal.RequireFromString("12.5"),
			MinimumPayment:  decimal.RequireFromString("150"),
			Priority:        model.StrategyAvalanche,
			CreatedAt:       createdAt, UpdatedAt: updatedAt,
		}},
		Categories:       []model.Category{food},
		Settings:         model.AppSettings{Theme: model.ThemeDark, Currency: "BRL", Language: "pt-BR", AutoBackup: true, Notifications: true},
		SidebarCollapsed: true,
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	original := fullSnapshot()

	data, err := Serialize(original)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	restored := Deserialize(data)
	if restored == nil {
		t.Fatal("Deserialize returned nil for valid data")
	}

	if restored.User == nil || restored.User.Name != "Ana" {
		t.Fatalf("user not restored: %+v", restored.User)
	}
	if !restored.User.CreatedAt.Equal(original.User.CreatedAt) {
		t.Errorf("user createdAt drifted: %v != %v", restored.User.CreatedAt, original.User.CreatedAt)
	}
	if !restored.User.Salary.Equal(original.User.Salary) {
		t.Errorf("salary drifted: %s != %s", restored.User.Salary, original.User.Salary)
	}

	e, want := restored.Expenses[0], original.Expenses[0]
	if !e.Date.Equal(want.Date) || !e.CreatedAt.Equal(want.CreatedAt) || !e.UpdatedAt.Equal(want.UpdatedAt) {
		t.Errorf("expense dates drifted: %+v", e)
	}
	if e.Type != model.ExpenseRecurring || e.RecurringDay != 5 {
		t.Errorf("expense recurrence not restored: %+v", e)
	}
	if !e.CategorySnapshot.CreatedAt.Equal(want.CategorySnapshot.CreatedAt) {
		t.Errorf("embedded category snapshot date drifted: %+v", e.CategorySnapshot)
	}

	b, wantB := restored.Budgets[0], original.Budgets[0]
	if b.Month != wantB.Month || b.Year != wantB.Year || !b.Spent.Equal(wantB.Spent) {
		t.Errorf("budget not restored: %+v", b)
	}

	g, wantG := restored.Goals[0], original.Goals[0]
	if g.Deadline == nil || !g.Deadline.Equal(*wantG.Deadline) {
		t.Errorf("goal deadline drifted: %v", g.Deadline)
	}
	if g.CompletedAt == nil || !g.CompletedAt.Equal(*wantG.CompletedAt) {
		t.Errorf("goal completedAt drifted: %v", g.CompletedAt)
	}

	d, wantD := restored.Debts[0], original.Debts[0]
	if d.Priority != wantD.Priority || !d.InterestRate.Equal(wantD.InterestRate) {
		t.Errorf("debt not restored: %+v", d)
	}

	if restored.Settings != original.Settings {
		t.Errorf("settings drifted: %+v != %+v", restored.Settings, original.Settings)
	}
	if !restored.SidebarCollapsed {
		t.Error("sidebar flag lost")
	}
}

func TestCodec_RoundTripEmptyState(t *testing.T) {
	original := model.Snapshot{
		Settings: model.AppSettings{Theme: model.ThemeDark, Currency: "BRL"},
	}

	data, err := Serialize(original)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	restored := Deserialize(data)
	if restored == nil {
		t.Fatal("Deserialize returned nil")
	}
	if restored.User != nil {
		t.Errorf("expected nil user, got %+v", restored.User)
	}
	if len(restored.Expenses) != 0 {
		t.Errorf("expected no expenses, got %d", len(restored.Expenses))
	}
}

func TestCodec_DatesAreISO8601OnDisk(t *testing.T) {
	data, err := Serialize(fullSnapshot())
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	text := string(data)

	if !strings.Contains(text, `"date": "2024-04-03T00:00:00Z"`) {
		t.Errorf("expense date not flattened to ISO-8601:\n%s", text)
	}
	if !strings.Contains(text, `"deadline": "2025-12-31T00:00:00Z"`) {
		t.Errorf("goal deadline not flattened to ISO-8601:\n%s", text)
	}
	if !strings.Contains(text, `"version": 1`) {
		t.Error("envelope version missing")
	}
}

func TestCodec_AbsentSectionsStayNil(t *testing.T) {
	// A hand-trimmed backup may carry only some sections. Absent keys
	// must decode to nil so an import leaves those sections untouched,
	// while a present-but-empty key still replaces its collection.
	partial := `{
		"version": 1,
		"state": {
			"expenses": [{
				"id": "e1", "description": "Mercado", "amount": "10",
				"categoryId": "1", "type": "one-time",
				"date": "2024-04-03T00:00:00Z",
				"createdAt": "2024-03-01T00:00:00Z",
				"updatedAt": "2024-03-01T00:00:00Z",
				"category": {"id": "1", "name": "Alimentação", "createdAt": "2024-03-01T00:00:00Z"}
			}],
			"goals": []
		}
	}`

	snap := Deserialize([]byte(partial))
	if snap == nil {
		t.Fatal("Deserialize returned nil for a partial document")
	}

	if len(snap.Expenses) != 1 {
		t.Fatalf("expected 1 expense, got %d", len(snap.Expenses))
	}
	if snap.Goals == nil || len(snap.Goals) != 0 {
		t.Errorf("present-but-empty goals should decode to an empty slice, got %#v", snap.Goals)
	}
	if snap.Budgets != nil {
		t.Errorf("absent budgets key should stay nil, got %#v", snap.Budgets)
	}
	if snap.Debts != nil {
		t.Errorf("absent debts key should stay nil, got %#v", snap.Debts)
	}
	if snap.Categories != nil {
		t.Errorf("absent categories key should stay nil, got %#v", snap.Categories)
	}
	if snap.User != nil {
		t.Errorf("absent user should stay nil, got %+v", snap.User)
	}
}

func TestCodec_DeserializeMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "definitely { not json"},
		{"empty", ""},
		{"wrong version", `{"version": 99, "state": {}}`},
		{"bad timestamp", `{"version": 1, "state": {"user": {"id": "u1", "createdAt": "yesterday", "updatedAt": "today"}}}`},
		{"bad expense date", `{"version": 1, "state": {"expenses": [{"id": "e1", "date": "not-a-date", "createdAt": "2024-01-01T00:00:00Z", "updatedAt": "2024-01-01T00:00:00Z", "category": {"createdAt": "2024-01-01T00:00:00Z"}}]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if snap := Deserialize([]byte(tt.data)); snap != nil {
				t.Errorf("expected nil for malformed input, got %+v", snap)
			}
		})
	}
}
