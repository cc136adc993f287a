// Package storage persists the application state as a single versioned
// JSON snapshot on disk.
package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mavit/mavit-cash/internal/common"
	"github.com/mavit/mavit-cash/internal/model"
)

// Version identifies the persisted envelope layout. Snapshots written
// with a different version are discarded on load; there is no migration
// path between versions yet.
const Version = 1

// envelope is the on-disk layout: a version number wrapping the full
// state snapshot. All date fields inside are RFC 3339 strings.
type envelope struct {
	State   stateDTO `json:"state"`
	Version int      `json:"version"`
}

type stateDTO struct {
	User             *userDTO      `json:"user"`
	Settings         settingsDTO   `json:"settings"`
	Expenses         []expenseDTO  `json:"expenses"`
	Budgets          []budgetDTO   `json:"budgets"`
	Goals            []goalDTO     `json:"goals"`
	Debts            []debtDTO     `json:"debts"`
	Categories       []categoryDTO `json:"categories"`
	SidebarCollapsed bool          `json:"sidebarCollapsed"`
}

// The DTOs below declare, per entity, exactly which fields carry
// calendar timestamps. Restoring dates from an explicit schema instead
// of matching field names means a future field that happens to be
// called "date" in some nested object can never be coerced by accident.

type userDTO struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Salary    decimal.Decimal `json:"salary"`
	CreatedAt string          `json:"createdAt"`
	UpdatedAt string          `json:"updatedAt"`
}

type categoryDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Icon      string `json:"icon"`
	CreatedAt string `json:"createdAt"`
}

type expenseDTO struct {
	ID               string          `json:"id"`
	Description      string          `json:"description"`
	Amount           decimal.Decimal `json:"amount"`
	CategoryID       string          `json:"categoryId"`
	CategorySnapshot categoryDTO     `json:"category"`
	Date             string          `json:"date"`
	Type             string          `json:"type"`
	RecurringDay     int             `json:"recurringDay,omitempty"`
	RecurringMonth   int             `json:"recurringMonth,omitempty"`
	CreatedAt        string          `json:"createdAt"`
	UpdatedAt        string          `json:"updatedAt"`
}

type budgetDTO struct {
	ID               string          `json:"id"`
	CategoryID       string          `json:"categoryId"`
	CategorySnapshot categoryDTO     `json:"category"`
	Amount           decimal.Decimal `json:"amount"`
	Spent            decimal.Decimal `json:"spent"`
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	CreatedAt        string          `json:"createdAt"`
	UpdatedAt        string          `json:"updatedAt"`
}

type goalDTO struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      *string         `json:"deadline,omitempty"`
	Completed     bool            `json:"completed"`
	CompletedAt   *string         `json:"completedAt,omitempty"`
	CreatedAt     string          `json:"createdAt"`
	UpdatedAt     string          `json:"updatedAt"`
}

type debtDTO struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	RemainingAmount decimal.Decimal `json:"remainingAmount"`
	InterestRate    decimal.Decimal `json:"interestRate"`
	MinimumPayment  decimal.Decimal `json:"minimumPayment"`
	Priority        string          `json:"priority"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
}

type settingsDTO struct {
	Theme            string `json:"theme"`
	Currency         string `json:"currency"`
	Language         string `json:"language"`
	BackupPath       string `json:"backupPath,omitempty"`
	DebtStrategy     string `json:"debtStrategy,omitempty"`
	AutoBackup       bool   `json:"autoBackup"`
	Notifications    bool   `json:"notifications"`
	SidebarCollapsed bool   `json:"sidebarCollapsed"`
}

// Serialize encodes a snapshot into the versioned envelope. It is total
// over valid snapshots; no entity field can make encoding fail.
func Serialize(snap model.Snapshot) ([]byte, error) {
	env := envelope{Version: Version, State: encodeState(snap)}
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode state: %w", err)
	}
	return data, nil
}

// Deserialize decodes a persisted envelope. Malformed input, an unknown
// version, or an unparseable timestamp all log a warning and return nil:
// corrupt storage is treated as the absence of prior state, never as a
// fatal error.
func Deserialize(data []byte) *model.Snapshot {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		slog.Warn("discarding malformed persisted state", "error", err)
		return nil
	}
	if env.Version != Version {
		slog.Warn("discarding persisted state",
			"error", fmt.Errorf("%w: %d", common.ErrUnknownVersion, env.Version))
		return nil
	}

	snap, err := decodeState(env.State)
	if err != nil {
		slog.Warn("discarding unreadable persisted state", "error", err)
		return nil
	}
	return snap
}

func encodeState(snap model.Snapshot) stateDTO {
	dto := stateDTO{
		Settings:         encodeSettings(snap.Settings),
		Expenses:         make([]expenseDTO, len(snap.Expenses)),
		Budgets:          make([]budgetDTO, len(snap.Budgets)),
		Goals:            make([]goalDTO, len(snap.Goals)),
		Debts:            make([]debtDTO, len(snap.Debts)),
		Categories:       make([]categoryDTO, len(snap.Categories)),
		SidebarCollapsed: snap.SidebarCollapsed,
	}
	if snap.User != nil {
		u := encodeUser(*snap.User)
		dto.User = &u
	}
	for i, e := range snap.Expenses {
		dto.Expenses[i] = encodeExpense(e)
	}
	for i, b := range snap.Budgets {
		dto.Budgets[i] = encodeBudget(b)
	}
	for i, g := range snap.Goals {
		dto.Goals[i] = encodeGoal(g)
	}
	for i, d := range snap.Debts {
		dto.Debts[i] = encodeDebt(d)
	}
	for i, c := range snap.Categories {
		dto.Categories[i] = encodeCategory(c)
	}
	return dto
}

// decodeState rebuilds the snapshot. Collections absent from the JSON
// stay nil rather than becoming empty slices: a partial document (a
// hand-trimmed backup) must shallow-merge without wiping the sections
// it never mentions.
func decodeState(dto stateDTO) (*model.Snapshot, error) {
	snap := &model.Snapshot{
		Settings:         decodeSettings(dto.Settings),
		SidebarCollapsed: dto.SidebarCollapsed,
	}
	if dto.Expenses != nil {
		snap.Expenses = make([]model.Expense, len(dto.Expenses))
	}
	if dto.Budgets != nil {
		snap.Budgets = make([]model.Budget, len(dto.Budgets))
	}
	if dto.Goals != nil {
		snap.Goals = make([]model.Goal, len(dto.Goals))
	}
	if dto.Debts != nil {
		snap.Debts = make([]model.Debt, len(dto.Debts))
	}
	if dto.Categories != nil {
		snap.Categories = make([]model.Category, len(dto.Categories))
	}

	if dto.User != nil {
		u, err := decodeUser(*dto.User)
		if err != nil {
			return nil, fmt.Errorf("user: %w", err)
		}
		snap.User = &u
	}
	for i, e := range dto.Expenses {
		decoded, err := decodeExpense(e)
		if err != nil {
			return nil, fmt.Errorf("expense %q: %w", e.ID, err)
		}
		snap.Expenses[i] = decoded
	}
	for i, b := range dto.Budgets {
		decoded, err := decodeBudget(b)
		if err != nil {
			return nil, fmt.Errorf("budget %q: %w", b.ID, err)
		}
		snap.Budgets[i] = decoded
	}
	for i, g := range dto.Goals {
		decoded, err := decodeGoal(g)
		if err != nil {
			return nil, fmt.Errorf("goal %q: %w", g.ID, err)
		}
		snap.Goals[i] = decoded
	}
	for i, d := range dto.Debts {
		decoded, err := decodeDebt(d)
		if err != nil {
			return nil, fmt.Errorf("debt %q: %w", d.ID, err)
		}
		snap.Debts[i] = decoded
	}
	for i, c := range dto.Categories {
		decoded, err := decodeCategory(c)
		if err != nil {
			return nil, fmt.Errorf("category %q: %w", c.ID, err)
		}
		snap.Categories[i] = decoded
	}
	return snap, nil
}

func encodeUser(u model.User) userDTO {
	return userDTO{
		ID:        u.ID,
		Name:      u.Name,
		Salary:    u.Salary,
		CreatedAt: encodeTime(u.CreatedAt),
		UpdatedAt: encodeTime(u.UpdatedAt),
	}
}

func decodeUser(dto userDTO) (model.User, error) {
	createdAt, err := decodeTime("createdAt", dto.CreatedAt)
	if err != nil {
		return model.User{}, err
	}
	updatedAt, err := decodeTime("updatedAt", dto.UpdatedAt)
	if err != nil {
		return model.User{}, err
	}
	return model.User{
		ID:        dto.ID,
		Name:      dto.Name,
		Salary:    dto.Salary,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

func encodeCategory(c model.Category) categoryDTO {
	return categoryDTO{
		ID:        c.ID,
		Name:      c.Name,
		Color:     c.Color,
		Icon:      c.Icon,
		CreatedAt: encodeTime(c.CreatedAt),
	}
}

func decodeCategory(dto categoryDTO) (model.Category, error) {
	createdAt, err := decodeTime("createdAt", dto.CreatedAt)
	if err != nil {
		return model.Category{}, err
	}
	return model.Category{
		ID:        dto.ID,
		Name:      dto.Name,
		Color:     dto.Color,
		Icon:      dto.Icon,
		CreatedAt: createdAt,
	}, nil
}

func encodeExpense(e model.Expense) expenseDTO {
	return expenseDTO{
		ID:               e.ID,
		Description:      e.Description,
		Amount:           e.Amount,
		CategoryID:       e.CategoryID,
		CategorySnapshot: encodeCategory(e.CategorySnapshot),
		Date:             encodeTime(e.Date),
		Type:             string(e.Type),
		RecurringDay:     e.RecurringDay,
		RecurringMonth:   int(e.RecurringMonth),
		CreatedAt:        encodeTime(e.CreatedAt),
		UpdatedAt:        encodeTime(e.UpdatedAt),
	}
}

func decodeExpense(dto expenseDTO) (model.Expense, error) {
	date, err := decodeTime("date", dto.Date)
	if err != nil {
		return model.Expense{}, err
	}
	createdAt, err := decodeTime("createdAt", dto.CreatedAt)
	if err != nil {
		return model.Expense{}, err
	}
	updatedAt, err := decodeTime("updatedAt", dto.UpdatedAt)
	if err != nil {
		return model.Expense{}, err
	}
	snapshot, err := decodeCategory(dto.CategorySnapshot)
	if err != nil {
		return model.Expense{}, fmt.Errorf("category snapshot: %w", err)
	}
	return model.Expense{
		ID:               dto.ID,
		Description:      dto.Description,
		Amount:           dto.Amount,
		CategoryID:       dto.CategoryID,
		CategorySnapshot: snapshot,
		Date:             date,
		Type:             model.ExpenseType(dto.Type),
		RecurringDay:     dto.RecurringDay,
		RecurringMonth:   time.Month(dto.RecurringMonth),
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}, nil
}

func encodeBudget(b model.Budget) budgetDTO {
	return budgetDTO{
		ID:               b.ID,
		CategoryID:       b.CategoryID,
		CategorySnapshot: encodeCategory(b.CategorySnapshot),
		Amount:           b.Amount,
		Spent:            b.Spent,
		Month:            int(b.Month),
		Year:             b.Year,
		CreatedAt:        encodeTime(b.CreatedAt),
		UpdatedAt:        encodeTime(b.UpdatedAt),
	}
}

func decodeBudget(dto budgetDTO) (model.Budget, error) {
	createdAt, err := decodeTime("createdAt", dto.CreatedAt)
	if err != nil {
		return model.Budget{}, err
	}
	updatedAt, err := decodeTime("updatedAt", dto.UpdatedAt)
	if err != nil {
		return model.Budget{}, err
	}
	snapshot, err := decodeCategory(dto.CategorySnapshot)
	if err != nil {
		return model.Budget{}, fmt.Errorf("category snapshot: %w", err)
	}
	return model.Budget{
		ID:               dto.ID,
		CategoryID:       dto.CategoryID,
		CategorySnapshot: snapshot,
		Amount:           dto.Amount,
		Spent:            dto.Spent,
		Month:            time.Month(dto.Month),
		Year:             dto.Year,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}, nil
}

func encodeGoal(g model.Goal) goalDTO {
	return goalDTO{
		ID:            g.ID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Deadline:      encodeTimePtr(g.Deadline),
		Completed:     g.Completed,
		CompletedAt:   encodeTimePtr(g.CompletedAt),
		CreatedAt:     encodeTime(g.CreatedAt),
		UpdatedAt:     encodeTime(g.UpdatedAt),
	}
}

func decodeGoal(dto goalDTO) (model.Goal, error) {
	createdAt, err := decodeTime("createdAt", dto.CreatedAt)
	if err != nil {
		return model.Goal{}, err
	}
	updatedAt, err := decodeTime("updatedAt", dto.UpdatedAt)
	if err != nil {
		return model.Goal{}, err
	}
	deadline, err := decodeTimePtr("deadline", dto.Deadline)
	if err != nil {
		return model.Goal{}, err
	}
	completedAt, err := decodeTimePtr("completedAt", dto.CompletedAt)
	if err != nil {
		return model.Goal{}, err
	}
	return model.Goal{
		ID:            dto.ID,
		Name:          dto.Name,
		TargetAmount:  dto.TargetAmount,
		CurrentAmount: dto.CurrentAmount,
		Deadline:      deadline,
		Completed:     dto.Completed,
		CompletedAt:   completedAt,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}, nil
}

func encodeDebt(d model.Debt) debtDTO {
	return debtDTO{
		ID:              d.ID,
		Name:            d.Name,
		TotalAmount:     d.TotalAmount,
		RemainingAmount: d.RemainingAmount,
		InterestRate:    d.InterestRate,
		MinimumPayment:  d.MinimumPayment,
		Priority:        string(d.Priority),
		CreatedAt:       encodeTime(d.CreatedAt),
		UpdatedAt:       encodeTime(d.UpdatedAt),
	}
}

func decodeDebt(dto debtDTO) (model.Debt, error) {
	createdAt, err := decodeTime("createdAt", dto.CreatedAt)
	if err != nil {
		return model.Debt{}, err
	}
	updatedAt, err := decodeTime("updatedAt", dto.UpdatedAt)
	if err != nil {
		return model.Debt{}, err
	}
	return model.Debt{
		ID:              dto.ID,
		Name:            dto.Name,
		TotalAmount:     dto.TotalAmount,
		RemainingAmount: dto.RemainingAmount,
		InterestRate:    dto.InterestRate,
		MinimumPayment:  dto.MinimumPayment,
		Priority:        model.DebtStrategy(dto.Priority),
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}, nil
}

func encodeSettings(s model.AppSettings) settingsDTO {
	return settingsDTO{
		Theme:            string(s.Theme),
		Currency:         s.Currency,
		Language:         s.Language,
		BackupPath:       s.BackupPath,
		DebtStrategy:     string(s.DebtStrategy),
		AutoBackup:       s.AutoBackup,
		Notifications:    s.Notifications,
		SidebarCollapsed: s.SidebarCollapsed,
	}
}

func decodeSettings(dto settingsDTO) model.AppSettings {
	return model.AppSettings{
		Theme:            model.Theme(dto.Theme),
		Currency:         dto.Currency,
		Language:         dto.Language,
		BackupPath:       dto.BackupPath,
		DebtStrategy:     model.DebtStrategy(dto.DebtStrategy),
		AutoBackup:       dto.AutoBackup,
		Notifications:    dto.Notifications,
		SidebarCollapsed: dto.SidebarCollapsed,
	}
}

func encodeTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func encodeTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := encodeTime(*t)
	return &s
}

func decodeTime(field, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s timestamp %q: %w", field, value, err)
	}
	return t, nil
}

func decodeTimePtr(field string, value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := decodeTime(field, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
