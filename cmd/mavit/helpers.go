package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mavit/mavit-cash/internal/common"
	"github.com/mavit/mavit-cash/internal/config"
	"github.com/mavit/mavit-cash/internal/model"
	"github.com/mavit/mavit-cash/internal/storage"
	"github.com/mavit/mavit-cash/internal/store"
	"github.com/mavit/mavit-cash/internal/tui"
)

const dateLayout = "2006-01-02"

// openStore wires the file-backed persister to a freshly initialized
// store. Every command goes through here.
func openStore() (*store.Store, error) {
	cfg := config.FromViper()

	fileStore, err := storage.NewFileStore(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open state file: %w", err)
	}

	s := store.New(fileStore)
	s.Init()
	return s, nil
}

// parseMoney parses a positive or zero decimal amount from a CLI
// argument.
func parseMoney(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, common.NewUserError(
			fmt.Sprintf("invalid amount %q, amounts are plain decimals like 42.50", raw), err)
	}
	return amount, nil
}

func parseDate(raw string) (time.Time, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, common.NewUserError(
			fmt.Sprintf("invalid date %q, dates use the YYYY-MM-DD format", raw), err)
	}
	return t, nil
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// formatMoney renders an amount using the store's configured currency.
func formatMoney(amount decimal.Decimal, settings model.AppSettings) string {
	return tui.FormatMoney(amount, settings.Currency)
}

// resolveCategory looks a category up by name, listing the available
// names when it is missing.
func resolveCategory(s *store.Store, name string) (model.Category, error) {
	if cat, ok := s.CategoryByName(name); ok {
		return cat, nil
	}

	names := make([]string, 0)
	for _, c := range s.Categories() {
		names = append(names, c.Name)
	}
	sort.Strings(names)
	return model.Category{}, common.NewUserError(
		fmt.Sprintf("unknown category %q, available: %s", name, strings.Join(names, ", ")), nil)
}

// resolveID matches a full id or a unique prefix against a collection's
// ids. List views abbreviate ids, so commands accept the abbreviation
// back; the store itself no-ops on unknown ids, so a miss must be
// reported here. An exact match wins over prefix matches.
func resolveID(arg string, ids []string, noun string) (string, error) {
	var matches []string
	for _, id := range ids {
		if id == arg {
			return id, nil
		}
		if strings.HasPrefix(id, arg) {
			matches = append(matches, id)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", common.NewUserError(fmt.Sprintf("no %s matches id %q", noun, arg), nil)
	default:
		return "", common.NewUserError(
			fmt.Sprintf("id %q is ambiguous, %d %ss share that prefix", arg, len(matches), noun), nil)
	}
}

func resolveExpenseID(s *store.Store, arg string) (string, error) {
	expenses := s.Expenses()
	ids := make([]string, len(expenses))
	for i, e := range expenses {
		ids[i] = e.ID
	}
	return resolveID(arg, ids, "expense")
}

func resolveBudgetID(s *store.Store, arg string) (string, error) {
	budgets := s.Budgets()
	ids := make([]string, len(budgets))
	for i, b := range budgets {
		ids[i] = b.ID
	}
	return resolveID(arg, ids, "budget")
}

func resolveGoalID(s *store.Store, arg string) (string, error) {
	goals := s.Goals()
	ids := make([]string, len(goals))
	for i, g := range goals {
		ids[i] = g.ID
	}
	return resolveID(arg, ids, "goal")
}

func resolveDebtID(s *store.Store, arg string) (string, error) {
	debts := s.Debts()
	ids := make([]string, len(debts))
	for i, d := range debts {
		ids[i] = d.ID
	}
	return resolveID(arg, ids, "debt")
}

func resolveCategoryID(s *store.Store, arg string) (string, error) {
	categories := s.Categories()
	ids := make([]string, len(categories))
	for i, c := range categories {
		ids[i] = c.ID
	}
	return resolveID(arg, ids, "category")
}

// monthYearFlags registers the shared --month/--year pair, defaulting
// to the current calendar month.
func monthYearFlags(cmd *cobra.Command, month *int, year *int) {
	now := time.Now()
	cmd.Flags().IntVar(month, "month", int(now.Month()), "calendar month (1-12)")
	cmd.Flags().IntVar(year, "year", now.Year(), "calendar year")
}

func validateMonth(month int) (time.Month, error) {
	if month < 1 || month > 12 {
		return 0, common.NewUserError(
			fmt.Sprintf("invalid month %d, months run from 1 (January) to 12 (December)", month), nil)
	}
	return time.Month(month), nil
}

// confirm prompts for a y/N answer on stdout, returning true only on an
// explicit yes.
func confirm(prompt string) bool {
	fmt.Fprintf(os.Stdout, "%s [y/N]: ", prompt)
	var response string
	if _, err := fmt.Scanln(&response); err != nil {
		return false
	}
	return response == "y" || response == "Y"
}
