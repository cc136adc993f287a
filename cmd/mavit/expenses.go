package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/mavit/mavit-cash/internal/cli"
	"github.com/mavit/mavit-cash/internal/common"
	"github.com/mavit/mavit-cash/internal/model"
	"github.com/mavit/mavit-cash/internal/report"
	"github.com/mavit/mavit-cash/internal/store"
)

func expensesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Record and manage expenses",
		Long:  `List, add, update, delete, export and import expenses.`,
	}

	cmd.AddCommand(listExpensesCmd())
	cmd.AddCommand(addExpenseCmd())
	cmd.AddCommand(updateExpenseCmd())
	cmd.AddCommand(deleteExpenseCmd())
	cmd.AddCommand(exportExpensesCmd())
	cmd.AddCommand(importExpensesCmd())

	return cmd
}

func listExpensesCmd() *cobra.Command {
	var (
		month int
		year  int
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses",
		Long:  `Display expenses for one calendar month, or everything with --all.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			m, err := validateMonth(month)
			if err != nil {
				return err
			}

			expenses := s.Expenses()
			if !all {
				expenses = report.MonthlyExpenses(expenses, m, year)
			}

			if len(expenses) == 0 {
				fmt.Println(cli.InfoStyle.Render("No expenses found. Use 'mavit expenses add' to record one."))
				return nil
			}

			settings := s.Settings()
			categories := s.Categories()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Date"),
				cli.BoldStyle.Render("Description"),
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Type"),
				cli.BoldStyle.Render("Amount"))

			for _, e := range expenses {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					shortID(e.ID),
					formatDate(e.Date),
					e.Description,
					liveCategoryName(categories, e),
					e.Type,
					formatMoney(e.Amount, settings))
			}

			if !all {
				total := report.MonthlyTotal(expenses, m, year)
				fmt.Fprintf(w, "\t\t\t\t%s\t%s\n",
					cli.BoldStyle.Render("Total"),
					cli.BoldStyle.Render(formatMoney(total, settings)))
			}

			return nil
		},
	}

	monthYearFlags(cmd, &month, &year)
	cmd.Flags().BoolVar(&all, "all", false, "List every expense regardless of month")

	return cmd
}

func addExpenseCmd() *cobra.Command {
	var (
		categoryName   string
		date           string
		expenseType    string
		recurringDay   int
		recurringMonth int
	)

	cmd := &cobra.Command{
		Use:   "add <description> <amount>",
		Short: "Record a new expense",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			amount, err := parseMoney(args[1])
			if err != nil {
				return err
			}

			when := time.Now()
			if date != "" {
				when, err = parseDate(date)
				if err != nil {
					return err
				}
			}

			category, err := resolveCategory(s, categoryName)
			if err != nil {
				return err
			}

			expense := model.Expense{
				Description:      args[0],
				Amount:           amount,
				Date:             when,
				Type:             model.ExpenseType(expenseType),
				CategoryID:       category.ID,
				CategorySnapshot: category,
				RecurringDay:     recurringDay,
				RecurringMonth:   time.Month(recurringMonth),
			}
			if err := expense.Validate(); err != nil {
				return common.NewUserError("invalid expense", err)
			}

			stored := s.AddExpense(expense)
			settings := s.Settings()
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s: %s in %s",
				stored.Description, formatMoney(stored.Amount, settings), category.Name)))
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryName, "category", "Outros", "Category name")
	cmd.Flags().StringVar(&date, "date", "", "Expense date (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&expenseType, "type", string(model.ExpenseOneTime), "Expense type (one-time, recurring, annual)")
	cmd.Flags().IntVar(&recurringDay, "day", 0, "Day of month for recurring and annual expenses")
	cmd.Flags().IntVar(&recurringMonth, "recurring-month", 0, "Month for annual expenses (1-12)")

	return cmd
}

func updateExpenseCmd() *cobra.Command {
	var (
		description  string
		amount       string
		categoryName string
		date         string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an expense",
		Long:  `Change only the fields whose flags are set; everything else stays as recorded.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			var patch store.ExpensePatch
			if cmd.Flags().Changed("description") {
				patch.Description = &description
			}
			if cmd.Flags().Changed("amount") {
				parsed, err := parseMoney(amount)
				if err != nil {
					return err
				}
				patch.Amount = &parsed
			}
			if cmd.Flags().Changed("category") {
				category, err := resolveCategory(s, categoryName)
				if err != nil {
					return err
				}
				patch.CategoryID = &category.ID
				patch.CategorySnapshot = &category
			}
			if cmd.Flags().Changed("date") {
				parsed, err := parseDate(date)
				if err != nil {
					return err
				}
				patch.Date = &parsed
			}

			id, err := resolveExpenseID(s, args[0])
			if err != nil {
				return err
			}

			s.UpdateExpense(id, patch)
			fmt.Println(cli.FormatSuccess("Expense updated"))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&amount, "amount", "", "New amount")
	cmd.Flags().StringVar(&categoryName, "category", "", "New category name")
	cmd.Flags().StringVar(&date, "date", "", "New date (YYYY-MM-DD)")

	return cmd
}

func deleteExpenseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			id, err := resolveExpenseID(s, args[0])
			if err != nil {
				return err
			}
			s.DeleteExpense(id)
			fmt.Println(cli.FormatSuccess("Expense deleted"))
			return nil
		},
	}
}

// expenseRow is the CSV exchange shape for expenses.
type expenseRow struct {
	ID          string `csv:"id"`
	Date        string `csv:"date"`
	Description string `csv:"description"`
	Category    string `csv:"category"`
	Type        string `csv:"type"`
	Amount      string `csv:"amount"`
}

func exportExpensesCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export expenses to CSV",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			expenses := s.Expenses()
			categories := s.Categories()
			rows := make([]expenseRow, 0, len(expenses))
			for _, e := range expenses {
				rows = append(rows, expenseRow{
					ID:          e.ID,
					Date:        formatDate(e.Date),
					Description: e.Description,
					Category:    liveCategoryName(categories, e),
					Type:        string(e.Type),
					Amount:      e.Amount.StringFixed(2),
				})
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			defer f.Close()

			if err := gocsv.MarshalFile(&rows, f); err != nil {
				return fmt.Errorf("failed to write CSV: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d expenses to %s", len(rows), output)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "expenses.csv", "Output file")

	return cmd
}

func importExpensesCmd() *cobra.Command {
	var defaultCategory string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import expenses from CSV",
		Long: `Import expenses from a CSV file with the columns date, description,
category, type and amount. Rows whose category does not match an
existing one fall back to the default category.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()

			var rows []expenseRow
			if err := gocsv.UnmarshalFile(f, &rows); err != nil {
				return common.NewUserError("failed to parse CSV", err)
			}
			if len(rows) == 0 {
				fmt.Println(cli.InfoStyle.Render("Nothing to import."))
				return nil
			}

			fallback, err := resolveCategory(s, defaultCategory)
			if err != nil {
				return err
			}

			bar := progressbar.Default(int64(len(rows)), "importing expenses")
			imported := 0
			skipped := 0
			for _, row := range rows {
				expense, err := expenseFromRow(s, row, fallback)
				if err != nil {
					skipped++
					_ = bar.Add(1)
					continue
				}
				s.AddExpense(expense)
				imported++
				_ = bar.Add(1)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d expenses", imported)))
			if skipped > 0 {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("Skipped %d invalid rows", skipped)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&defaultCategory, "default-category", "Outros", "Category for rows without a matching one")

	return cmd
}

func expenseFromRow(s *store.Store, row expenseRow, fallback model.Category) (model.Expense, error) {
	amount, err := parseMoney(row.Amount)
	if err != nil {
		return model.Expense{}, err
	}

	date, err := parseDate(row.Date)
	if err != nil {
		return model.Expense{}, err
	}

	category := fallback
	if row.Category != "" {
		if match, ok := s.CategoryByName(row.Category); ok {
			category = match
		}
	}

	expenseType := model.ExpenseType(row.Type)
	if row.Type == "" {
		expenseType = model.ExpenseOneTime
	}

	expense := model.Expense{
		Description:      row.Description,
		Amount:           amount,
		Date:             date,
		Type:             expenseType,
		CategoryID:       category.ID,
		CategorySnapshot: category,
	}
	if err := expense.Validate(); err != nil {
		return model.Expense{}, err
	}
	return expense, nil
}

// liveCategoryName prefers the live collection for the current name,
// falling back to the snapshot embedded at write time.
func liveCategoryName(categories []model.Category, e model.Expense) string {
	for _, c := range categories {
		if c.ID == e.CategoryID {
			return c.Name
		}
	}
	if e.CategorySnapshot.Name != "" {
		return e.CategorySnapshot.Name
	}
	return "(none)"
}

// shortID abbreviates a UUID for table display.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
