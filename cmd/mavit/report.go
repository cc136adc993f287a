package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mavit/mavit-cash/internal/cli"
	"github.com/mavit/mavit-cash/internal/report"
)

func reportCmd() *cobra.Command {
	var (
		month int
		year  int
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the monthly report",
		Long: `Aggregate one calendar month: income, total spend, balance, the
per-category breakdown and how each budget compares to actual spend.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			m, err := validateMonth(month)
			if err != nil {
				return err
			}

			snap := s.Snapshot()
			r := report.BuildMonthlyReport(snap, m, year, time.Now())
			settings := snap.Settings

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Report: %s %d", m, year)))
			fmt.Printf("Income:   %s\n", formatMoney(r.TotalIncome, settings))
			fmt.Printf("Expenses: %s\n", formatMoney(r.TotalExpenses, settings))
			balance := formatMoney(r.Balance, settings)
			if r.Balance.IsNegative() {
				balance = cli.ErrorStyle.Render(balance)
			} else {
				balance = cli.SuccessStyle.Render(balance)
			}
			fmt.Printf("Balance:  %s\n", balance)

			if len(r.ExpensesByCategory) > 0 {
				fmt.Println()
				fmt.Println(cli.BoldStyle.Render(cli.ChartIcon + " Spending by category"))
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				for _, row := range r.ExpensesByCategory {
					fmt.Fprintf(w, "%s\t%s\t%.1f%%\n",
						row.CategoryName, formatMoney(row.Amount, settings), row.Percentage)
				}
				w.Flush()
			}

			if len(r.BudgetComparison) > 0 {
				fmt.Println()
				fmt.Println(cli.BoldStyle.Render("Budgets vs. actual"))
				w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					cli.BoldStyle.Render("Category"),
					cli.BoldStyle.Render("Budgeted"),
					cli.BoldStyle.Render("Spent"),
					cli.BoldStyle.Render("Variance"))
				for _, row := range r.BudgetComparison {
					variance := formatMoney(row.Variance, settings)
					if row.Variance.IsNegative() {
						variance = cli.ErrorStyle.Render(variance)
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
						row.CategoryName,
						formatMoney(row.Budgeted, settings),
						formatMoney(row.Spent, settings),
						variance)
				}
				w.Flush()
			}

			return nil
		},
	}

	monthYearFlags(cmd, &month, &year)

	return cmd
}
