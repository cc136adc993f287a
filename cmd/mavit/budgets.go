package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mavit/mavit-cash/internal/cli"
	"github.com/mavit/mavit-cash/internal/common"
	"github.com/mavit/mavit-cash/internal/model"
	"github.com/mavit/mavit-cash/internal/report"
	"github.com/mavit/mavit-cash/internal/store"
)

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "Plan monthly budgets",
		Long:  `List, add, update and delete per-category monthly budgets, or apply a budget template.`,
	}

	cmd.AddCommand(listBudgetsCmd())
	cmd.AddCommand(addBudgetCmd())
	cmd.AddCommand(updateBudgetCmd())
	cmd.AddCommand(deleteBudgetCmd())
	cmd.AddCommand(applyTemplateCmd())
	cmd.AddCommand(listTemplatesCmd())

	return cmd
}

func listBudgetsCmd() *cobra.Command {
	var (
		month int
		year  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List budgets for a month",
		Long:  `Display each budget with the spend actually recorded against its category.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			m, err := validateMonth(month)
			if err != nil {
				return err
			}

			budgets := report.BudgetsForMonth(s.Budgets(), m, year)
			if len(budgets) == 0 {
				fmt.Println(cli.InfoStyle.Render("No budgets for this month. Use 'mavit budgets add' or 'mavit budgets apply-template'."))
				return nil
			}

			settings := s.Settings()
			expenses := s.Expenses()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Budget"),
				cli.BoldStyle.Render("Spent"),
				cli.BoldStyle.Render("Used"),
				cli.BoldStyle.Render("Status"))

			for _, b := range budgets {
				u := report.BudgetUtilization(b, expenses)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.1f%%\t%s\n",
					shortID(b.ID),
					b.CategorySnapshot.Name,
					formatMoney(b.Amount, settings),
					formatMoney(u.Spent, settings),
					u.Percent,
					renderBudgetStatus(u.Status))
			}

			return nil
		},
	}

	monthYearFlags(cmd, &month, &year)

	return cmd
}

func renderBudgetStatus(status report.BudgetStatus) string {
	switch status {
	case report.BudgetOver:
		return cli.ErrorStyle.Render(string(status))
	case report.BudgetNearLimit:
		return cli.WarningStyle.Render(string(status))
	default:
		return cli.SuccessStyle.Render(string(status))
	}
}

func addBudgetCmd() *cobra.Command {
	var (
		month int
		year  int
	)

	cmd := &cobra.Command{
		Use:   "add <category> <amount>",
		Short: "Add a budget for a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			category, err := resolveCategory(s, args[0])
			if err != nil {
				return err
			}

			amount, err := parseMoney(args[1])
			if err != nil {
				return err
			}

			m, err := validateMonth(month)
			if err != nil {
				return err
			}

			budget := model.Budget{
				CategoryID:       category.ID,
				CategorySnapshot: category,
				Amount:           amount,
				Month:            m,
				Year:             year,
			}
			if err := budget.Validate(); err != nil {
				return common.NewUserError("invalid budget", err)
			}

			stored := s.AddBudget(budget)
			settings := s.Settings()
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Budgeted %s for %s in %s %d",
				formatMoney(stored.Amount, settings), category.Name, m, year)))
			return nil
		},
	}

	monthYearFlags(cmd, &month, &year)

	return cmd
}

func updateBudgetCmd() *cobra.Command {
	var amount string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a budget's limit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			var patch store.BudgetPatch
			if cmd.Flags().Changed("amount") {
				parsed, err := parseMoney(amount)
				if err != nil {
					return err
				}
				patch.Amount = &parsed
			}

			id, err := resolveBudgetID(s, args[0])
			if err != nil {
				return err
			}

			s.UpdateBudget(id, patch)
			fmt.Println(cli.FormatSuccess("Budget updated"))
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "New budget limit")

	return cmd
}

func deleteBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			id, err := resolveBudgetID(s, args[0])
			if err != nil {
				return err
			}
			s.DeleteBudget(id)
			fmt.Println(cli.FormatSuccess("Budget deleted"))
			return nil
		},
	}
}

func listTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List available budget templates",
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, t := range report.BuiltinTemplates() {
				fmt.Printf("%s  %s\n", cli.BoldStyle.Render(t.ID), t.Name)
				fmt.Printf("    %s\n", cli.SubtleStyle.Render(t.Description))
				for _, line := range t.Distribution {
					fmt.Printf("    %s: %s%%\n", line.CategoryName, line.Percentage)
				}
			}
			return nil
		},
	}
}

func applyTemplateCmd() *cobra.Command {
	var (
		month int
		year  int
	)

	cmd := &cobra.Command{
		Use:   "apply-template <template-id>",
		Short: "Generate a month's budgets from a template",
		Long: `Distribute the profile salary over categories according to a named
template. Lines whose category has been deleted are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			template, ok := report.TemplateByID(args[0])
			if !ok {
				return common.NewUserError(
					fmt.Sprintf("unknown template %q, see 'mavit budgets templates'", args[0]), nil)
			}

			if _, ok := s.User(); !ok {
				return common.NewUserError(
					"no profile configured, run 'mavit profile set' first", common.ErrNoUser)
			}

			m, err := validateMonth(month)
			if err != nil {
				return err
			}

			budgets := report.ApplyTemplate(template, s.Snapshot(), m, year)
			if len(budgets) == 0 {
				fmt.Println(cli.InfoStyle.Render("Template produced no budgets; check your categories and salary."))
				return nil
			}

			for _, b := range budgets {
				s.AddBudget(b)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Applied %q: created %d budgets for %s %d",
				template.Name, len(budgets), m, year)))
			return nil
		},
	}

	monthYearFlags(cmd, &month, &year)

	return cmd
}
