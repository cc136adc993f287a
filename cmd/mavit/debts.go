package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mavit/mavit-cash/internal/cli"
	"github.com/mavit/mavit-cash/internal/common"
	"github.com/mavit/mavit-cash/internal/model"
	"github.com/mavit/mavit-cash/internal/report"
	"github.com/mavit/mavit-cash/internal/store"
)

func debtsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debts",
		Short: "Track and pay down debts",
		Long: `List, add, update and delete debts. The list is ordered by the active
payoff strategy: snowball pays the smallest balance first, avalanche
the highest interest rate.`,
	}

	cmd.AddCommand(listDebtsCmd())
	cmd.AddCommand(addDebtCmd())
	cmd.AddCommand(updateDebtCmd())
	cmd.AddCommand(deleteDebtCmd())
	cmd.AddCommand(payoffDebtsCmd())

	return cmd
}

func listDebtsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List debts in payoff order",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			debts := s.Debts()
			if len(debts) == 0 {
				fmt.Println(cli.InfoStyle.Render("No debts found. Use 'mavit debts add' to record one."))
				return nil
			}

			settings := s.Settings()
			strategy := report.EffectiveStrategy(settings, debts)
			ordered := report.PrioritizeDebts(debts, strategy)
			summary := report.SummarizeDebts(ordered)

			fmt.Printf("%s strategy: %s remaining across %d debts, %s/month minimum, %.0f%% paid on average\n\n",
				cli.BoldStyle.Render(string(strategy)),
				formatMoney(summary.TotalRemaining, settings),
				len(ordered),
				formatMoney(summary.TotalMinPayment, settings),
				summary.AverageProgress*100)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Name"),
				cli.BoldStyle.Render("Remaining"),
				cli.BoldStyle.Render("Interest"),
				cli.BoldStyle.Render("Min payment"),
				cli.BoldStyle.Render("Payoff"),
				cli.BoldStyle.Render("Est. interest"))

			for i, d := range ordered {
				name := d.Name
				if i == 0 {
					name = cli.BoldStyle.Render(d.Name + " ←")
				}
				p := report.ProjectPayoff(d)
				payoff := "-"
				interest := "-"
				if p.Months > 0 {
					payoff = fmt.Sprintf("%d months", p.Months)
					interest = formatMoney(p.EstimatedInterest, settings)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s%%\t%s\t%s\t%s\n",
					shortID(d.ID),
					name,
					formatMoney(d.RemainingAmount, settings),
					d.InterestRate,
					formatMoney(d.MinimumPayment, settings),
					payoff,
					interest)
			}

			return nil
		},
	}
}

func addDebtCmd() *cobra.Command {
	var (
		remaining string
		interest  string
		minimum   string
		priority  string
	)

	cmd := &cobra.Command{
		Use:   "add <name> <total-amount>",
		Short: "Record a debt",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			total, err := parseMoney(args[1])
			if err != nil {
				return err
			}

			debt := model.Debt{
				Name:            args[0],
				TotalAmount:     total,
				RemainingAmount: total,
				Priority:        model.DebtStrategy(priority),
			}

			if remaining != "" {
				parsed, err := parseMoney(remaining)
				if err != nil {
					return err
				}
				debt.RemainingAmount = parsed
			}
			if debt.InterestRate, err = parseMoney(interest); err != nil {
				return err
			}
			if debt.MinimumPayment, err = parseMoney(minimum); err != nil {
				return err
			}

			if err := debt.Validate(); err != nil {
				return common.NewUserError("invalid debt", err)
			}

			stored := s.AddDebt(debt)
			settings := s.Settings()
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s Recorded debt %q, %s remaining",
				cli.DebtIcon, stored.Name, formatMoney(stored.RemainingAmount, settings))))
			return nil
		},
	}

	cmd.Flags().StringVar(&remaining, "remaining", "", "Remaining balance (default: total amount)")
	cmd.Flags().StringVar(&interest, "interest", "0", "Annual interest rate in percent")
	cmd.Flags().StringVar(&minimum, "min-payment", "", "Minimum monthly payment")
	cmd.Flags().StringVar(&priority, "priority", string(model.StrategySnowball), "Payoff priority (snowball, avalanche)")
	_ = cmd.MarkFlagRequired("min-payment")

	return cmd
}

func updateDebtCmd() *cobra.Command {
	var (
		name      string
		remaining string
		interest  string
		minimum   string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a debt",
		Long:  `Change only the fields whose flags are set. Record a payment by lowering --remaining.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			var patch store.DebtPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("remaining") {
				parsed, err := parseMoney(remaining)
				if err != nil {
					return err
				}
				patch.RemainingAmount = &parsed
			}
			if cmd.Flags().Changed("interest") {
				parsed, err := parseMoney(interest)
				if err != nil {
					return err
				}
				patch.InterestRate = &parsed
			}
			if cmd.Flags().Changed("min-payment") {
				parsed, err := parseMoney(minimum)
				if err != nil {
					return err
				}
				patch.MinimumPayment = &parsed
			}

			id, err := resolveDebtID(s, args[0])
			if err != nil {
				return err
			}

			s.UpdateDebt(id, patch)
			fmt.Println(cli.FormatSuccess("Debt updated"))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&remaining, "remaining", "", "New remaining balance")
	cmd.Flags().StringVar(&interest, "interest", "", "New annual interest rate in percent")
	cmd.Flags().StringVar(&minimum, "min-payment", "", "New minimum monthly payment")

	return cmd
}

func payoffDebtsCmd() *cobra.Command {
	var strategyFlag string

	cmd := &cobra.Command{
		Use:   "payoff",
		Short: "Show the payoff plan",
		Long: `Project each debt's payoff at its minimum payment, in strategy order.
The projection is linear; it is a planning aid, not an amortization
schedule.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			debts := s.Debts()
			if len(debts) == 0 {
				fmt.Println(cli.InfoStyle.Render("No debts to plan for."))
				return nil
			}

			settings := s.Settings()
			strategy := report.EffectiveStrategy(settings, debts)
			if cmd.Flags().Changed("strategy") {
				strategy = model.DebtStrategy(strategyFlag)
				if strategy != model.StrategySnowball && strategy != model.StrategyAvalanche {
					return common.NewUserError(
						fmt.Sprintf("unknown strategy %q, strategies are snowball and avalanche", strategyFlag), nil)
				}
			}

			ordered := report.PrioritizeDebts(debts, strategy)
			fmt.Println(cli.FormatTitle(fmt.Sprintf("Payoff plan (%s)", strategy)))

			totalInterest := decimal.Zero
			longest := 0
			for i, d := range ordered {
				p := report.ProjectPayoff(d)
				totalInterest = totalInterest.Add(p.EstimatedInterest)
				if p.Months > longest {
					longest = p.Months
				}

				fmt.Printf("%d. %s\n", i+1, cli.BoldStyle.Render(d.Name))
				fmt.Printf("   Remaining %s at %s%%, paying %s/month\n",
					formatMoney(d.RemainingAmount, settings),
					d.InterestRate,
					formatMoney(d.MinimumPayment, settings))
				if p.Months > 0 {
					fmt.Printf("   Paid off in ~%d months, ~%s interest on the way\n",
						p.Months, formatMoney(p.EstimatedInterest, settings))
				} else {
					fmt.Println("   " + cli.SubtleStyle.Render("No minimum payment set; cannot project"))
				}
			}

			fmt.Printf("\nDebt-free in ~%d months with ~%s total estimated interest\n",
				longest, formatMoney(totalInterest, settings))
			return nil
		},
	}

	cmd.Flags().StringVar(&strategyFlag, "strategy", "", "Override the payoff strategy (snowball, avalanche)")

	return cmd
}

func deleteDebtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a debt",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			id, err := resolveDebtID(s, args[0])
			if err != nil {
				return err
			}
			s.DeleteDebt(id)
			fmt.Println(cli.FormatSuccess("Debt deleted"))
			return nil
		},
	}
}
