package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mavit/mavit-cash/internal/cli"
	"github.com/mavit/mavit-cash/internal/common"
	"github.com/mavit/mavit-cash/internal/model"
	"github.com/mavit/mavit-cash/internal/store"
)

func goalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Track savings goals",
		Long:  `List, add, update, complete and delete savings goals.`,
	}

	cmd.AddCommand(listGoalsCmd())
	cmd.AddCommand(addGoalCmd())
	cmd.AddCommand(updateGoalCmd())
	cmd.AddCommand(completeGoalCmd())
	cmd.AddCommand(deleteGoalCmd())

	return cmd
}

func listGoalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List savings goals",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			goals := s.Goals()
			if len(goals) == 0 {
				fmt.Println(cli.InfoStyle.Render("No goals found. Use 'mavit goals add' to create one."))
				return nil
			}

			settings := s.Settings()

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Name"),
				cli.BoldStyle.Render("Saved"),
				cli.BoldStyle.Render("Target"),
				cli.BoldStyle.Render("Deadline"),
				cli.BoldStyle.Render("Progress"))

			for _, g := range goals {
				deadline := "-"
				if g.Deadline != nil {
					deadline = formatDate(*g.Deadline)
				}
				progress := fmt.Sprintf("%.1f%%", g.Progress()*100)
				if g.Completed {
					progress = cli.SuccessStyle.Render(cli.SuccessIcon + " done")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					shortID(g.ID),
					g.Name,
					formatMoney(g.CurrentAmount, settings),
					formatMoney(g.TargetAmount, settings),
					deadline,
					progress)
			}

			return nil
		},
	}
}

func addGoalCmd() *cobra.Command {
	var (
		current  string
		deadline string
	)

	cmd := &cobra.Command{
		Use:   "add <name> <target-amount>",
		Short: "Add a savings goal",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			target, err := parseMoney(args[1])
			if err != nil {
				return err
			}

			goal := model.Goal{Name: args[0], TargetAmount: target}

			if current != "" {
				saved, err := parseMoney(current)
				if err != nil {
					return err
				}
				goal.CurrentAmount = saved
			}
			if deadline != "" {
				when, err := parseDate(deadline)
				if err != nil {
					return err
				}
				goal.Deadline = &when
			}

			if err := goal.Validate(time.Now()); err != nil {
				return common.NewUserError("invalid goal", err)
			}

			stored := s.AddGoal(goal)
			settings := s.Settings()
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s Created goal %q, target %s",
				cli.GoalIcon, stored.Name, formatMoney(stored.TargetAmount, settings))))
			return nil
		},
	}

	cmd.Flags().StringVar(&current, "current", "", "Amount already saved")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Target date (YYYY-MM-DD)")

	return cmd
}

func updateGoalCmd() *cobra.Command {
	var (
		name     string
		target   string
		current  string
		deadline string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a savings goal",
		Long: `Change only the fields whose flags are set. Pass --deadline "" to clear
the deadline.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			var patch store.GoalPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("target") {
				parsed, err := parseMoney(target)
				if err != nil {
					return err
				}
				patch.TargetAmount = &parsed
			}
			if cmd.Flags().Changed("current") {
				parsed, err := parseMoney(current)
				if err != nil {
					return err
				}
				patch.CurrentAmount = &parsed
			}
			if cmd.Flags().Changed("deadline") {
				var next *time.Time
				if deadline != "" {
					parsed, err := parseDate(deadline)
					if err != nil {
						return err
					}
					next = &parsed
				}
				patch.Deadline = &next
			}

			id, err := resolveGoalID(s, args[0])
			if err != nil {
				return err
			}

			s.UpdateGoal(id, patch)
			fmt.Println(cli.FormatSuccess("Goal updated"))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&target, "target", "", "New target amount")
	cmd.Flags().StringVar(&current, "current", "", "New saved amount")
	cmd.Flags().StringVar(&deadline, "deadline", "", "New target date (YYYY-MM-DD), empty clears it")

	return cmd
}

func completeGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a goal as completed",
		Long:  `Close a goal at its current progress; the target does not need to be reached.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			id, err := resolveGoalID(s, args[0])
			if err != nil {
				return err
			}
			s.MarkGoalCompleted(id)
			fmt.Println(cli.FormatSuccess(cli.GoalIcon + " Goal completed"))
			return nil
		},
	}
}

func deleteGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a savings goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			id, err := resolveGoalID(s, args[0])
			if err != nil {
				return err
			}
			s.DeleteGoal(id)
			fmt.Println(cli.FormatSuccess("Goal deleted"))
			return nil
		},
	}
}
