package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mavit/mavit-cash/internal/cli"
)

func resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset all data to factory defaults",
		Long: `Reset deletes the profile and every expense, budget, goal and debt,
restoring the seed categories and default settings.

This is a destructive operation. Consider 'mavit backup export' first.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			snap := s.Snapshot()
			total := len(snap.Expenses) + len(snap.Budgets) + len(snap.Goals) + len(snap.Debts)
			if !force {
				fmt.Printf("This will delete %d records and the profile.\n", total)
				if !confirm("Are you sure you want to continue?") {
					fmt.Println("Reset canceled.")
					return nil
				}
			}

			s.ResetData()
			fmt.Println(cli.FormatSuccess("All data reset to factory defaults"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}
