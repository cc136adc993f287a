package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mavit/mavit-cash/internal/tui"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long: `Browse your finances in a full-screen terminal dashboard: monthly
overview, budgets, debts and goals. Read-only; mutations happen through
the other commands.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}
			return tui.Run(s.Snapshot(), time.Now(), s)
		},
	}
}
