package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mavit/mavit-cash/internal/cli"
	"github.com/mavit/mavit-cash/internal/common"
	"github.com/mavit/mavit-cash/internal/model"
	"github.com/mavit/mavit-cash/internal/storage"
	"github.com/mavit/mavit-cash/internal/store"
)

func backupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export and import the full state",
		Long:  `Write the full financial state to a JSON file, or merge one back in.`,
	}

	cmd.AddCommand(exportBackupCmd())
	cmd.AddCommand(importBackupCmd())

	return cmd
}

func exportBackupCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the full state to a JSON file",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			data, err := storage.Serialize(s.ExportData())
			if err != nil {
				return fmt.Errorf("failed to serialize state: %w", err)
			}

			if err := os.WriteFile(output, data, 0o600); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}

			fmt.Println(cli.FormatSuccess("Exported state to " + output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "mavit-backup.json", "Output file")

	return cmd
}

func importBackupCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import state from a JSON backup",
		Long: `Merge a backup into the current state. Sections present in the file
replace their collection wholesale; absent sections are left untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			snap := storage.Deserialize(data)
			if snap == nil {
				return common.NewUserError(
					fmt.Sprintf("%s is not a readable backup", args[0]), common.ErrCorruptState)
			}

			if !force && !confirm("Importing replaces every section present in the backup. Continue?") {
				fmt.Println("Canceled.")
				return nil
			}

			patch := store.ImportPatch{
				User:       snap.User,
				Expenses:   snap.Expenses,
				Budgets:    snap.Budgets,
				Goals:      snap.Goals,
				Debts:      snap.Debts,
				Categories: snap.Categories,
			}
			// A backup without a settings object decodes to the zero
			// value; keep the configured settings in that case.
			if snap.Settings != (model.AppSettings{}) {
				patch.Settings = &snap.Settings
			}
			s.ImportData(patch)

			fmt.Println(cli.FormatSuccess(fmt.Sprintf(
				"Imported %d expenses, %d budgets, %d goals, %d debts, %d categories",
				len(snap.Expenses), len(snap.Budgets), len(snap.Goals), len(snap.Debts), len(snap.Categories))))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}
