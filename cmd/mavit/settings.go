package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mavit/mavit-cash/internal/cli"
	"github.com/mavit/mavit-cash/internal/common"
	"github.com/mavit/mavit-cash/internal/model"
	"github.com/mavit/mavit-cash/internal/store"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View and change application settings",
	}

	cmd.AddCommand(showSettingsCmd())
	cmd.AddCommand(setSettingsCmd())

	return cmd
}

func showSettingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current settings",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			settings := s.Settings()
			strategy := string(settings.DebtStrategy)
			if strategy == "" {
				strategy = "(per-debt priority)"
			}
			content := fmt.Sprintf(
				"Theme:          %s\nCurrency:       %s\nLanguage:       %s\nDebt strategy:  %s\nAuto backup:    %t\nNotifications:  %t\nBackup path:    %s",
				settings.Theme,
				settings.Currency,
				settings.Language,
				strategy,
				settings.AutoBackup,
				settings.Notifications,
				orDash(settings.BackupPath))
			fmt.Println(cli.RenderBox("Settings", content))
			return nil
		},
	}
}

func setSettingsCmd() *cobra.Command {
	var (
		theme         string
		currency      string
		language      string
		backupPath    string
		debtStrategy  string
		autoBackup    bool
		notifications bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change settings",
		Long:  `Change only the settings whose flags are set; everything else keeps its value.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			var patch store.SettingsPatch
			if cmd.Flags().Changed("theme") {
				t := model.Theme(theme)
				if t != model.ThemeDark && t != model.ThemeLight {
					return common.NewUserError(
						fmt.Sprintf("unknown theme %q, themes are dark and light", theme), nil)
				}
				patch.Theme = &t
			}
			if cmd.Flags().Changed("currency") {
				patch.Currency = &currency
			}
			if cmd.Flags().Changed("language") {
				patch.Language = &language
			}
			if cmd.Flags().Changed("backup-path") {
				patch.BackupPath = &backupPath
			}
			if cmd.Flags().Changed("debt-strategy") {
				strategy := model.DebtStrategy(debtStrategy)
				if strategy != model.StrategySnowball && strategy != model.StrategyAvalanche {
					return common.NewUserError(
						fmt.Sprintf("unknown strategy %q, strategies are snowball and avalanche", debtStrategy), nil)
				}
				patch.DebtStrategy = &strategy
			}
			if cmd.Flags().Changed("auto-backup") {
				patch.AutoBackup = &autoBackup
			}
			if cmd.Flags().Changed("notifications") {
				patch.Notifications = &notifications
			}

			s.UpdateSettings(patch)
			fmt.Println(cli.FormatSuccess("Settings updated"))
			return nil
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "Color theme (dark, light)")
	cmd.Flags().StringVar(&currency, "currency", "", "ISO 4217 currency code (BRL, USD, EUR, ...)")
	cmd.Flags().StringVar(&language, "language", "", "BCP 47 language tag (pt-BR, en-US, ...)")
	cmd.Flags().StringVar(&backupPath, "backup-path", "", "Directory for automatic backups")
	cmd.Flags().StringVar(&debtStrategy, "debt-strategy", "", "Global payoff strategy (snowball, avalanche)")
	cmd.Flags().BoolVar(&autoBackup, "auto-backup", true, "Back up automatically on exit")
	cmd.Flags().BoolVar(&notifications, "notifications", true, "Show budget notifications")

	return cmd
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
