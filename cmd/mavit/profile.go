package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mavit/mavit-cash/internal/cli"
	"github.com/mavit/mavit-cash/internal/common"
	"github.com/mavit/mavit-cash/internal/model"
	"github.com/mavit/mavit-cash/internal/store"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the user profile",
		Long:  `Show or change the single profile: your name and monthly salary.`,
	}

	cmd.AddCommand(showProfileCmd())
	cmd.AddCommand(setProfileCmd())
	cmd.AddCommand(updateProfileCmd())

	return cmd
}

func showProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current profile",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			user, ok := s.User()
			if !ok {
				fmt.Println(cli.InfoStyle.Render("No profile configured. Use 'mavit profile set <name> <salary>'."))
				return nil
			}

			settings := s.Settings()
			content := fmt.Sprintf("Name:   %s\nSalary: %s\nSince:  %s",
				user.Name,
				formatMoney(user.Salary, settings),
				formatDate(user.CreatedAt))
			fmt.Println(cli.RenderBox("Profile", content))
			return nil
		},
	}
}

func setProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <name> <salary>",
		Short: "Create or replace the profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			salary, err := parseMoney(args[1])
			if err != nil {
				return err
			}

			user := model.User{Name: args[0], Salary: salary}
			if err := user.Validate(); err != nil {
				return common.NewUserError("invalid profile", err)
			}

			stored := s.SetUser(user)
			settings := s.Settings()
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Profile set: %s, salary %s",
				stored.Name, formatMoney(stored.Salary, settings))))
			return nil
		},
	}
}

func updateProfileCmd() *cobra.Command {
	var (
		name   string
		salary string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the profile",
		Long:  `Change only the fields whose flags are set.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			if _, ok := s.User(); !ok {
				return common.NewUserError(
					"no profile configured, run 'mavit profile set' first", common.ErrNoUser)
			}

			var patch store.UserPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("salary") {
				parsed, err := parseMoney(salary)
				if err != nil {
					return err
				}
				patch.Salary = &parsed
			}

			s.UpdateUser(patch)
			fmt.Println(cli.FormatSuccess("Profile updated"))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&salary, "salary", "", "New monthly salary")

	return cmd
}
