package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mavit/mavit-cash/internal/cli"
	"github.com/mavit/mavit-cash/internal/common"
	"github.com/mavit/mavit-cash/internal/model"
	"github.com/mavit/mavit-cash/internal/store"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage expense categories",
		Long:  `List, add, update, and delete the categories expenses and budgets are filed under.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(updateCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			categories := s.Categories()
			if len(categories) == 0 {
				fmt.Println(cli.InfoStyle.Render("No categories found. Use 'mavit categories add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Name"),
				cli.BoldStyle.Render("Color"),
				cli.BoldStyle.Render("Icon"))

			for _, c := range categories {
				swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Render("●")
				fmt.Fprintf(w, "%s\t%s\t%s %s\t%s\n",
					shortID(c.ID), c.Name, swatch, c.Color, c.Icon)
			}

			return nil
		},
	}
}

func addCategoryCmd() *cobra.Command {
	var (
		color string
		icon  string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			name := args[0]
			if _, exists := s.CategoryByName(name); exists {
				return common.NewUserError(fmt.Sprintf("category %q already exists", name), nil)
			}

			category := model.Category{Name: name, Color: color, Icon: icon}
			if err := category.Validate(); err != nil {
				return common.NewUserError("invalid category", err)
			}

			stored := s.AddCategory(category)
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created category %q (ID: %s)", stored.Name, shortID(stored.ID))))
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", "#a0a0a0", "Hex display color")
	cmd.Flags().StringVar(&icon, "icon", "Package", "Icon name")

	return cmd
}

func updateCategoryCmd() *cobra.Command {
	var (
		name  string
		color string
		icon  string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a category",
		Long: `Change only the fields whose flags are set. Expenses and budgets keep
the category snapshot taken when they were written; only the live
collection changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			var patch store.CategoryPatch
			if cmd.Flags().Changed("name") {
				patch.Name = &name
			}
			if cmd.Flags().Changed("color") {
				patch.Color = &color
			}
			if cmd.Flags().Changed("icon") {
				patch.Icon = &icon
			}

			id, err := resolveCategoryID(s, args[0])
			if err != nil {
				return err
			}

			s.UpdateCategory(id, patch)
			fmt.Println(cli.FormatSuccess("Category updated"))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&color, "color", "", "New hex display color")
	cmd.Flags().StringVar(&icon, "icon", "", "New icon name")

	return cmd
}

func deleteCategoryCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Long: `Delete a category from the live collection. Expenses and budgets that
reference it are left untouched and keep their embedded snapshot.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := openStore()
			if err != nil {
				return err
			}

			id, err := resolveCategoryID(s, args[0])
			if err != nil {
				return err
			}

			if !force && !confirm("Expenses filed under this category keep a dangling reference. Delete anyway?") {
				fmt.Println("Canceled.")
				return nil
			}

			s.DeleteCategory(id)
			fmt.Println(cli.FormatSuccess("Category deleted"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}
