package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wolferonic/swiftbudget/internal/cli"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage expense and income categories",
	}

	cmd.AddCommand(categoriesListCmd())
	cmd.AddCommand(categoriesAddCmd())
	cmd.AddCommand(categoriesDeleteCmd())
	return cmd
}

func categoriesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, cleanup, err := initApp()
			if err != nil {
				return err
			}
			defer cleanup()

			budgets := a.Categories.Budgets()

			fmt.Println(cli.FormatTitle("Expense Categories"))
			for _, name := range a.Categories.ExpenseCategories() {
				fmt.Printf("  %-20s budget $%.2f\n", name, budgets[name])
			}

			fmt.Println()
			fmt.Println(cli.FormatTitle("Income Categories"))
			for _, name := range a.Categories.IncomeCategories() {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}
}

func categoriesAddCmd() *cobra.Command {
	var (
		income bool
		budget float64
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a custom category",
		Args:  cobra.ExactArgs(1),
		Example: `  swiftbudget categories add "Pet Care" --budget 150
  swiftbudget categories add Royalties --income`,
		RunE: func(_ *cobra.Command, args []string) error {
			a, cleanup, err := initApp()
			if err != nil {
				return err
			}
			defer cleanup()

			if income {
				return a.Categories.AddIncome(args[0])
			}
			return a.Categories.AddExpense(args[0], budget)
		},
	}

	cmd.Flags().BoolVar(&income, "income", false, "add an income category instead of an expense one")
	cmd.Flags().Float64VarP(&budget, "budget", "b", 0, "monthly budget for the new expense category (0 = no budget)")
	return cmd
}

func categoriesDeleteCmd() *cobra.Command {
	var income bool

	cmd := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a custom category",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			a, cleanup, err := initApp()
			if err != nil {
				return err
			}
			defer cleanup()

			if income {
				return a.Categories.DeleteIncome(args[0])
			}
			return a.Categories.DeleteExpense(args[0])
		},
	}

	cmd.Flags().BoolVar(&income, "income", false, "delete an income category instead of an expense one")
	return cmd
}
