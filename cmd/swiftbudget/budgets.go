package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wolferonic/swiftbudget/internal/cli"
	"github.com/wolferonic/swiftbudget/internal/model"
)

func budgetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budgets",
		Short: "View and set monthly category budgets",
	}

	cmd.AddCommand(budgetsListCmd())
	cmd.AddCommand(budgetsSetCmd())
	return cmd
}

func budgetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the budget for every expense category",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, cleanup, err := initApp()
			if err != nil {
				return err
			}
			defer cleanup()

			budgets := a.Categories.Budgets()
			spent := map[string]float64{}
			for _, t := range a.Ledger.Transactions() {
				if t.Type == model.TypeExpense {
					spent[t.Category] += t.Amount
				}
			}

			fmt.Println(cli.FormatTitle("Budgets"))
			fmt.Println(cli.TableHeaderStyle.Render(fmt.Sprintf("%-20s %12s %12s", "CATEGORY", "BUDGET", "SPENT")))
			for _, name := range a.Categories.ExpenseCategories() {
				fmt.Printf("%-20s %12s %12s\n", name,
					fmt.Sprintf("$%.2f", budgets[name]),
					fmt.Sprintf("$%.2f", spent[name]))
			}
			return nil
		},
	}
}

func budgetsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <category=amount> [category=amount ...]",
		Short: "Set budget limits for expense categories",
		Args:  cobra.MinimumNArgs(1),
		Example: `  swiftbudget budgets set Food=600 Transport=120
  swiftbudget budgets set "Pet Care=150"`,
		RunE: func(_ *cobra.Command, args []string) error {
			a, cleanup, err := initApp()
			if err != nil {
				return err
			}
			defer cleanup()

			budgets := a.Categories.Budgets()
			for _, arg := range args {
				name, raw, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("expected category=amount, got %q", arg)
				}
				amount, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return fmt.Errorf("invalid amount %q for category %q", raw, name)
				}
				budgets[name] = amount
			}

			a.Categories.SetBudgets(budgets)
			return nil
		},
	}
}
