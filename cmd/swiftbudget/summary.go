package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wolferonic/swiftbudget/internal/category"
	"github.com/wolferonic/swiftbudget/internal/cli"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show income, expenses, balance and budget alerts",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, cleanup, err := initApp()
			if err != nil {
				return err
			}
			defer cleanup()

			agg := a.Ledger.Aggregates()

			fmt.Println(cli.FormatTitle("Financial Summary"))
			fmt.Printf("  %s %s\n", cli.BoldStyle.Render("Income:  "), cli.SuccessStyle.Render(fmt.Sprintf("$%.2f", agg.Income)))
			fmt.Printf("  %s %s\n", cli.BoldStyle.Render("Expenses:"), cli.ErrorStyle.Render(fmt.Sprintf("$%.2f", agg.Expenses)))

			balance := fmt.Sprintf("$%.2f", agg.Balance)
			if agg.Balance < 0 {
				balance = cli.ErrorStyle.Render(balance)
			} else {
				balance = cli.SuccessStyle.Render(balance)
			}
			fmt.Printf("  %s %s\n", cli.BoldStyle.Render("Balance: "), balance)

			alerts := a.BudgetAlerts()
			if len(alerts) == 0 {
				return nil
			}

			fmt.Println()
			fmt.Println(cli.FormatTitle("Budget Alerts"))
			for _, alert := range alerts {
				line := fmt.Sprintf("%s: $%.2f of $%.2f spent (%.0f%%)",
					alert.Category, alert.Spent, alert.Budget, alert.Percentage)
				if alert.Level == category.LevelDanger {
					fmt.Println("  " + cli.FormatError(line))
				} else {
					fmt.Println("  " + cli.FormatWarning(line))
				}
			}
			return nil
		},
	}
}
