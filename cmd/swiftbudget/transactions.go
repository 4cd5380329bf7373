package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/wolferonic/swiftbudget/internal/cli"
	"github.com/wolferonic/swiftbudget/internal/ledger"
	"github.com/wolferonic/swiftbudget/internal/model"
	"github.com/wolferonic/swiftbudget/internal/session"
)

func addCmd() *cobra.Command {
	var (
		txType      string
		description string
		amount      float64
		category    string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an income or expense transaction",
		Example: `  swiftbudget add --type expense --description "Groceries" --amount 42.50 --category Food
  swiftbudget add --type income --description "March salary" --amount 3000 --category Salary --date 2026-03-01`,
		RunE: func(_ *cobra.Command, _ []string) error {
			a, cleanup, err := initApp()
			if err != nil {
				return err
			}
			defer cleanup()

			parsedType, err := model.ParseTransactionType(txType)
			if err != nil {
				return err
			}

			when := model.DateOf(time.Now())
			if date != "" {
				when, err = model.ParseDate(date)
				if err != nil {
					return err
				}
			}

			_, err = a.Ledger.Add(parsedType, description, amount, category, when)
			return err
		},
	}

	cmd.Flags().StringVarP(&txType, "type", "t", "expense", "transaction type (income, expense)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "what the money was for")
	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "amount in dollars")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category name")
	cmd.Flags().StringVar(&date, "date", "", "transaction date (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transactions",
		Aliases: []string{"tx"},
		Short:   "List and manage transactions",
	}

	cmd.AddCommand(transactionsListCmd())
	cmd.AddCommand(transactionsDeleteCmd())
	cmd.AddCommand(transactionsClearCmd())
	return cmd
}

func transactionsListCmd() *cobra.Command {
	var filterType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded transactions",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, cleanup, err := initApp()
			if err != nil {
				return err
			}
			defer cleanup()

			txns := a.Ledger.Transactions()
			if filterType != "" {
				want, err := model.ParseTransactionType(filterType)
				if err != nil {
					return err
				}
				kept := txns[:0:0]
				for _, t := range txns {
					if t.Type == want {
						kept = append(kept, t)
					}
				}
				txns = kept
			}

			fmt.Println(cli.FormatTitle("Transactions"))
			if len(txns) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No transactions recorded yet."))
				return nil
			}

			fmt.Println(cli.TableHeaderStyle.Render(fmt.Sprintf("%-15s %-10s %-12s %-28s %-16s %10s",
				"ID", "DATE", "TYPE", "DESCRIPTION", "CATEGORY", "AMOUNT")))
			for _, t := range txns {
				amount := fmt.Sprintf("$%.2f", t.Amount)
				if t.Type == model.TypeExpense {
					amount = cli.ErrorStyle.Render(amount)
				} else {
					amount = cli.SuccessStyle.Render(amount)
				}
				fmt.Printf("%-15d %-10s %-12s %-28s %-16s %10s\n",
					t.ID, t.Date, t.Type, truncate(t.Description, 28), t.Category, amount)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&filterType, "type", "t", "", "only show this type (income, expense)")
	return cmd
}

func transactionsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a transaction by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid transaction id %q", args[0])
			}

			a, cleanup, err := initApp()
			if err != nil {
				return err
			}
			defer cleanup()

			a.Ledger.Delete(id)
			return nil
		},
	}
}

func transactionsClearCmd() *cobra.Command {
	var (
		period string
		req    session.StepUpRequest
	)

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear financial records for a period",
		Long: `Clear removes every transaction dated within the chosen period ending
today. This is a destructive action and requires the account password
and the exact confirmation phrase.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := ledger.ParsePeriod(period)
			if err != nil {
				return err
			}

			a, cleanup, err := initApp()
			if err != nil {
				return err
			}
			defer cleanup()

			return a.ClearRecords(p, req)
		},
	}

	cmd.Flags().StringVarP(&period, "period", "p", "all", "period to clear (day, week, month, year, all)")
	stepUpFlags(cmd, &req, true, false, false)
	return cmd
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
