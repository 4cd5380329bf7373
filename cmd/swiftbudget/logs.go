package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wolferonic/swiftbudget/internal/cli"
	"github.com/wolferonic/swiftbudget/internal/session"
)

func logsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "View and clear the activity log",
	}

	cmd.AddCommand(logsListCmd())
	cmd.AddCommand(logsClearCmd())
	return cmd
}

func logsListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List activity log entries, newest first",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, cleanup, err := initApp()
			if err != nil {
				return err
			}
			defer cleanup()

			entries, err := a.LogEntries()
			if err != nil {
				return err
			}
			if limit > 0 && len(entries) > limit {
				entries = entries[:limit]
			}

			fmt.Println(cli.FormatTitle("Activity Log"))
			if len(entries) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No activity recorded."))
				return nil
			}
			for _, e := range entries {
				fmt.Printf("%s  %s\n", cli.SubtleStyle.Render(e.Timestamp.Format("2006-01-02 15:04:05")), cli.BoldStyle.Render(e.Type))
				fmt.Printf("    %s\n", e.Details)
				fmt.Printf("    %s\n", cli.SubtleStyle.Render(fmt.Sprintf("%s · %s · %s", e.Browser, e.OS, e.Device)))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "show at most this many entries (0 = all)")
	return cmd
}

func logsClearCmd() *cobra.Command {
	var req session.StepUpRequest

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all activity log entries",
		Long: `Clear deletes every activity log entry and requires the account
password, the 4-digit PIN and the --agree flag. The deletion itself is
recorded, so one entry remains afterwards.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			a, cleanup, err := initApp()
			if err != nil {
				return err
			}
			defer cleanup()

			return a.ClearLogs(req)
		},
	}

	stepUpFlags(cmd, &req, false, true, true)
	return cmd
}
