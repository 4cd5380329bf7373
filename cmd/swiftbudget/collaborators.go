package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wolferonic/swiftbudget/internal/cli"
)

func collaboratorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collaborators",
		Short: "Manage collaborator access",
		Long: `Collaborators sign in with their registered email and the shared
collaborator password. They can view and record transactions but cannot
reach the owner-only danger zone.`,
	}

	cmd.AddCommand(collaboratorsListCmd())
	cmd.AddCommand(collaboratorsAddCmd())
	cmd.AddCommand(collaboratorsRemoveCmd())
	cmd.AddCommand(collaboratorsResetPasswordCmd())
	return cmd
}

func collaboratorsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered collaborator emails",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, cleanup, err := initApp()
			if err != nil {
				return err
			}
			defer cleanup()

			emails := a.Collaborators.Emails()
			fmt.Println(cli.FormatTitle("Collaborators"))
			if len(emails) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No collaborators registered."))
				return nil
			}
			for _, email := range emails {
				fmt.Printf("  %s\n", email)
			}
			return nil
		},
	}
}

func collaboratorsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <email>",
		Short: "Register a collaborator email",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			a, cleanup, err := initApp()
			if err != nil {
				return err
			}
			defer cleanup()

			return a.Collaborators.Add(args[0])
		},
	}
}

func collaboratorsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <email>",
		Short: "Remove a collaborator email",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			a, cleanup, err := initApp()
			if err != nil {
				return err
			}
			defer cleanup()

			a.Collaborators.Remove(args[0])
			return nil
		},
	}
}

func collaboratorsResetPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-password <email>",
		Short: "Send a password reset link to a collaborator",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			a, cleanup, err := initApp()
			if err != nil {
				return err
			}
			defer cleanup()

			a.Gate.ResetCollaboratorPassword(args[0])
			return nil
		},
	}
}
