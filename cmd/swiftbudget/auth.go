package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wolferonic/swiftbudget/internal/cli"
	"github.com/wolferonic/swiftbudget/internal/session"
)

func loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in as the account owner or a collaborator",
		Long: `Login establishes a session. Owners sign in with the email and password
they registered with; collaborators sign in with their registered email
and the shared collaborator password.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			a, cleanup, err := initApp()
			if err != nil {
				return err
			}
			defer cleanup()

			_, err = a.Login(email, password)
			return err
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func signupCmd() *cobra.Command {
	var name, email, password, confirm string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create the owner account",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, cleanup, err := initApp()
			if err != nil {
				return err
			}
			defer cleanup()

			_, err = a.Signup(name, email, password, confirm)
			return err
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "display name")
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (at least 6 characters)")
	cmd.Flags().StringVar(&confirm, "confirm-password", "", "repeat the password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("confirm-password")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, cleanup, err := initApp()
			if err != nil {
				return err
			}
			defer cleanup()

			a.Gate.Logout()
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, cleanup, err := initApp()
			if err != nil {
				return err
			}
			defer cleanup()

			user := a.Gate.CurrentUser()
			if user == nil {
				fmt.Println(cli.SubtleStyle.Render("Not signed in."))
				return nil
			}
			fmt.Printf("%s %s (%s, %s)\n", cli.BoldStyle.Render(user.Name), user.Email, user.Role, a.Theme()+" theme")
			return nil
		},
	}
}

func accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Owner-only account actions",
	}

	cmd.AddCommand(accountDeleteCmd())
	return cmd
}

func accountDeleteCmd() *cobra.Command {
	var req session.StepUpRequest

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Permanently delete the account and all data",
		Long: fmt.Sprintf(`Delete wipes every stored collection: transactions, budgets,
categories, collaborators, profile and activity logs. It requires the
account password, the 4-digit PIN, the exact phrase
%q and the --agree flag.`, session.DeleteAccountPhrase),
		RunE: func(_ *cobra.Command, _ []string) error {
			a, cleanup, err := initApp()
			if err != nil {
				return err
			}
			defer cleanup()

			return a.DeleteAccount(req)
		},
	}

	stepUpFlags(cmd, &req, true, true, true)
	return cmd
}
