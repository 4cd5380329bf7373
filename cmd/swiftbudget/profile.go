package main

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"
	"github.com/wolferonic/swiftbudget/internal/cli"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and edit the user profile",
	}

	cmd.AddCommand(profileShowCmd())
	cmd.AddCommand(profileSetCmd())
	cmd.AddCommand(profileUploadCmd())
	return cmd
}

func profileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current profile",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, cleanup, err := initApp()
			if err != nil {
				return err
			}
			defer cleanup()

			p := a.Profile.Profile()
			fmt.Println(cli.FormatTitle("Profile"))
			fmt.Printf("  %s %s\n", cli.BoldStyle.Render("Name: "), p.Name)
			fmt.Printf("  %s %s\n", cli.BoldStyle.Render("Email:"), p.Email)
			if p.Phone != "" {
				fmt.Printf("  %s %s\n", cli.BoldStyle.Render("Phone:"), p.Phone)
			}
			if p.ProfileImageURL != "" {
				fmt.Printf("  %s %s\n", cli.BoldStyle.Render("Image:"), p.ProfileImageURL)
			}
			return nil
		},
	}
}

func profileSetCmd() *cobra.Command {
	var name, email, phone string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, cleanup, err := initApp()
			if err != nil {
				return err
			}
			defer cleanup()

			next := a.Profile.Profile()
			if cmd.Flags().Changed("name") {
				next.Name = name
			}
			if cmd.Flags().Changed("email") {
				next.Email = email
			}
			if cmd.Flags().Changed("phone") {
				next.Phone = phone
			}

			a.UpdateProfile(next)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "display name")
	cmd.Flags().StringVarP(&email, "email", "e", "", "contact email")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	return cmd
}

func profileUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <image-path>",
		Short: "Upload a profile picture",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			a, cleanup, err := initApp()
			if err != nil {
				return err
			}
			defer cleanup()

			var (
				wg        sync.WaitGroup
				uploadErr error
			)
			wg.Add(1)
			a.Profile.UploadImage(args[0], func(url string, err error) {
				defer wg.Done()
				if err != nil {
					uploadErr = err
					return
				}
				next := a.Profile.Profile()
				next.ProfileImageURL = url
				a.UpdateProfile(next)
				fmt.Println(cli.FormatInfo("Uploaded to " + url))
			})
			wg.Wait()
			return uploadErr
		},
	}
}
