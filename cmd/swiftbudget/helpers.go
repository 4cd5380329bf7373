package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wolferonic/swiftbudget/internal/app"
	"github.com/wolferonic/swiftbudget/internal/common"
	"github.com/wolferonic/swiftbudget/internal/config"
	"github.com/wolferonic/swiftbudget/internal/notify"
	"github.com/wolferonic/swiftbudget/internal/session"
	"github.com/wolferonic/swiftbudget/internal/storage"
)

// initApp opens the configured database and assembles the application.
// The returned cleanup closes the store.
func initApp() (*app.App, func(), error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	} else {
		dbPath = config.ExpandPath(dbPath)
	}

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open budget database: %w", err)
	}

	// Each invocation is one short-lived process, so the cosmetic delays
	// (logout, post-wipe reload, upload) must complete before RunE
	// returns or the session clear would never happen.
	a := app.New(store, notify.NewConsole(), app.Options{
		Verifier: session.FixedVerifier{
			CollaboratorSecret: viper.GetString("auth.collaborator_secret"),
			StepUpPassword:     viper.GetString("auth.stepup_password"),
			StepUpPIN:          viper.GetString("auth.stepup_pin"),
		},
		Scheduler: common.ImmediateScheduler{},
	})
	return a, func() { _ = store.Close() }, nil
}

// stepUpFlags attaches the flags every step-up confirmation collects.
func stepUpFlags(cmd *cobra.Command, req *session.StepUpRequest, withPhrase, withPIN, withAck bool) {
	if withPhrase {
		cmd.Flags().StringVar(&req.Phrase, "phrase", "", "exact confirmation phrase")
	}
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")
	if withPIN {
		cmd.Flags().StringVar(&req.PIN, "pin", "", "4-digit PIN")
	}
	if withAck {
		cmd.Flags().BoolVar(&req.Acknowledged, "agree", false, "acknowledge the consequences")
	}
}
