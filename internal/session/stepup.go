package session

import (
	"errors"

	"github.com/wolferonic/swiftbudget/internal/notify"
)

// Confirmation phrases the user must type verbatim.
const (
	// DeleteAccountPhrase guards account deletion.
	DeleteAccountPhrase = "Yes, I want to delete my account"
	// ClearRecordsPhrase guards clearing financial records.
	ClearRecordsPhrase = "yes delete my finance record track"
)

// StepUpAction names a destructive action guarded by step-up
// confirmation. Each action demands its own combination of factors.
type StepUpAction int

const (
	// ActionDeleteAccount requires phrase, password, PIN and an explicit
	// acknowledgement.
	ActionDeleteAccount StepUpAction = iota
	// ActionClearRecords requires phrase and password.
	ActionClearRecords
	// ActionClearLogs requires password, PIN and an explicit
	// acknowledgement.
	ActionClearLogs
)

// StepUpRequest carries everything the user supplied for a step-up
// confirmation.
type StepUpRequest struct {
	Phrase       string
	Password     string
	PIN          string
	Acknowledged bool
}

// Step-up rejection errors. Each maps to a distinguishable notice.
var (
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrIncorrectPIN      = errors.New("incorrect PIN")
	ErrPhraseMismatch    = errors.New("confirmation phrase mismatch")
	ErrNotAcknowledged   = errors.New("terms not acknowledged")
)

// VerifyStepUp checks every factor the action demands. All conditions
// must hold at once; the first failing factor (in the action's fixed
// precedence) produces its specific notice and an error, and the caller
// must perform no mutation.
func (g *Gate) VerifyStepUp(action StepUpAction, req StepUpRequest) error {
	passwordOK := g.verifier.VerifyStepUpPassword(req.Password)
	pinOK := g.verifier.VerifyStepUpPIN(req.PIN)

	switch action {
	case ActionDeleteAccount:
		switch {
		case !passwordOK:
			g.notifier.Notify("Incorrect password. Please try again.", notify.Error)
			return ErrIncorrectPassword
		case !pinOK:
			g.notifier.Notify("Incorrect PIN. Please try again.", notify.Error)
			return ErrIncorrectPIN
		case req.Phrase != DeleteAccountPhrase:
			g.notifier.Notify("Confirmation phrase is incorrect.", notify.Error)
			return ErrPhraseMismatch
		case !req.Acknowledged:
			g.notifier.Notify("You must agree to the terms to proceed.", notify.Warning)
			return ErrNotAcknowledged
		}
		return nil

	case ActionClearRecords:
		switch {
		case !passwordOK:
			g.notifier.Notify("Incorrect password. Please try again.", notify.Error)
			return ErrIncorrectPassword
		case req.Phrase != ClearRecordsPhrase:
			g.notifier.Notify("Confirmation phrase is incorrect.", notify.Error)
			return ErrPhraseMismatch
		}
		return nil

	case ActionClearLogs:
		switch {
		case !req.Acknowledged:
			g.notifier.Notify("You must agree to the terms to proceed.", notify.Warning)
			return ErrNotAcknowledged
		case !passwordOK || !pinOK:
			g.notifier.Notify("Incorrect password or PIN. Please try again.", notify.Error)
			if !passwordOK {
				return ErrIncorrectPassword
			}
			return ErrIncorrectPIN
		}
		return nil

	default:
		return errors.New("unknown step-up action")
	}
}
