// Package session implements the mock account gate: login, signup,
// logout, and the step-up confirmation required before destructive
// actions.
package session

// Verifier checks the fixed demo secrets. It exists so the gate's state
// machine can be tested independently of the placeholder values; this is
// a convenience gate, not a security system.
type Verifier interface {
	// VerifyCollaborator checks the shared collaborator secret.
	VerifyCollaborator(password string) bool
	// VerifyStepUpPassword checks the step-up account password.
	VerifyStepUpPassword(password string) bool
	// VerifyStepUpPIN checks the 4-digit step-up PIN.
	VerifyStepUpPIN(pin string) bool
}

// FixedVerifier matches credentials against fixed plain values. The demo
// deliberately reveals these in its UI hints.
type FixedVerifier struct {
	CollaboratorSecret string
	StepUpPassword     string
	StepUpPIN          string
}

// DefaultVerifier returns the demo secrets the original ships with.
func DefaultVerifier() FixedVerifier {
	return FixedVerifier{
		CollaboratorSecret: "collaborator123",
		StepUpPassword:     "password123",
		StepUpPIN:          "1234",
	}
}

// VerifyCollaborator checks the shared collaborator secret.
func (v FixedVerifier) VerifyCollaborator(password string) bool {
	return password == v.CollaboratorSecret
}

// VerifyStepUpPassword checks the step-up account password.
func (v FixedVerifier) VerifyStepUpPassword(password string) bool {
	return password == v.StepUpPassword
}

// VerifyStepUpPIN checks the 4-digit step-up PIN.
func (v FixedVerifier) VerifyStepUpPIN(pin string) bool {
	return pin == v.StepUpPIN
}
