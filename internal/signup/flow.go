// Package signup drives the multi-step account creation and verification
// flow: collect credentials, register, collect a 6-digit code, verify.
package signup

import (
	"errors"
	"fmt"

	"github.com/campusevents/cli/internal/api"
	"github.com/campusevents/cli/internal/validate"
)

// State is the flow's current position.
type State int

const (
	CollectingCredentials State = iota
	Submitting
	AwaitingCode
	Verifying
	Verified
)

func (s State) String() string {
	switch s {
	case CollectingCredentials:
		return "collecting credentials"
	case Submitting:
		return "submitting"
	case AwaitingCode:
		return "awaiting code"
	case Verifying:
		return "verifying"
	case Verified:
		return "verified"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Flow is the account creation state machine. Submitting and Verifying fall
// back to their prior state on failure, keeping the error message so the UI
// can show it and let the user retry.
type Flow struct {
	client *api.Client

	state   State
	email   string
	pass    string
	lastErr string
}

// New returns a Flow in CollectingCredentials.
func New(client *api.Client) *Flow {
	return &Flow{client: client, state: CollectingCredentials}
}

// State returns the current state.
func (f *Flow) State() State { return f.state }

// LastError returns the user-visible message from the most recent failure.
func (f *Flow) LastError() string { return f.lastErr }

// AccountID returns the identifier derived from the submitted email; empty
// until credentials pass their guards.
func (f *Flow) AccountID() string {
	if f.email == "" {
		return ""
	}
	return validate.AccountID(f.email)
}

// Submit runs the credential guards and, when they pass, registers the
// account. On success the flow advances to AwaitingCode; on failure it
// returns to CollectingCredentials with the error recorded.
func (f *Flow) Submit(email, password, confirm string) error {
	if f.state != CollectingCredentials {
		return fmt.Errorf("cannot submit while %s", f.state)
	}

	if err := validate.CheckEmail(email); err != nil {
		f.lastErr = err.Error()
		return err
	}
	if check := validate.CheckPassword(password); !check.OK() {
		err := fmt.Errorf("password must contain %s", joinFailures(check.Failures()))
		f.lastErr = err.Error()
		return err
	}
	if confirm != password {
		err := errors.New("passwords do not match")
		f.lastErr = err.Error()
		return err
	}

	f.email = email
	f.pass = password

	f.state = Submitting
	if err := f.register(); err != nil {
		f.state = CollectingCredentials
		f.lastErr = userMessage(err)
		return err
	}

	f.state = AwaitingCode
	f.lastErr = ""
	return nil
}

// Verify submits the entered code. On success the flow reaches Verified; on
// failure it returns to AwaitingCode so the user can re-enter or resend.
func (f *Flow) Verify(code string) error {
	if f.state != AwaitingCode {
		return fmt.Errorf("cannot verify while %s", f.state)
	}
	if err := validate.CheckCode(code); err != nil {
		f.lastErr = err.Error()
		return err
	}

	f.state = Verifying
	if err := f.client.Verify(f.AccountID(), code); err != nil {
		f.state = AwaitingCode
		f.lastErr = userMessage(err)
		return err
	}

	f.state = Verified
	f.lastErr = ""
	return nil
}

// Resend re-invokes registration so the backend issues a fresh code.
func (f *Flow) Resend() error {
	if f.state != AwaitingCode {
		return fmt.Errorf("cannot resend while %s", f.state)
	}
	if err := f.register(); err != nil {
		f.lastErr = userMessage(err)
		return err
	}
	f.lastErr = ""
	return nil
}

func (f *Flow) register() error {
	req := api.RegisterRequest{
		AccountID:   validate.AccountID(f.email),
		AccountType: validate.AccountType(f.email),
		Email:       f.email,
		Password:    f.pass,
	}
	_, err := f.client.Register(req)
	return err
}

// userMessage maps an error to the text shown to the user: a structured
// server detail when present, a generic failure otherwise.
func userMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "request failed — please try again"
}

func joinFailures(failures []string) string {
	switch len(failures) {
	case 0:
		return ""
	case 1:
		return failures[0]
	}
	out := failures[0]
	for _, f := range failures[1 : len(failures)-1] {
		out += ", " + f
	}
	return out + " and " + failures[len(failures)-1]
}
