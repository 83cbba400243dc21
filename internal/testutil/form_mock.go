package testutil

import (
	"github.com/hbjs97/dotx/internal/setup"
)

// FakeFormRunner returns pre-configured answers for setup forms.
type FakeFormRunner struct {
	// Input is returned from RunSetupForm. If nil, the defaults are echoed back.
	Input *setup.Input

	// Confirm is returned from RunConfirm.
	Confirm bool

	// Err, when set, is returned from every method.
	Err error

	// ConfirmMessages records the messages passed to RunConfirm.
	ConfirmMessages []string
}

var _ setup.FormRunner = (*FakeFormRunner)(nil)

// RunSetupForm returns the pre-configured input or echoes the defaults.
func (f *FakeFormRunner) RunSetupForm(defaults *setup.Input) (*setup.Input, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	if f.Input != nil {
		return f.Input, nil
	}
	out := *defaults
	return &out, nil
}

// RunConfirm records the message and returns the pre-configured answer.
func (f *FakeFormRunner) RunConfirm(message string) (bool, error) {
	f.ConfirmMessages = append(f.ConfirmMessages, message)
	if f.Err != nil {
		return false, f.Err
	}
	return f.Confirm, nil
}
