package tui

import tea "github.com/charmbracelet/bubbletea"

// NavigateTo switches the active page. An optional Payload is re-dispatched
// to the target page right after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// RegisterSuccessNotice is shown on the menu after a successful registration.
type RegisterSuccessNotice struct {
	Email string
}

type loginResult struct {
	email string
	err   error
}

type registerResult struct {
	email string
	err   error
}

type profileResult struct {
	email string
	err   error
}

type resetIssuedResult struct {
	token string
	err   error
}

type resetConfirmResult struct {
	err error
}

type logoutResult struct {
	err error
}

type copiedMsg struct {
	err error
}
