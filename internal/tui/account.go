// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Levkov

package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mlevkov/go-auth-keeper/internal/adapter"
)

// AccountModel is the logged-in page: it shows the profile email and drives
// the password reset flow. Hotkeys: r requests a reset token, c copies it to
// the clipboard, p opens the new-password prompt, l logs out.
type AccountModel struct {
	ctx    context.Context
	server adapter.ServerAdapter

	email      string
	resetToken string

	passwordInput   textinput.Model
	enteringNewPass bool

	status string
	errMsg string
}

func NewAccountModel(ctx context.Context, server adapter.ServerAdapter) *AccountModel {
	passwordInput := textinput.New()
	passwordInput.Placeholder = "new password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &AccountModel{
		ctx:           ctx,
		server:        server,
		passwordInput: passwordInput,
	}
}

func (m *AccountModel) Init() tea.Cmd {
	return m.cmdProfile()
}

func (m *AccountModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch result := msg.(type) {
	case profileResult:
		if result.err != nil {
			// the session is gone; back to the menu
			m.server.SetSessionToken("")
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		}
		m.email = result.email
		return m, nil

	case resetIssuedResult:
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		m.resetToken = result.token
		m.errMsg = ""
		m.status = "reset token issued"
		return m, nil

	case copiedMsg:
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
		} else {
			m.status = "reset token copied to clipboard"
		}
		return m, nil

	case resetConfirmResult:
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		// the password change revoked the session server-side
		m.server.SetSessionToken("")
		m.reset()
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }

	case logoutResult:
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		m.reset()
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.enteringNewPass {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.enteringNewPass = false
			m.passwordInput.SetValue("")
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			newPass := m.passwordInput.Value()
			if newPass == "" {
				m.errMsg = "new password is required"
				return m, nil
			}
			m.errMsg = ""
			return m, m.cmdConfirmReset(newPass)
		}

		var cmd tea.Cmd
		m.passwordInput, cmd = m.passwordInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.reset):
		m.status = ""
		return m, m.cmdRequestReset()
	case key.Matches(keyMsg, keys.copy):
		if m.resetToken == "" {
			m.errMsg = "no reset token yet, press r first"
			return m, nil
		}
		return m, m.cmdCopyToken()
	case key.Matches(keyMsg, keys.password):
		if m.resetToken == "" {
			m.errMsg = "no reset token yet, press r first"
			return m, nil
		}
		m.errMsg = ""
		m.enteringNewPass = true
		m.passwordInput.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.logout):
		return m, m.cmdLogout()
	}

	return m, nil
}

func (m *AccountModel) View() string {
	var b strings.Builder
	b.WriteString("Email: ")
	b.WriteString(m.email)
	b.WriteString("\n")

	if m.resetToken != "" {
		b.WriteString("Reset token: ")
		b.WriteString(m.resetToken)
		b.WriteString("\n")
	}

	if m.enteringNewPass {
		b.WriteString("\nNew password │ [")
		b.WriteString(m.passwordInput.View())
		b.WriteString("]\n")
	}

	if m.status != "" {
		b.WriteString("\nOK: ")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	hotKeys := "r: reset token │ c: copy token │ p: change password │ l: logout"
	if m.enteringNewPass {
		hotKeys = "esc: cancel │ enter: confirm"
	}
	return renderPage("ACCOUNT", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *AccountModel) reset() {
	m.email = ""
	m.resetToken = ""
	m.enteringNewPass = false
	m.passwordInput.SetValue("")
	m.status = ""
	m.errMsg = ""
}

func (m *AccountModel) cmdProfile() tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		profile, err := server.Profile(ctx)
		return profileResult{email: profile.Email, err: err}
	}
}

func (m *AccountModel) cmdRequestReset() tea.Cmd {
	ctx := m.ctx
	server := m.server
	email := m.email

	return func() tea.Msg {
		issued, err := server.RequestReset(ctx, email)
		return resetIssuedResult{token: issued.ResetToken, err: err}
	}
}

func (m *AccountModel) cmdCopyToken() tea.Cmd {
	token := m.resetToken

	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(token)}
	}
}

func (m *AccountModel) cmdConfirmReset(newPass string) tea.Cmd {
	ctx := m.ctx
	server := m.server
	email := m.email
	token := m.resetToken

	return func() tea.Msg {
		_, err := server.ConfirmReset(ctx, email, token, newPass)
		return resetConfirmResult{err: err}
	}
}

func (m *AccountModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	server := m.server

	return func() tea.Msg {
		return logoutResult{err: server.Logout(ctx)}
	}
}
