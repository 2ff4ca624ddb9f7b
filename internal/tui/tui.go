// Package tui implements the interactive console mode of the authcli binary.
// It is a Bubble Tea application driving a running server through
// [adapter.ServerAdapter]: account registration, login, profile view,
// password reset and logout.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mlevkov/go-auth-keeper/internal/adapter"
	"github.com/mlevkov/go-auth-keeper/internal/logger"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	server adapter.ServerAdapter
}

func New(server adapter.ServerAdapter, _ *logger.Logger) (*TUI, error) {
	return &TUI{server: server}, nil
}

// Run starts the console session and blocks until the user quits.
// Returns [ErrUserQuit] when the session ended with ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.server),
		"register": NewRegisterModel(ctx, t.server),
		"account":  NewAccountModel(ctx, t.server),
	}

	root := NewRootModel(pages, "menu")
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
