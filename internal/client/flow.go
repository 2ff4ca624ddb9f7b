// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mikhail Levkov

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/mlevkov/go-auth-keeper/internal/adapter"
	"github.com/mlevkov/go-auth-keeper/internal/app"
	"github.com/mlevkov/go-auth-keeper/internal/logger"
)

// ErrUnexpectedServerBehaviour marks a flow step whose response did not
// match the protocol contract (wrong payload, missing failure, etc.).
var ErrUnexpectedServerBehaviour = errors.New("unexpected server behaviour")

// Flow exercises a running server end to end through a [adapter.ServerAdapter].
type Flow struct {
	server adapter.ServerAdapter
	logger *logger.Logger
}

func NewFlow(server adapter.ServerAdapter, logger *logger.Logger) *Flow {
	return &Flow{server: server, logger: logger}
}

// Run walks the full account lifecycle against the target server:
//
//  1. fetch the welcome page;
//  2. register the account, then verify the duplicate is rejected;
//  3. verify login fails with the wrong password;
//  4. verify the profile is inaccessible without a session;
//  5. log in and read the profile;
//  6. log out and verify the session is gone;
//  7. request a reset token and install newPassword with it;
//  8. verify the old password is dead and the new one works.
//
// Any deviation aborts the run with a wrapped [ErrUnexpectedServerBehaviour]
// or the underlying transport error.
func (f *Flow) Run(ctx context.Context, email, password, newPassword string) error {
	welcome, err := f.server.Welcome(ctx)
	if err != nil {
		return fmt.Errorf("welcome page: %w", err)
	}
	if welcome.Message != app.MsgWelcome {
		return fmt.Errorf("%w: welcome message %q", ErrUnexpectedServerBehaviour, welcome.Message)
	}

	if err := f.registerUser(ctx, email, password); err != nil {
		return err
	}
	if err := f.loginWrongPassword(ctx, email, newPassword); err != nil {
		return err
	}
	if err := f.profileUnlogged(ctx); err != nil {
		return err
	}
	if err := f.loginAndReadProfile(ctx, email, password); err != nil {
		return err
	}
	if err := f.logout(ctx); err != nil {
		return err
	}
	if err := f.resetPassword(ctx, email, newPassword); err != nil {
		return err
	}
	if err := f.verifyNewPassword(ctx, email, password, newPassword); err != nil {
		return err
	}

	f.logger.Info().Str("email", email).Msg("full account lifecycle verified")
	return nil
}

func (f *Flow) registerUser(ctx context.Context, email, password string) error {
	created, err := f.server.Register(ctx, email, password)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	if created.Message != app.MsgUserCreated || created.Email != email {
		return fmt.Errorf("%w: registration response %+v", ErrUnexpectedServerBehaviour, created)
	}
	f.logger.Debug().Str("email", email).Msg("user registered")

	if _, err := f.server.Register(ctx, email, password); !errors.Is(err, adapter.ErrBadRequest) {
		return fmt.Errorf("%w: duplicate registration was not rejected (err=%v)", ErrUnexpectedServerBehaviour, err)
	}
	f.logger.Debug().Msg("duplicate registration rejected")
	return nil
}

func (f *Flow) loginWrongPassword(ctx context.Context, email, wrongPassword string) error {
	if _, err := f.server.Login(ctx, email, wrongPassword); !errors.Is(err, adapter.ErrUnauthorized) {
		return fmt.Errorf("%w: login with wrong password was not rejected (err=%v)", ErrUnexpectedServerBehaviour, err)
	}
	f.logger.Debug().Msg("wrong password rejected")
	return nil
}

func (f *Flow) profileUnlogged(ctx context.Context) error {
	f.server.SetSessionToken("")
	if _, err := f.server.Profile(ctx); !errors.Is(err, adapter.ErrForbidden) {
		return fmt.Errorf("%w: profile without session was not rejected (err=%v)", ErrUnexpectedServerBehaviour, err)
	}
	f.logger.Debug().Msg("profile without session rejected")
	return nil
}

func (f *Flow) loginAndReadProfile(ctx context.Context, email, password string) error {
	loggedIn, err := f.server.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if loggedIn.Message != app.MsgLoggedIn || loggedIn.Email != email {
		return fmt.Errorf("%w: login response %+v", ErrUnexpectedServerBehaviour, loggedIn)
	}

	profile, err := f.server.Profile(ctx)
	if err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	if profile.Email != email {
		return fmt.Errorf("%w: profile email %q", ErrUnexpectedServerBehaviour, profile.Email)
	}
	f.logger.Debug().Str("email", profile.Email).Msg("profile read with open session")
	return nil
}

func (f *Flow) logout(ctx context.Context) error {
	token := f.server.SessionToken()

	if err := f.server.Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	// the closed session must no longer resolve
	f.server.SetSessionToken(token)
	if _, err := f.server.Profile(ctx); !errors.Is(err, adapter.ErrForbidden) {
		return fmt.Errorf("%w: closed session still resolves (err=%v)", ErrUnexpectedServerBehaviour, err)
	}
	f.server.SetSessionToken("")
	f.logger.Debug().Msg("logout verified")
	return nil
}

func (f *Flow) resetPassword(ctx context.Context, email, newPassword string) error {
	issued, err := f.server.RequestReset(ctx, email)
	if err != nil {
		return fmt.Errorf("reset token request: %w", err)
	}
	if issued.Email != email || issued.ResetToken == "" {
		return fmt.Errorf("%w: reset token response %+v", ErrUnexpectedServerBehaviour, issued)
	}

	updated, err := f.server.ConfirmReset(ctx, email, issued.ResetToken, newPassword)
	if err != nil {
		return fmt.Errorf("password update: %w", err)
	}
	if updated.Message != app.MsgPasswordUpdated || updated.Email != email {
		return fmt.Errorf("%w: password update response %+v", ErrUnexpectedServerBehaviour, updated)
	}

	// a consumed reset token must be dead
	if _, err := f.server.ConfirmReset(ctx, email, issued.ResetToken, newPassword); !errors.Is(err, adapter.ErrForbidden) {
		return fmt.Errorf("%w: consumed reset token was accepted again (err=%v)", ErrUnexpectedServerBehaviour, err)
	}
	f.logger.Debug().Msg("password reset verified")
	return nil
}

func (f *Flow) verifyNewPassword(ctx context.Context, email, oldPassword, newPassword string) error {
	if _, err := f.server.Login(ctx, email, oldPassword); !errors.Is(err, adapter.ErrUnauthorized) {
		return fmt.Errorf("%w: old password still works after reset (err=%v)", ErrUnexpectedServerBehaviour, err)
	}

	if _, err := f.server.Login(ctx, email, newPassword); err != nil {
		return fmt.Errorf("login with new password: %w", err)
	}
	f.logger.Debug().Msg("new password verified")
	return nil
}
