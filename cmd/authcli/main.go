package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mlevkov/go-auth-keeper/internal/adapter"
	"github.com/mlevkov/go-auth-keeper/internal/client"
	"github.com/mlevkov/go-auth-keeper/internal/config"
	"github.com/mlevkov/go-auth-keeper/internal/logger"
	"github.com/mlevkov/go-auth-keeper/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("auth-keeper-cli")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx := context.Background()

	// AUTH_MODE=interactive opens the console UI; the default mode runs the
	// scripted account lifecycle check against the target server.
	if envOrDefault("AUTH_MODE", "check") == "interactive" {
		ui, err := tui.New(serverAdapter, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating ui")
		}

		if err = ui.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
			log.Fatal().Err(err).Msg("console session failed")
		}
		return
	}

	flow := client.NewFlow(serverAdapter, log)

	email := envOrDefault("AUTH_EMAIL", "guillaume@holberton.io")
	password := envOrDefault("AUTH_PASSWORD", "b4l0u")
	newPassword := envOrDefault("AUTH_NEW_PASSWORD", "t4rt1fl3tt3")

	if err = flow.Run(ctx, email, password, newPassword); err != nil {
		log.Fatal().Err(err).Msg("account lifecycle check failed")
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
