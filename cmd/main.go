package main

import (
	"context"
	"errors"
	"os"

	"github.com/duartefn/escala/internal/scheduler"
	"github.com/duartefn/escala/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warn("ignoring unreadable config.toml", "err", err)
		}
	}

	runner, err := NewRunner(RunnerOpts{Config: config, Logger: logger})
	if err != nil {
		logger.Fatalf("failed to initialize storage: %v", err)
	}
	defer runner.Close()

	app := &cli.Command{
		Name:     "escala",
		Usage:    "Gerencie a escala de discursos públicos",
		Version:  "1.0.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		var vErr *scheduler.ValidationError
		if errors.As(err, &vErr) {
			// Rejected submissions are user feedback, not application errors.
			for _, msg := range vErr.Messages {
				runner.writePlain("✗ %s\n", msg)
			}
			os.Exit(1)
		}
		if errors.Is(err, shared.ErrInvalidImport) {
			runner.writePlain("✗ %s\n", shared.ErrInvalidImport.Error())
			os.Exit(1)
		}
		logger.Fatalf("application error: %v", err)
	}
}
