// Package cli wires the cobra commands for sentiment-analyzer.
package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spacesedan/sentiment-analyzer/config"
	"github.com/spacesedan/sentiment-analyzer/internal/logging"
	"github.com/spf13/cobra"
)

// settings is filled once per invocation by the root PersistentPreRunE.
var settings config.Settings

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "sentiment-analyzer",
		Short: "Send comments to a sentiment analysis endpoint and show the results",
		Long: `sentiment-analyzer submits either a CSV/text file or a block of comments
(one per line) to a remote sentiment endpoint and renders the returned
distribution, scores, themes and per-comment breakdown.`,
		SilenceUsage:      true,
		PersistentPreRunE: loadSettings,
	}

	root.PersistentFlags().String("endpoint", "", "sentiment endpoint URL (overrides SENTIMENT_ENDPOINT)")
	root.PersistentFlags().String("log-level", "", "debug, info, warn or error (overrides SENTIMENT_LOG_LEVEL)")
	root.PersistentFlags().String("env-file", "", "dotenv file to load (default $SENTIMENT_ENV_DIR/.env.$APP_ENV)")

	root.AddCommand(
		newAnalyzeCmd(),
		newTUICmd(),
		newServeDevCmd(),
		newVersionCmd(),
	)
	return root
}

func loadSettings(cmd *cobra.Command, args []string) error {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}

	envFile, _ := cmd.Flags().GetString("env-file")
	explicit := envFile != ""
	if !explicit {
		envFile = config.EnvFile(os.Getenv("SENTIMENT_ENV_DIR"), env)
	}
	envErr := config.LoadEnv(envFile)
	if envErr != nil && (explicit || !errors.Is(envErr, fs.ErrNotExist)) {
		return envErr
	}

	s, err := config.Load()
	if err != nil {
		return err
	}

	if endpoint, _ := cmd.Flags().GetString("endpoint"); endpoint != "" {
		s.Endpoint = endpoint
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		s.LogLevel = level
	}
	settings = s

	logging.InitLoggerTo(cmd.ErrOrStderr(), s.LogLevel, !s.IsProduction())

	if envErr != nil {
		level := slog.LevelWarn
		if s.IsProduction() {
			level = slog.LevelDebug
		}
		slog.Log(cmd.Context(), level, "[Config] No .env file found, using OS environment",
			slog.String("file", envFile))
	}
	return nil
}

// openLogFile is used by commands that own the terminal.
func openLogFile(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
