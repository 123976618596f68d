package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spacesedan/sentiment-analyzer/internal/clients"
	"github.com/spacesedan/sentiment-analyzer/internal/logging"
	"github.com/spacesedan/sentiment-analyzer/internal/submission"
	"github.com/spacesedan/sentiment-analyzer/internal/tui"
	"github.com/spf13/cobra"
)

func newTUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive analyzer",
		Long: `Open an interactive session. Tab switches between file upload and
manual comments, ctrl+s submits, esc quits. Logs go to SENTIMENT_LOG_FILE
when set and are discarded otherwise.`,
		Args: cobra.NoArgs,
		RunE: runTUI,
	}
	cmd.Flags().StringP("mode", "m", string(submission.ModeFile), "initial input mode: file or manual")
	return cmd
}

func runTUI(cmd *cobra.Command, args []string) error {
	modeFlag, _ := cmd.Flags().GetString("mode")
	mode, err := submission.ParseInputMode(modeFlag)
	if err != nil {
		return err
	}

	logFile, err := openLogFile(settings.LogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logging.InitLoggerTo(logFile, settings.LogLevel, !settings.IsProduction())

	// p is set before Run, and transitions only happen while it runs.
	var p *tea.Program
	ctrl := submission.New(
		clients.NewSentimentClient(settings.Endpoint, settings.Timeout),
		submission.WithInitialMode(mode),
		submission.WithObserver(tui.ForwardTransitions(func(msg tea.Msg) {
			p.Send(msg)
		})),
	)

	p = tea.NewProgram(tui.New(ctrl), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}
