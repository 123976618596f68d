package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spacesedan/sentiment-analyzer/internal/clients"
	"github.com/spacesedan/sentiment-analyzer/internal/render"
	"github.com/spacesedan/sentiment-analyzer/internal/submission"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Submit a file or comments once and print the analysis",
		Long: `Submit exactly one request to the sentiment endpoint.

File mode sends the file as a multipart upload:
  sentiment-analyzer analyze --file feedback.csv

Manual mode sends one comment per non-empty line as JSON:
  sentiment-analyzer analyze --comments $'Great!\nTerrible service'
  cat comments.txt | sentiment-analyzer analyze --stdin`,
		Args: cobra.NoArgs,
		RunE: runAnalyze,
	}

	cmd.Flags().StringP("file", "f", "", "CSV or text file to upload")
	cmd.Flags().StringP("comments", "c", "", "comments, one per line")
	cmd.Flags().Bool("stdin", false, "read comments from standard input")
	cmd.Flags().Bool("json", false, "print the result as JSON")
	cmd.MarkFlagsMutuallyExclusive("file", "comments", "stdin")
	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	comments, _ := cmd.Flags().GetString("comments")
	fromStdin, _ := cmd.Flags().GetBool("stdin")
	asJSON, _ := cmd.Flags().GetBool("json")

	ctrl := submission.New(clients.NewSentimentClient(settings.Endpoint, settings.Timeout))

	switch {
	case path != "":
		file, err := submission.LoadStagedFile(path)
		if err != nil {
			return err
		}
		ctrl.StageFile(file)
	case fromStdin:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		comments = string(data)
		fallthrough
	case cmd.Flags().Changed("comments"):
		if err := ctrl.SetInputMode(submission.ModeManual); err != nil {
			return err
		}
		ctrl.StageText(comments)
	default:
		return errors.New("one of --file, --comments or --stdin is required")
	}

	if err := ctrl.Submit(cmd.Context()); err != nil {
		if errors.Is(err, submission.ErrEmptyInput) {
			return errors.New("nothing to analyze: input is empty")
		}
		return err
	}

	snap := ctrl.Snapshot()
	if snap.State == submission.StateFailed {
		return fmt.Errorf("%s: %w", snap.Error, ctrl.LastError())
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(snap.Result)
	}

	fmt.Fprint(out, render.Result(snap.Result))
	return nil
}
