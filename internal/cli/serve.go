package cli

import (
	"github.com/spacesedan/sentiment-analyzer/internal/clients"
	"github.com/spacesedan/sentiment-analyzer/internal/devserver"
	"github.com/spf13/cobra"
)

func newServeDevCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve-dev",
		Short: "Run a local stand-in for the sentiment endpoint",
		Long: `Start an HTTP server that accepts the same requests as the real
sentiment endpoint and answers with VADER-only scores. Meant for local
development; it is not the production analysis service.

The distilbert and distilbert_confidence values are synthetic: they are
0.5 + |vader|/2, not output from a DistilBERT model.

Themes and the explanation come from a local word count. When
OPENAI_API_KEY is set they are generated by OpenAI (OPENAI_MODEL,
OPENAI_BASE_URL), falling back to the word count if the call fails.

Endpoints:
  GET  /health
  POST /api/sentiment/`,
		Args: cobra.NoArgs,
		RunE: runServeDev,
	}
	cmd.Flags().StringP("addr", "a", "", "address to listen on (overrides DEV_SERVER_ADDR)")
	return cmd
}

func runServeDev(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = settings.DevServerAddr
	}
	ai := clients.NewOpenAIClient(settings.OpenAIKey, settings.OpenAIModel, settings.OpenAIBaseURL)
	return devserver.New(addr, devserver.WithOpenAI(ai)).ListenAndServe()
}
