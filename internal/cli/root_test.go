package cli

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spacesedan/sentiment-analyzer/internal/devserver"
	"github.com/spacesedan/sentiment-analyzer/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func devEndpoint(t *testing.T) string {
	t.Helper()
	server := httptest.NewServer(devserver.New(":0").Handler())
	t.Cleanup(server.Close)
	return server.URL + devserver.SENTIMENT_PATH
}

func TestRootCommandHasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range newRootCmd().Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"analyze", "tui", "serve-dev", "version"} {
		assert.True(t, names[want], "root command missing subcommand %q", want)
	}
}

func TestVersionOutput(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "sentiment-analyzer dev (none)\n", out)
}

func TestAnalyzeComments(t *testing.T) {
	out, err := run(t, "", "analyze", "--endpoint", devEndpoint(t), "--comments", "I love it\n\nI hate it")
	require.NoError(t, err)

	assert.Contains(t, out, "Positive: 50%")
	assert.Contains(t, out, "Negative: 50%")
	assert.Contains(t, out, "Comments & Sentiments")
}

func TestAnalyzeStdinJSON(t *testing.T) {
	out, err := run(t, "Great value\nAwful support\n", "analyze", "--endpoint", devEndpoint(t), "--stdin", "--json")
	require.NoError(t, err)

	var result models.AnalysisResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Comments, 2)
	assert.Equal(t, "Great value", *result.Comments[0].Text)
}

func TestAnalyzeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.csv")
	require.NoError(t, os.WriteFile(path, []byte("comment\nFantastic team\n"), 0o600))

	out, err := run(t, "", "analyze", "--endpoint", devEndpoint(t), "--file", path, "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"Fantastic team"`)
}

func TestAnalyzeFailures(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer failing.Close()

	_, err := run(t, "", "analyze", "--endpoint", failing.URL, "--comments", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to analyze comments")

	_, err = run(t, "", "analyze", "--endpoint", failing.URL, "--comments", "  \n ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to analyze")

	_, err = run(t, "", "analyze", "--endpoint", failing.URL)
	assert.Error(t, err)

	_, err = run(t, "", "analyze", "--endpoint", failing.URL, "--file", "x.csv", "--comments", "y")
	assert.Error(t, err)
}

func TestTUIRejectsUnknownMode(t *testing.T) {
	_, err := run(t, "", "tui", "--mode", "both")
	assert.Error(t, err)
}

func TestServeDevHelpMarksSyntheticConfidence(t *testing.T) {
	long := newServeDevCmd().Long
	assert.Contains(t, long, "synthetic")
	assert.Contains(t, long, "distilbert_confidence")
	assert.Contains(t, long, "OPENAI_API_KEY")
}

func TestExplicitEnvFileMustExist(t *testing.T) {
	missing := filepath.Join(t.TempDir(), ".env.missing")
	_, err := run(t, "", "version", "--env-file", missing)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMissingDefaultEnvFileIsTolerated(t *testing.T) {
	t.Setenv("SENTIMENT_ENV_DIR", t.TempDir())
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sentiment-analyzer")
}

func TestEnvFileSuppliesEndpoint(t *testing.T) {
	prev, had := os.LookupEnv("SENTIMENT_ENDPOINT")
	require.NoError(t, os.Unsetenv("SENTIMENT_ENDPOINT"))
	t.Cleanup(func() {
		if had {
			os.Setenv("SENTIMENT_ENDPOINT", prev)
		} else {
			os.Unsetenv("SENTIMENT_ENDPOINT")
		}
	})

	path := filepath.Join(t.TempDir(), ".env.test")
	require.NoError(t, os.WriteFile(path, []byte("SENTIMENT_ENDPOINT="+devEndpoint(t)+"\n"), 0o600))

	out, err := run(t, "", "analyze", "--env-file", path, "--comments", "Great value")
	require.NoError(t, err)
	assert.Contains(t, out, "Great value")
}
