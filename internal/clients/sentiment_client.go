package clients

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// RawResponse is what came back from the endpoint before any decoding.
type RawResponse struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (r RawResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type SentimentClient struct {
	Client   *http.Client
	Endpoint string
}

// NewSentimentClient builds a client for the analysis endpoint. A zero
// timeout leaves requests unbounded.
func NewSentimentClient(endpoint string, timeout time.Duration) *SentimentClient {
	slog.Info("[SentimentClient] Initializing Client",
		slog.String("endpoint", endpoint),
		slog.Duration("timeout", timeout))

	return &SentimentClient{
		Client: &http.Client{
			Timeout: timeout,
		},
		Endpoint: endpoint,
	}
}

// Post sends a single request. It never retries: a failed attempt is
// reported to the caller as is.
func (s *SentimentClient) Post(ctx context.Context, contentType string, body []byte) (RawResponse, error) {
	var raw RawResponse
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		slog.Error("[SentimentClient] Failed to build request",
			slog.String("endpoint", s.Endpoint),
			slog.String("error", err.Error()))
		return raw, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", JSON_CONTENT)
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := s.Client.Do(req)
	if err != nil {
		slog.Error("[SentimentClient] Request failed",
			slog.String("endpoint", s.Endpoint),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()))
		return raw, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error("[SentimentClient] Failed to read response",
			slog.String("endpoint", s.Endpoint),
			slog.String("error", err.Error()))
		return raw, fmt.Errorf("failed to read response: %w", err)
	}

	raw = RawResponse{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       respBody,
	}

	slog.Info("[SentimentClient] Response received",
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(respBody)),
		slog.Duration("elapsed", time.Since(start)))

	return raw, nil
}

func GetPreview(respBody []byte) slog.Attr {
	raw := string(respBody)
	if len(raw) > PREVIEW_MAX_SIZE {
		raw = raw[:PREVIEW_MAX_SIZE]
	}
	return slog.String("raw_response", raw)
}
