// Package devserver is a local stand-in for the remote sentiment endpoint.
// It speaks the same wire format so the client can be exercised without the
// real analysis service. Scores come from VADER only; the distilbert fields
// are derived from the VADER score and are synthetic. Themes and the
// explanation come from OpenAI when a client is configured and from a local
// word count otherwise.
package devserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/spacesedan/sentiment-analyzer/internal/clients"
)

const (
	SENTIMENT_PATH  = "/api/sentiment/"
	MAX_UPLOAD_SIZE = 10 << 20
)

type Server struct {
	addr   string
	mux    *http.ServeMux
	server *http.Server
	ai     *clients.OpenAIClient
}

type Option func(*Server)

// WithOpenAI enables OpenAI-generated themes and explanations. A nil client
// leaves the local fallback in place.
func WithOpenAI(ai *clients.OpenAIClient) Option {
	return func(s *Server) {
		s.ai = ai
	}
}

func New(addr string, opts ...Option) *Server {
	s := &Server{addr: addr}
	for _, opt := range opts {
		opt(s)
	}
	s.mux = http.NewServeMux()
	s.registerRoutes()
	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("POST "+SENTIMENT_PATH, s.handleSentiment)
}

func (s *Server) ListenAndServe() error {
	slog.Info("[DevServer] Listening",
		slog.String("addr", s.addr),
		slog.Bool("openai", s.ai != nil),
		slog.String("endpoint", "http://"+s.addr+SENTIMENT_PATH))
	return s.server.ListenAndServe()
}

// Handler returns the HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("[DevServer] Failed to encode response",
			slog.String("error", err.Error()))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"detail": msg})
}
