package devserver

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/spacesedan/sentiment-analyzer/internal/clients"
	"github.com/spacesedan/sentiment-analyzer/internal/models"
	"github.com/spacesedan/sentiment-analyzer/internal/sentiment"
)

var csvHeaders = map[string]bool{"comment": true, "comments": true, "text": true}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSentiment(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, MAX_UPLOAD_SIZE)

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		writeError(w, http.StatusUnsupportedMediaType, "missing or invalid Content-Type")
		return
	}

	var comments []string
	switch mediaType {
	case "multipart/form-data":
		comments, err = commentsFromUpload(r)
	case clients.JSON_CONTENT:
		comments, err = commentsFromJSON(r)
	default:
		writeError(w, http.StatusUnsupportedMediaType, "unsupported Content-Type "+mediaType)
		return
	}
	if err != nil {
		slog.Warn("[DevServer] Rejected request",
			slog.String("content_type", mediaType),
			slog.String("error", err.Error()))
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(comments) == 0 {
		writeError(w, http.StatusBadRequest, "no comments found")
		return
	}

	result := sentiment.Summarize(comments)
	source := "local"
	if s.ai != nil {
		insight, err := sentiment.GenerateInsights(r.Context(), s.ai, comments)
		if err != nil {
			slog.Warn("[DevServer] OpenAI insights failed, keeping local themes",
				slog.String("error", err.Error()))
		} else {
			result.Themes = insight.Themes
			result.Explanation = models.String(insight.Explanation)
			source = "openai"
		}
	}

	slog.Info("[DevServer] Analyzed comments",
		slog.String("content_type", mediaType),
		slog.Int("count", len(comments)),
		slog.String("insights", source),
		slog.Duration("elapsed", time.Since(start)))

	writeJSON(w, http.StatusOK, result)
}

func commentsFromJSON(r *http.Request) ([]string, error) {
	defer r.Body.Close()

	var req models.CommentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}

	comments := make([]string, 0, len(req.Comments))
	for _, c := range req.Comments {
		if strings.TrimSpace(c) != "" {
			comments = append(comments, c)
		}
	}
	return comments, nil
}

func commentsFromUpload(r *http.Request) ([]string, error) {
	file, header, err := r.FormFile(clients.FILE_FORM_FIELD)
	if err != nil {
		return nil, fmt.Errorf("missing %q upload: %w", clients.FILE_FORM_FIELD, err)
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
		return parseCSV(file)
	}
	return parseLines(file)
}

// parseCSV takes the first column of every row. A leading header row named
// comment/comments/text is skipped.
func parseCSV(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var comments []string
	for row := 0; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV: %w", err)
		}
		if len(record) == 0 {
			continue
		}

		cell := strings.TrimSpace(record[0])
		if row == 0 && csvHeaders[strings.ToLower(cell)] {
			continue
		}
		if cell != "" {
			comments = append(comments, cell)
		}
	}
	return comments, nil
}

func parseLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	var comments []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			comments = append(comments, line)
		}
	}
	return comments, nil
}
