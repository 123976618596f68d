package submission

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"mime/multipart"
	"strings"

	"github.com/spacesedan/sentiment-analyzer/internal/clients"
	"github.com/spacesedan/sentiment-analyzer/internal/models"
)

// payload is one of the two request shapes the endpoint accepts.
type payload interface {
	encode() (body []byte, contentType string, err error)
	logAttrs() []any
}

type filePayload struct {
	file StagedFile
}

func (p filePayload) encode() ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile(clients.FILE_FORM_FIELD, p.file.Name)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(p.file.Content); err != nil {
		return nil, "", fmt.Errorf("failed to write form file: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}

func (p filePayload) logAttrs() []any {
	return []any{
		slog.String("mode", string(ModeFile)),
		slog.String("file", p.file.Name),
		slog.Int64("size", p.file.Size),
	}
}

type commentsPayload struct {
	comments []string
}

func (p commentsPayload) encode() ([]byte, string, error) {
	body, err := json.Marshal(models.CommentsRequest{Comments: p.comments})
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal comments: %w", err)
	}
	return body, clients.JSON_CONTENT, nil
}

func (p commentsPayload) logAttrs() []any {
	return []any{
		slog.String("mode", string(ModeManual)),
		slog.Int("comments", len(p.comments)),
	}
}

// SplitComments turns a block of text into one comment per "\n"-separated
// line. Only empty lines are dropped. Whitespace-only lines and a trailing
// "\r" are kept verbatim, in order.
func SplitComments(raw string) []string {
	lines := strings.Split(raw, "\n")
	comments := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		comments = append(comments, line)
	}
	return comments
}

func buildPayload(mode InputMode, file *StagedFile, text string) (payload, error) {
	switch mode {
	case ModeFile:
		if file.empty() {
			return nil, ErrEmptyInput
		}
		return filePayload{file: *file}, nil
	case ModeManual:
		if strings.TrimSpace(text) == "" {
			return nil, ErrEmptyInput
		}
		return commentsPayload{comments: SplitComments(text)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}
