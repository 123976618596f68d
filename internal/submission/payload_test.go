package submission

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"testing"

	"github.com/spacesedan/sentiment-analyzer/internal/clients"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitComments(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"blank line dropped", "Great!\n\nTerrible service", []string{"Great!", "Terrible service"}},
		{"order and duplicates kept", "b\na\nb", []string{"b", "a", "b"}},
		{"whitespace lines kept", "  \n\t\nok\n", []string{"  ", "\t", "ok"}},
		{"crlf kept", "one\r\ntwo\r\n", []string{"one\r", "two\r"}},
		{"mixed", "a\n   \nb\r\nc", []string{"a", "   ", "b\r", "c"}},
		{"inner whitespace verbatim", "  padded  ", []string{"  padded  "}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitComments(tt.raw))
		})
	}
}

func TestBuildPayloadRejectsEmptyInput(t *testing.T) {
	_, err := buildPayload(ModeFile, nil, "ignored")
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = buildPayload(ModeManual, &StagedFile{Name: "a.csv"}, " \n \n")
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = buildPayload(InputMode("both"), nil, "x")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestFilePayloadIsMultipart(t *testing.T) {
	content := []byte("comment\nfine\n\x00\xff raw bytes")
	p, err := buildPayload(ModeFile, &StagedFile{Name: "feedback.csv", Content: content, Size: int64(len(content))}, "")
	require.NoError(t, err)

	body, contentType, err := p.encode()
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)

	r := multipart.NewReader(bytes.NewReader(body), params["boundary"])
	part, err := r.NextPart()
	require.NoError(t, err)
	assert.Equal(t, clients.FILE_FORM_FIELD, part.FormName())
	assert.Equal(t, "feedback.csv", part.FileName())

	got, err := io.ReadAll(part)
	require.NoError(t, err)
	assert.Equal(t, content, got)

	_, err = r.NextPart()
	assert.ErrorIs(t, err, io.EOF)
}

func TestCommentsPayloadIsJSON(t *testing.T) {
	p, err := buildPayload(ModeManual, nil, "Great!\n\nTerrible service")
	require.NoError(t, err)

	body, contentType, err := p.encode()
	require.NoError(t, err)
	assert.Equal(t, clients.JSON_CONTENT, contentType)

	var decoded map[string][]string
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Len(t, decoded, 1)
	assert.Equal(t, []string{"Great!", "Terrible service"}, decoded["comments"])
}
