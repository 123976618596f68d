package submission

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/spacesedan/sentiment-analyzer/internal/clients"
	"github.com/spacesedan/sentiment-analyzer/internal/models"
)

var errNotObject = errors.New("response body is not a JSON object")

// normalize is the single place a response is turned into a result. Fields
// the server omitted stay nil and nothing is recomputed or defaulted.
func normalize(resp clients.RawResponse) (*models.AnalysisResult, error) {
	if !resp.OK() {
		return nil, &RequestError{Kind: KindServer, StatusCode: resp.StatusCode}
	}

	body := bytes.TrimSpace(resp.Body)
	if len(body) == 0 || body[0] != '{' {
		return nil, &RequestError{Kind: KindDecode, StatusCode: resp.StatusCode, Err: errNotObject}
	}

	var result models.AnalysisResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &RequestError{Kind: KindDecode, StatusCode: resp.StatusCode, Err: err}
	}

	return &result, nil
}
