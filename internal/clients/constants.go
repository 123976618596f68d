package clients

const (
	USER_AGENT       = "sentiment-analyzer-client/1.0 (+https://github.com/spacesedan/sentiment-analyzer)"
	FILE_FORM_FIELD  = "file"
	JSON_CONTENT     = "application/json"
	PREVIEW_MAX_SIZE = 50
)
