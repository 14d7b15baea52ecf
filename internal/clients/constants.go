package clients

const (
	USER_AGENT          = "sentiment-analyzer/1.0 (+https://github.com/spacesedan/sentiment-analyzer)"
	CONTENT_TYPE_JSON   = "application/json"
	RESPONSE_PREVIEW_SZ = 50
)
