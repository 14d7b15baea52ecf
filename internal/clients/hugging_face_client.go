package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/spacesedan/sentiment-analyzer/config"
	"github.com/spacesedan/sentiment-analyzer/internal/models"
	"golang.org/x/oauth2"
)

type HuggingFaceClient struct {
	Client   *http.Client
	endpoint string
}

// NewHuggingFaceClient builds a client that presents cfg.APIKey as a bearer
// token on every request. base may be nil, in which case a fresh
// http.Client with cfg.RequestTimeout is used.
func NewHuggingFaceClient(cfg config.Config, base *http.Client) *HuggingFaceClient {
	if base == nil {
		base = &http.Client{Timeout: cfg.RequestTimeout}
	}

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: cfg.APIKey,
		TokenType:   "Bearer",
	}))
	client.Timeout = base.Timeout

	slog.Info("[HuggingFaceClient] Initializing Client",
		slog.String("endpoint", cfg.Endpoint),
		slog.Duration("timeout", client.Timeout),
		slog.String("env", cfg.Env))

	return &HuggingFaceClient{
		Client:   client,
		endpoint: cfg.Endpoint,
	}
}

// QuerySentiment sends text to the inference endpoint exactly once. Non-200
// responses come back as models.APIError and malformed 200 bodies as
// models.ParseError; only transport failures are returned as errors.
func (h *HuggingFaceClient) QuerySentiment(ctx context.Context, text string) (models.AnalysisResult, error) {
	slog.Info("[HuggingFaceClient] Requesting sentiment analysis",
		slog.Int("input_length", len(text)))
	start := time.Now()

	body, err := json.Marshal(models.InferenceRequest{Inputs: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		slog.Error("[HuggingFaceClient] Failed to build request",
			slog.String("endpoint", h.endpoint),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", CONTENT_TYPE_JSON)
	req.Header.Set("User-Agent", USER_AGENT)

	resp, err := h.Client.Do(req)
	if err != nil {
		slog.Error("[HuggingFaceClient] Sentiment request failed",
			slog.String("endpoint", h.endpoint),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("sentiment request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error("[HuggingFaceClient] Failed to read response",
			slog.String("endpoint", h.endpoint),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		slog.Warn("[HuggingFaceClient] Inference service returned an error",
			slog.Int("status", resp.StatusCode),
			slog.Duration("elapsed", time.Since(start)),
			getPreview(respBody))
		return models.APIError{StatusCode: resp.StatusCode, Message: string(respBody)}, nil
	}

	result := parseSentimentResponse(respBody)
	if perr, ok := result.(models.ParseError); ok {
		slog.Error("[HuggingFaceClient] Failed to parse response",
			slog.String("reason", perr.Reason),
			getPreview(respBody),
			slog.Int("raw_response_length", len(respBody)))
		return result, nil
	}

	slog.Info("[HuggingFaceClient] Sentiment analysis request successful",
		slog.Duration("elapsed", time.Since(start)))
	return result, nil
}

type rawLabelScore struct {
	Label *string  `json:"label"`
	Score *float64 `json:"score"`
}

func (r rawLabelScore) valid() bool {
	return r.Label != nil && r.Score != nil
}

// parseSentimentResponse only insists on what the presenter reads, the
// first entry of the first result. Later results are ignored and later
// malformed entries are dropped.
func parseSentimentResponse(body []byte) models.AnalysisResult {
	var outer []json.RawMessage
	if err := json.Unmarshal(body, &outer); err != nil {
		return models.ParseError{Reason: "invalid JSON: " + err.Error(), Body: string(body)}
	}
	if len(outer) == 0 {
		return models.ParseError{Reason: "empty response array", Body: string(body)}
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(outer[0], &entries); err != nil {
		return models.ParseError{Reason: "first result is not a list of label scores", Body: string(body)}
	}
	if len(entries) == 0 {
		return models.ParseError{Reason: "no label scores in first result", Body: string(body)}
	}

	scores := make([]models.LabelScore, 0, len(entries))
	for i, entry := range entries {
		var raw rawLabelScore
		err := json.Unmarshal(entry, &raw)
		if i == 0 {
			switch {
			case err != nil:
				return models.ParseError{Reason: "entry 0 is not a label score object", Body: string(body)}
			case raw.Label == nil:
				return models.ParseError{Reason: "entry 0 is missing label", Body: string(body)}
			case raw.Score == nil:
				return models.ParseError{Reason: "entry 0 is missing score", Body: string(body)}
			}
		}
		if err != nil || !raw.valid() {
			slog.Warn("[HuggingFaceClient] Skipping malformed label score",
				slog.Int("entry", i))
			continue
		}
		scores = append(scores, models.LabelScore{Label: *raw.Label, Score: *raw.Score})
	}

	return models.Prediction{Scores: scores}
}

func getPreview(respBody []byte) slog.Attr {
	if len(respBody) <= RESPONSE_PREVIEW_SZ {
		return slog.String("raw_response", string(respBody))
	}

	cut := RESPONSE_PREVIEW_SZ
	for cut > 0 && !utf8.RuneStart(respBody[cut]) {
		cut--
	}
	return slog.String("raw_response", string(respBody[:cut]))
}
