package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spacesedan/sentiment-analyzer/internal/models"
	"github.com/spacesedan/sentiment-analyzer/internal/sentiment"
)

const WARNING_EMPTY_INPUT = "Please enter some text!"

type Analyzer interface {
	QuerySentiment(ctx context.Context, text string) (models.AnalysisResult, error)
}

// Presenter runs one submit cycle at a time: validate, call the analyzer
// once, turn the result into a View.
type Presenter struct {
	analyzer Analyzer
}

func NewPresenter(analyzer Analyzer) *Presenter {
	return &Presenter{analyzer: analyzer}
}

// Submit blocks until the analyzer returns. Blank input never reaches the
// analyzer.
func (p *Presenter) Submit(ctx context.Context, text string) View {
	transition(StateIdle, StateSubmitted)

	if strings.TrimSpace(text) == "" {
		transition(StateSubmitted, StateWarning)
		return View{State: StateWarning, Input: text, Message: WARNING_EMPTY_INPUT}
	}

	transition(StateSubmitted, StateLoading)
	start := time.Now()
	result, err := p.analyzer.QuerySentiment(ctx, text)
	slog.Debug("[Presenter] Analyzer returned",
		slog.Duration("elapsed", time.Since(start)))

	view := render(text, result, err)
	transition(StateLoading, view.State)
	return view
}

func render(input string, result models.AnalysisResult, err error) View {
	if err != nil {
		return errorView(input, "API Error: "+transportMessage(err))
	}

	switch r := result.(type) {
	case models.APIError:
		return errorView(input, fmt.Sprintf("API Error (%d): %s", r.StatusCode, r.Message))
	case models.ParseError:
		return errorView(input, "API Error: "+r.Error())
	case models.Prediction:
		top := r.Top()
		return View{
			State:      StateSuccess,
			Input:      input,
			Label:      sentiment.DisplayLabel(top.Label),
			Progress:   top.Score,
			Confidence: sentiment.FormatConfidence(top.Score),
		}
	default:
		return errorView(input, fmt.Sprintf("API Error: unsupported result %T", result))
	}
}

func errorView(input, message string) View {
	return View{State: StateError, Input: input, Message: message}
}

func transportMessage(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "request timed out"
	case errors.Is(err, context.Canceled):
		return "request cancelled"
	default:
		return err.Error()
	}
}

func transition(from, to State) {
	slog.Debug("[Presenter] State transition",
		slog.String("from", from.String()),
		slog.String("to", to.String()))
}
