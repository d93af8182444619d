package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/thomasmccollum2508/studylo-sub000/internal/store"
)

// LoggingProvider is a decorator that records every model request as an
// event row.
type LoggingProvider struct {
	inner     Provider
	provider  string
	eventRepo store.EventRepo
}

// WithLogging wraps a Provider with event logging under the given
// provider name ("anthropic", "openai", ...). A nil repo disables
// logging without changing behavior.
func WithLogging(p Provider, provider string, repo store.EventRepo) Provider {
	if repo == nil {
		return p
	}
	return &LoggingProvider{inner: p, provider: provider, eventRepo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMEventData{
		Provider:  l.provider,
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Record the event but never fail the request over logging.
	if logErr := l.eventRepo.AppendLLMEvent(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log model request event: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
