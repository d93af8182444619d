package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/thomasmccollum2508/studylo-sub000/internal/store"
)

// captureRepo collects appended events for inspection.
type captureRepo struct {
	events []store.LLMEventData
	err    error
}

func (r *captureRepo) AppendLLMEvent(_ context.Context, data store.LLMEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func TestWithLogging_RecordsProviderAndModel(t *testing.T) {
	repo := &captureRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 3},
	})
	p := WithLogging(mock, "anthropic", repo)

	ctx := WithPurpose(context.Background(), "grade-answer")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("events recorded = %d, want 1", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Provider != "anthropic" {
		t.Errorf("Provider = %q, want %q", ev.Provider, "anthropic")
	}
	if ev.Model != "mock" {
		t.Errorf("Model = %q, want %q", ev.Model, "mock")
	}
	if ev.Purpose != "grade-answer" {
		t.Errorf("Purpose = %q, want %q", ev.Purpose, "grade-answer")
	}
	if !ev.Success {
		t.Error("Success = false, want true")
	}
	if ev.InputTokens != 12 || ev.OutputTokens != 3 {
		t.Errorf("tokens = %d/%d, want 12/3", ev.InputTokens, ev.OutputTokens)
	}
}

func TestWithLogging_RecordsFailures(t *testing.T) {
	repo := &captureRepo{}
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})
	p := WithLogging(mock, "openai", repo)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("Generate should propagate the provider error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("events recorded = %d, want 1", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Error("Success = true for a failed request")
	}
	if ev.Provider != "openai" {
		t.Errorf("Provider = %q, want %q", ev.Provider, "openai")
	}
	if ev.ErrorMessage == "" {
		t.Error("ErrorMessage is empty for a failed request")
	}
}

func TestWithLogging_RepoFailureDoesNotFailRequest(t *testing.T) {
	repo := &captureRepo{err: fmt.Errorf("disk full")}
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, "gemini", repo)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate failed over a logging error: %v", err)
	}
}

func TestWithLogging_NilRepoPassthrough(t *testing.T) {
	mock := NewMockProvider()
	if p := WithLogging(mock, "anthropic", nil); p != Provider(mock) {
		t.Error("nil repo should return the inner provider unchanged")
	}
}
