// Package llm abstracts the generative-AI providers used for card
// generation and semantic answer grading.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction consumers talk to. Callers send a
// Request and get structured JSON back.
type Provider interface {
	// Generate sends a prompt to the model. When the request carries a
	// Schema, the returned Content is JSON validated against it;
	// otherwise Content is the raw text response.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes one model invocation.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Single-turn generation (the common
	// case here) carries one user message.
	Messages []Message

	// Schema, when set, makes the provider use its native structured
	// output mechanism and validates the response against it.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature in [0.0, 1.0]; zero means deterministic.
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is the JSON Schema a structured response must satisfy.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "grade-answer".
	Name string

	// Description guides the model.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is validated JSON when a Schema was requested, raw text
	// otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
