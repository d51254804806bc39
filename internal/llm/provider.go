package llm

import (
	"context"
	"encoding/json"
)

// Message roles understood by providers. "tool" is provider-facing only and
// never persisted as a message role.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message is a single entry in the conversation sent to a provider.
type Message struct {
	Role    string
	Content string

	// ToolCalls is set on assistant messages that requested tools.
	ToolCalls []ToolCall
	// ToolCallID and Name are set on tool-role messages carrying results.
	ToolCallID string
	Name       string
}

// ToolCall is a structured tool invocation produced by the model.
type ToolCall struct {
	ID   string
	Name string
	Args json.RawMessage
}

// GenerateRequest describes one provider call.
type GenerateRequest struct {
	Model    string
	Messages []Message
	// Tools holds function-calling schemas. Leave nil for backends whose
	// descriptor reports SupportsTools == false.
	Tools     []json.RawMessage
	MaxTokens int
	// JSONMode asks the backend for a single JSON object response.
	JSONMode bool
}

// GenerateResponse is the result of a non-streaming call.
type GenerateResponse struct {
	Content string
}

// StreamChunk is one fragment of a streaming response. Exactly one terminal
// chunk is sent per call: Done set, or Err non-empty.
type StreamChunk struct {
	Content   string
	ToolCalls []ToolCall
	Done      bool
	Err       string
}

// Descriptor declares a backend's identity and static capabilities. It is
// immutable for the process lifetime once the provider is resolved.
type Descriptor struct {
	Name              string
	Model             string
	SupportsStreaming bool
	SupportsTools     bool
}

// Provider is the uniform interface over interchangeable language-model
// backends.
type Provider interface {
	Descriptor() Descriptor

	// GenerateStream writes fragments to ch as they arrive and closes it
	// when the call ends. The sequence is finite and consumed exactly once;
	// it is not restartable.
	GenerateStream(ctx context.Context, req *GenerateRequest, ch chan<- StreamChunk) error

	// Generate performs a complete, non-streaming call.
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)

	// GenerateJSON performs a non-streaming call in JSON mode and decodes
	// the response object into out.
	GenerateJSON(ctx context.Context, req *GenerateRequest, out any) error

	// HealthCheck is a cheap liveness probe, independent of any stream.
	HealthCheck(ctx context.Context) bool
}
