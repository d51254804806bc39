package model

import (
	"encoding/json"
	"time"
)

// Session stores metadata about a conversation.
type Session struct {
	ID         string    `json:"id"`
	OwnerToken string    `json:"-"` // Authenticated user ID or anonymous client token.
	Agent      string    `json:"agent"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// ToolInvocation records one tool call made during an assistant turn,
// together with its response. Args and Data are stored as raw JSON so the
// storage format stays stable if tool signatures evolve.
type ToolInvocation struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Args     json.RawMessage `json:"args,omitempty"`
	Response string          `json:"response,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`
}

// Message stores a single message in a session. Seq is assigned by the
// repository on insert and is strictly increasing within a session.
type Message struct {
	ID        string           `json:"id"`
	SessionID string           `json:"session_id"`
	Seq       int64            `json:"seq"`
	Role      string           `json:"role"`
	Content   string           `json:"content"`
	ToolCalls []ToolInvocation `json:"tool_calls,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// Stream event types carried over the SSE channel. Events are transient:
// only their effects (the final Message and its tool invocations) persist.
const (
	EventSession      = "session"
	EventContentDelta = "content_delta"
	EventToolCall     = "tool_call"
	EventToolResponse = "tool_response"
	EventDone         = "done"
	EventError        = "error"
)

// StreamEvent is the discriminated union written to the client during an
// active turn. Type selects which of the remaining fields are meaningful.
type StreamEvent struct {
	Type string `json:"type"`

	// session
	SessionID string `json:"session_id,omitempty"`

	// content_delta
	Content string `json:"content,omitempty"`

	// tool_call / tool_response
	ID       string          `json:"id,omitempty"`
	Name     string          `json:"name,omitempty"`
	Args     json.RawMessage `json:"args,omitempty"`
	Response string          `json:"response,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`

	// error
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}
