package client

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"lexaid/backend/internal/model"
)

// State is the consumer's UI-facing mode.
type State int

const (
	StateIdle State = iota
	StateSending
	StateStreaming
	StateToolPending
	StateCompleted
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSending:
		return "sending"
	case StateStreaming:
		return "streaming"
	case StateToolPending:
		return "tool_pending"
	case StateCompleted:
		return "completed"
	case StateErrored:
		return "errored"
	}
	return "unknown"
}

// turnFailedMessage replaces the assistant turn's text on any terminal
// error. The conversation stays usable for the next turn.
const turnFailedMessage = "Something went wrong. Please try again."

// noQuestionsSummary is the summarizer's sentinel for an empty conversation;
// it is not worth a timeline entry.
const noQuestionsSummary = "No user questions asked."

// Entry is one rendered conversation entry. The ID is stable for the entry's
// lifetime: deltas mutate the accumulated text in place, they never create a
// new entry.
type Entry struct {
	ID   string
	Role string
	text strings.Builder
}

// Text returns the entry's accumulated text.
func (e *Entry) Text() string { return e.text.String() }

// Handlers are the render callbacks a UI wires into the consumer. Any nil
// handler is skipped.
type Handlers struct {
	// OnState fires on every state transition.
	OnState func(from, to State)
	// OnDelta fires per content fragment with the entry it extended.
	OnDelta func(entry *Entry, delta string)
	// OnToolCall and OnToolResponse surface tool activity.
	OnToolCall     func(id, name string)
	OnToolResponse func(id, name, response string)
	// OnError fires with the safe failure text of a terminal error event.
	OnError func(message string)
}

// Consumer reconstructs conversation state from the protocol event stream.
// It is single-threaded by design: one stream at a time, events applied in
// arrival order.
type Consumer struct {
	api      *API
	handlers Handlers

	state     State
	sessionID string
	agent     string
	entries   []*Entry
	current   *Entry
	// pendingTools holds tool_call ids awaiting their tool_response.
	pendingTools map[string]string
}

// NewConsumer creates a consumer bound to an API client and render handlers.
func NewConsumer(api *API, handlers Handlers) *Consumer {
	return &Consumer{
		api:          api,
		handlers:     handlers,
		state:        StateIdle,
		pendingTools: make(map[string]string),
	}
}

// State returns the current consumer state.
func (c *Consumer) State() State { return c.state }

// SessionID returns the active session, or "" before the first turn.
func (c *Consumer) SessionID() string { return c.sessionID }

// Entries returns the conversation entries accumulated so far.
func (c *Consumer) Entries() []*Entry { return c.entries }

// SetAgent selects the persona for subsequent submissions.
func (c *Consumer) SetAgent(agent string) { c.agent = agent }

func (c *Consumer) transition(to State) {
	from := c.state
	c.state = to
	if c.handlers.OnState != nil && from != to {
		c.handlers.OnState(from, to)
	}
}

// Submit sends one user message and consumes the resulting event stream to
// completion. A submission while a turn is active is rejected without
// touching the stream.
func (c *Consumer) Submit(ctx context.Context, message string) error {
	if c.state != StateIdle {
		return fmt.Errorf("a turn is already active (state %s)", c.state)
	}
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("message is empty")
	}

	c.transition(StateSending)
	c.appendEntry(model.RoleUser).text.WriteString(message)

	err := c.api.Stream(ctx, &StreamRequest{
		SessionID: c.sessionID,
		Agent:     c.agent,
		Message:   message,
	}, c.apply)
	if err != nil {
		// Pre-stream rejection or transport failure: fail the turn and
		// return to idle.
		c.failTurn(turnFailedMessage)
		return err
	}

	if c.state != StateIdle {
		// The stream ended without a terminal event.
		slog.Warn("Stream ended without done or error event", "state", c.state.String())
		c.failTurn(turnFailedMessage)
	}
	return nil
}

// apply advances the state machine by one protocol event. Malformed or
// out-of-order events are dropped and logged, never fatal.
func (c *Consumer) apply(event model.StreamEvent) {
	switch event.Type {
	case model.EventSession:
		if c.state != StateSending {
			c.dropViolation(event, "session event outside sending state")
			return
		}
		c.sessionID = event.SessionID
		c.current = c.appendEntry(model.RoleAssistant)
		c.transition(StateStreaming)

	case model.EventContentDelta:
		if c.state != StateStreaming || c.current == nil {
			c.dropViolation(event, "content delta outside an active turn")
			return
		}
		c.current.text.WriteString(event.Content)
		if c.handlers.OnDelta != nil {
			c.handlers.OnDelta(c.current, event.Content)
		}

	case model.EventToolCall:
		if c.state != StateStreaming && c.state != StateToolPending {
			c.dropViolation(event, "tool call outside an active turn")
			return
		}
		c.pendingTools[event.ID] = event.Name
		c.transition(StateToolPending)
		if c.handlers.OnToolCall != nil {
			c.handlers.OnToolCall(event.ID, event.Name)
		}

	case model.EventToolResponse:
		name, ok := c.pendingTools[event.ID]
		if c.state != StateToolPending || !ok {
			c.dropViolation(event, "tool response with no matching pending call")
			return
		}
		delete(c.pendingTools, event.ID)
		if len(c.pendingTools) == 0 {
			c.transition(StateStreaming)
		}
		if c.handlers.OnToolResponse != nil {
			c.handlers.OnToolResponse(event.ID, name, event.Response)
		}

	case model.EventDone:
		if c.state != StateStreaming && c.state != StateToolPending {
			c.dropViolation(event, "done event outside an active turn")
			return
		}
		c.current = nil
		clear(c.pendingTools)
		c.transition(StateCompleted)
		c.transition(StateIdle)

	case model.EventError:
		if c.state != StateSending && c.state != StateStreaming && c.state != StateToolPending {
			c.dropViolation(event, "error event outside an active turn")
			return
		}
		message := event.Message
		if message == "" {
			message = turnFailedMessage
		}
		if c.handlers.OnError != nil {
			c.handlers.OnError(message)
		}
		c.failTurn(message)

	default:
		c.dropViolation(event, "unknown event type")
	}
}

// failTurn marks the current assistant turn as failed and returns to idle.
func (c *Consumer) failTurn(message string) {
	if c.current != nil {
		c.current.text.Reset()
		c.current.text.WriteString(message)
		c.current = nil
	}
	clear(c.pendingTools)
	c.transition(StateErrored)
	c.transition(StateIdle)
}

func (c *Consumer) dropViolation(event model.StreamEvent, reason string) {
	slog.Warn("Dropping protocol violation", "type", event.Type, "id", event.ID, "reason", reason, "state", c.state.String())
}

func (c *Consumer) appendEntry(role string) *Entry {
	entry := &Entry{
		ID:   fmt.Sprintf("%s-%d", role, len(c.entries)+1),
		Role: role,
	}
	c.entries = append(c.entries, entry)
	return entry
}

// Clear wipes the conversation in two phases. When the conversation has at
// least two messages, a best-effort summary is appended to the case timeline
// first; a summarizer failure never blocks the clear.
func (c *Consumer) Clear(ctx context.Context) error {
	if c.state != StateIdle {
		return fmt.Errorf("cannot clear while a turn is active (state %s)", c.state)
	}

	if c.sessionID != "" && len(c.entries) >= 2 {
		summary, err := c.api.Summarize(ctx, c.sessionID)
		switch {
		case err != nil:
			slog.Warn("Summarization failed, clearing without a summary", "error", err)
		case strings.TrimSpace(summary) == "" || summary == noQuestionsSummary:
			slog.Info("Summary was trivial, skipping timeline entry")
		default:
			if err := c.api.AddTimelineEvent(ctx, model.TimelineSummary, "Conversation summary", summary); err != nil {
				slog.Warn("Failed to record summary on timeline", "error", err)
			}
		}
	}

	c.sessionID = ""
	c.entries = nil
	c.current = nil
	clear(c.pendingTools)
	return nil
}
