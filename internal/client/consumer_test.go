package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexaid/backend/internal/model"
)

// newStreamServer serves one canned event stream on the chat endpoint.
func newStreamServer(t *testing.T, events []model.StreamEvent) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/chat/stream", r.URL.Path)
		assert.Equal(t, "token-1", r.Header.Get(clientTokenHeader))
		w.Header().Set("Content-Type", "text/event-stream")
		for _, event := range events {
			data, err := json.Marshal(event)
			assert.NoError(t, err)
			fmt.Fprintf(w, "data: %s\n\n", data)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

// recordStates wires an OnState handler that appends "from->to" strings.
func recordStates(handlers *Handlers) *[]string {
	var transitions []string
	handlers.OnState = func(from, to State) {
		transitions = append(transitions, fmt.Sprintf("%s->%s", from, to))
	}
	return &transitions
}

func TestConsumer_Submit_HappyPath(t *testing.T) {
	server := newStreamServer(t, []model.StreamEvent{
		{Type: model.EventSession, SessionID: "sess-1"},
		{Type: model.EventContentDelta, Content: "Hi "},
		{Type: model.EventContentDelta, Content: "there!"},
		{Type: model.EventDone},
	})

	var handlers Handlers
	transitions := recordStates(&handlers)
	var deltaEntries []*Entry
	handlers.OnDelta = func(entry *Entry, delta string) {
		deltaEntries = append(deltaEntries, entry)
	}

	c := NewConsumer(NewAPI(server.URL, "token-1"), handlers)
	err := c.Submit(context.Background(), "Hello")

	require.NoError(t, err)
	assert.Equal(t, StateIdle, c.State())
	assert.Equal(t, "sess-1", c.SessionID())

	entries := c.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, model.RoleUser, entries[0].Role)
	assert.Equal(t, "Hello", entries[0].Text())
	assert.Equal(t, model.RoleAssistant, entries[1].Role)
	assert.Equal(t, "Hi there!", entries[1].Text())

	// Both deltas extended the same entry; no new entry per fragment.
	require.Len(t, deltaEntries, 2)
	assert.Same(t, deltaEntries[0], deltaEntries[1])
	assert.Same(t, entries[1], deltaEntries[0])

	assert.Equal(t, []string{
		"idle->sending",
		"sending->streaming",
		"streaming->completed",
		"completed->idle",
	}, *transitions)
}

func TestConsumer_Submit_RejectedWhileTurnActive(t *testing.T) {
	c := NewConsumer(nil, Handlers{})
	c.state = StateStreaming

	err := c.Submit(context.Background(), "one more")
	assert.Error(t, err)
	assert.Equal(t, StateStreaming, c.State())
}

func TestConsumer_Submit_RejectsEmptyMessage(t *testing.T) {
	c := NewConsumer(nil, Handlers{})
	assert.Error(t, c.Submit(context.Background(), "   "))
	assert.Equal(t, StateIdle, c.State())
}

func TestConsumer_Submit_ToolCallLifecycle(t *testing.T) {
	server := newStreamServer(t, []model.StreamEvent{
		{Type: model.EventSession, SessionID: "sess-1"},
		{Type: model.EventToolCall, ID: "call_1", Name: "get_weather"},
		{Type: model.EventToolResponse, ID: "call_1", Name: "get_weather", Response: "Sunny, 31C"},
		{Type: model.EventContentDelta, Content: "It is sunny."},
		{Type: model.EventDone},
	})

	var handlers Handlers
	transitions := recordStates(&handlers)
	var toolCalls, toolResponses []string
	handlers.OnToolCall = func(id, name string) {
		toolCalls = append(toolCalls, id+":"+name)
	}
	handlers.OnToolResponse = func(id, name, response string) {
		toolResponses = append(toolResponses, id+":"+name+":"+response)
	}

	c := NewConsumer(NewAPI(server.URL, "token-1"), handlers)
	require.NoError(t, c.Submit(context.Background(), "Weather in Austin?"))

	assert.Equal(t, []string{"call_1:get_weather"}, toolCalls)
	assert.Equal(t, []string{"call_1:get_weather:Sunny, 31C"}, toolResponses)
	assert.Contains(t, *transitions, "streaming->tool_pending")
	assert.Contains(t, *transitions, "tool_pending->streaming")
	assert.Equal(t, StateIdle, c.State())

	entries := c.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "It is sunny.", entries[1].Text())
}

func TestConsumer_Submit_ErrorEventFailsTurn(t *testing.T) {
	server := newStreamServer(t, []model.StreamEvent{
		{Type: model.EventSession, SessionID: "sess-1"},
		{Type: model.EventContentDelta, Content: "partial answ"},
		{Type: model.EventError, Error: "provider_error", Message: "The assistant is unavailable right now."},
	})

	var handlers Handlers
	var errorMessages []string
	handlers.OnError = func(message string) {
		errorMessages = append(errorMessages, message)
	}

	c := NewConsumer(NewAPI(server.URL, "token-1"), handlers)
	err := c.Submit(context.Background(), "Hello")

	// The error was delivered as a protocol event, not a transport failure.
	require.NoError(t, err)
	assert.Equal(t, []string{"The assistant is unavailable right now."}, errorMessages)
	assert.Equal(t, StateIdle, c.State())

	// The partial text was replaced: the user never sees a half answer.
	entries := c.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "The assistant is unavailable right now.", entries[1].Text())

	// The session survives a failed turn.
	assert.Equal(t, "sess-1", c.SessionID())
}

func TestConsumer_Submit_StreamEndsWithoutTerminalEvent(t *testing.T) {
	server := newStreamServer(t, []model.StreamEvent{
		{Type: model.EventSession, SessionID: "sess-1"},
		{Type: model.EventContentDelta, Content: "cut off"},
	})

	c := NewConsumer(NewAPI(server.URL, "token-1"), Handlers{})
	require.NoError(t, c.Submit(context.Background(), "Hello"))

	assert.Equal(t, StateIdle, c.State())
	entries := c.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, turnFailedMessage, entries[1].Text())
}

func TestConsumer_Submit_PreStreamRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		fmt.Fprint(w, `{"error": "A response is already streaming for this session."}`)
	}))
	t.Cleanup(server.Close)

	c := NewConsumer(NewAPI(server.URL, "token-1"), Handlers{})
	err := c.Submit(context.Background(), "Hello")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already streaming")
	assert.Equal(t, StateIdle, c.State())
}

func TestConsumer_Apply_DropsProtocolViolations(t *testing.T) {
	t.Run("content delta outside a turn", func(t *testing.T) {
		c := NewConsumer(nil, Handlers{})
		c.apply(model.StreamEvent{Type: model.EventContentDelta, Content: "stray"})
		assert.Equal(t, StateIdle, c.State())
		assert.Empty(t, c.Entries())
	})

	t.Run("tool response with no matching call", func(t *testing.T) {
		c := NewConsumer(nil, Handlers{})
		c.state = StateStreaming
		c.current = c.appendEntry(model.RoleAssistant)

		c.apply(model.StreamEvent{Type: model.EventToolResponse, ID: "call_9", Name: "get_weather"})

		assert.Equal(t, StateStreaming, c.State())
	})

	t.Run("second session event mid-turn", func(t *testing.T) {
		c := NewConsumer(nil, Handlers{})
		c.state = StateStreaming
		c.sessionID = "sess-1"

		c.apply(model.StreamEvent{Type: model.EventSession, SessionID: "sess-2"})

		assert.Equal(t, "sess-1", c.SessionID())
		assert.Equal(t, StateStreaming, c.State())
	})

	t.Run("unknown event type", func(t *testing.T) {
		c := NewConsumer(nil, Handlers{})
		c.state = StateStreaming
		c.apply(model.StreamEvent{Type: "telemetry"})
		assert.Equal(t, StateStreaming, c.State())
	})
}

// clearFixture builds a consumer holding a finished two-entry conversation.
func clearFixture(api *API) *Consumer {
	c := NewConsumer(api, Handlers{})
	c.sessionID = "sess-1"
	user := c.appendEntry(model.RoleUser)
	user.text.WriteString("How do I respond to an eviction notice?")
	assistant := c.appendEntry(model.RoleAssistant)
	assistant.text.WriteString("You generally have until the answer date to respond.")
	return c
}

func TestConsumer_Clear(t *testing.T) {
	t.Run("summarizes before wiping", func(t *testing.T) {
		var calls []string
		mux := http.NewServeMux()
		mux.HandleFunc("/api/v1/chat/summarize", func(w http.ResponseWriter, r *http.Request) {
			calls = append(calls, "summarize")
			fmt.Fprint(w, `{"summary": "Q: How do I respond?\nA: File an answer before the deadline."}`)
		})
		mux.HandleFunc("/api/v1/case/timeline", func(w http.ResponseWriter, r *http.Request) {
			calls = append(calls, "timeline")
			var payload map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, model.TimelineSummary, payload["event_type"])
			assert.Equal(t, "Conversation summary", payload["title"])
			w.WriteHeader(http.StatusCreated)
			fmt.Fprint(w, `{"id": "evt-1"}`)
		})
		server := httptest.NewServer(mux)
		t.Cleanup(server.Close)

		c := clearFixture(NewAPI(server.URL, "token-1"))
		require.NoError(t, c.Clear(context.Background()))

		assert.Equal(t, []string{"summarize", "timeline"}, calls)
		assert.Empty(t, c.SessionID())
		assert.Empty(t, c.Entries())
	})

	t.Run("trivial summary skips the timeline", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/api/v1/chat/summarize", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `{"summary": %q}`, noQuestionsSummary)
		})
		mux.HandleFunc("/api/v1/case/timeline", func(w http.ResponseWriter, r *http.Request) {
			t.Error("timeline must not be called for a trivial summary")
		})
		server := httptest.NewServer(mux)
		t.Cleanup(server.Close)

		c := clearFixture(NewAPI(server.URL, "token-1"))
		require.NoError(t, c.Clear(context.Background()))
		assert.Empty(t, c.Entries())
	})

	t.Run("summarizer failure never blocks the clear", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/api/v1/chat/summarize", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprint(w, `{"error": "The assistant is unavailable right now."}`)
		})
		server := httptest.NewServer(mux)
		t.Cleanup(server.Close)

		c := clearFixture(NewAPI(server.URL, "token-1"))
		require.NoError(t, c.Clear(context.Background()))
		assert.Empty(t, c.SessionID())
		assert.Empty(t, c.Entries())
	})

	t.Run("short conversation skips summarization", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("unexpected request to %s", r.URL.Path)
		}))
		t.Cleanup(server.Close)

		c := NewConsumer(NewAPI(server.URL, "token-1"), Handlers{})
		c.sessionID = "sess-1"
		c.appendEntry(model.RoleUser).text.WriteString("hi")

		require.NoError(t, c.Clear(context.Background()))
		assert.Empty(t, c.SessionID())
	})

	t.Run("rejected while a turn is active", func(t *testing.T) {
		c := NewConsumer(nil, Handlers{})
		c.state = StateToolPending
		assert.Error(t, c.Clear(context.Background()))
	})
}
