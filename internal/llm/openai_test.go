package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpenAIProvider(baseURL string) *openAIProvider {
	return &openAIProvider{
		client:  &http.Client{},
		baseURL: baseURL,
		apiKey:  "test-key",
		model:   "llama-3.3-70b",
		name:    "groq",
	}
}

func TestOpenAIProvider_GenerateStream(t *testing.T) {
	t.Run("Success - accumulates tool call fragments by index", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var req oaRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.True(t, req.Stream)

			w.Header().Set("Content-Type", "text/event-stream")
			fmt.Fprint(w, "data: {\"choices\": [{\"delta\": {\"content\": \"Checking.\"}}]}\n\n")
			// Arguments arrive split across two deltas for the same index.
			fmt.Fprint(w, "data: {\"choices\": [{\"delta\": {\"tool_calls\": [{\"index\": 0, \"id\": \"call_1\", \"function\": {\"name\": \"get_weather\", \"arguments\": \"{\\\"loc\"}}]}}]}\n\n")
			fmt.Fprint(w, "data: {\"choices\": [{\"delta\": {\"tool_calls\": [{\"index\": 0, \"function\": {\"arguments\": \"ation\\\": \\\"Austin\\\"}\"}}]}}]}\n\n")
			fmt.Fprint(w, "data: [DONE]\n\n")
		}))
		defer server.Close()

		provider := newTestOpenAIProvider(server.URL)
		chunks := collectChunks(t, provider, &GenerateRequest{
			Messages: []Message{{Role: RoleUser, Content: "Weather in Austin?"}},
		})

		require.Len(t, chunks, 2)
		assert.Equal(t, "Checking.", chunks[0].Content)

		final := chunks[1]
		assert.True(t, final.Done)
		require.Len(t, final.ToolCalls, 1)
		assert.Equal(t, "call_1", final.ToolCalls[0].ID)
		assert.Equal(t, "get_weather", final.ToolCalls[0].Name)
		assert.JSONEq(t, `{"location": "Austin"}`, string(final.ToolCalls[0].Args))
	})

	t.Run("Failure - malformed chunk ends the stream with one terminal error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/event-stream")
			fmt.Fprint(w, "data: {not json\n\n")
			fmt.Fprint(w, "data: {also not json\n\n")
			fmt.Fprint(w, "data: [DONE]\n\n")
		}))
		defer server.Close()

		provider := newTestOpenAIProvider(server.URL)
		chunks := collectChunks(t, provider, &GenerateRequest{
			Messages: []Message{{Role: RoleUser, Content: "Hello"}},
		})

		// Exactly one chunk: the consumer stops after the first Err, so a
		// second send would strand the stream goroutine.
		require.Len(t, chunks, 1)
		assert.Contains(t, chunks[0].Err, "failed to decode")
	})

	t.Run("Failure - non-200 surfaces as an error chunk", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error": {"message": "invalid api key"}}`, http.StatusUnauthorized)
		}))
		defer server.Close()

		provider := newTestOpenAIProvider(server.URL)
		chunks := collectChunks(t, provider, &GenerateRequest{
			Messages: []Message{{Role: RoleUser, Content: "Hello"}},
		})

		require.Len(t, chunks, 1)
		assert.Contains(t, chunks[0].Err, "401")
	})
}

func TestOpenAIProvider_Generate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req oaRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.False(t, req.Stream)

			fmt.Fprint(w, `{"choices": [{"message": {"role": "assistant", "content": "Hello!"}}]}`)
		}))
		defer server.Close()

		provider := newTestOpenAIProvider(server.URL)
		resp, err := provider.Generate(context.Background(), &GenerateRequest{
			Messages: []Message{{Role: RoleUser, Content: "Hi"}},
		})

		require.NoError(t, err)
		assert.Equal(t, "Hello!", resp.Content)
	})

	t.Run("Failure - empty choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"choices": []}`)
		}))
		defer server.Close()

		provider := newTestOpenAIProvider(server.URL)
		_, err := provider.Generate(context.Background(), &GenerateRequest{
			Messages: []Message{{Role: RoleUser, Content: "Hi"}},
		})

		assert.ErrorContains(t, err, "no choices")
	})
}

func TestOpenAIProvider_GenerateJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req oaRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.ResponseFormat)
		assert.Equal(t, "json_object", req.ResponseFormat.Type)

		fmt.Fprint(w, `{"choices": [{"message": {"content": "{\"case_type\": \"Eviction\", \"confidence\": 0.9}"}}]}`)
	}))
	defer server.Close()

	provider := newTestOpenAIProvider(server.URL)

	var out struct {
		CaseType   string  `json:"case_type"`
		Confidence float64 `json:"confidence"`
	}
	err := provider.GenerateJSON(context.Background(), &GenerateRequest{
		Messages: []Message{{Role: RoleUser, Content: "Analyze"}},
	}, &out)

	require.NoError(t, err)
	assert.Equal(t, "Eviction", out.CaseType)
	assert.Equal(t, 0.9, out.Confidence)
}

func TestOpenAIProvider_BuildRequest(t *testing.T) {
	provider := newTestOpenAIProvider("http://unused")

	req := &GenerateRequest{
		Messages: []Message{
			{Role: RoleAssistant, Content: "", ToolCalls: []ToolCall{
				{ID: "call_1", Name: "get_weather", Args: json.RawMessage(`{"location": "Austin"}`)},
			}},
			{Role: RoleTool, Content: "Sunny, 31C", ToolCallID: "call_1", Name: "get_weather"},
		},
		MaxTokens: 512,
	}

	out := provider.buildRequest(req, false)

	assert.Equal(t, 512, out.MaxTokens)
	require.Len(t, out.Messages, 2)

	// Tool calls are re-encoded with string arguments per the wire format.
	require.Len(t, out.Messages[0].ToolCalls, 1)
	assert.Equal(t, "function", out.Messages[0].ToolCalls[0].Type)
	assert.Equal(t, `{"location": "Austin"}`, out.Messages[0].ToolCalls[0].Function.Arguments)

	assert.Equal(t, "call_1", out.Messages[1].ToolCallID)
	assert.Equal(t, "get_weather", out.Messages[1].Name)
}
