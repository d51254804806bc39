package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"lexaid/backend/internal/config"

	"github.com/google/uuid"
)

// ollamaProvider talks to a local Ollama instance over its NDJSON chat API.
type ollamaProvider struct {
	client    *http.Client
	url       string
	model     string
	maxTokens int
	timeout   time.Duration
}

// NewOllamaProvider returns a provider for the Ollama instance at url.
func NewOllamaProvider(url, model string, maxTokens int, timeout time.Duration) Provider {
	return &ollamaProvider{
		client:    &http.Client{},
		url:       strings.TrimRight(url, "/"),
		model:     model,
		maxTokens: maxTokens,
		timeout:   timeout,
	}
}

func newOllamaFromConfig(cfg *config.Config) (Provider, error) {
	if cfg.OllamaURL == "" {
		return nil, fmt.Errorf("OLLAMA_URL is required for the ollama provider")
	}
	return NewOllamaProvider(cfg.OllamaURL, cfg.ChatModel, cfg.MaxTokens, cfg.ProviderTimeout), nil
}

func (p *ollamaProvider) Descriptor() Descriptor {
	return Descriptor{
		Name:              "ollama",
		Model:             p.model,
		SupportsStreaming: true,
		SupportsTools:     true,
	}
}

// Wire types for the Ollama chat API. Ollama sends tool-call arguments as a
// JSON object, not a string, and does not assign call IDs.
type olFunction struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

type olToolCall struct {
	Function olFunction `json:"function"`
}

type olMessage struct {
	Role      string       `json:"role"`
	Content   string       `json:"content"`
	ToolCalls []olToolCall `json:"tool_calls,omitempty"`
}

type olRequest struct {
	Model    string            `json:"model"`
	Messages []olMessage       `json:"messages"`
	Stream   bool              `json:"stream"`
	Tools    []json.RawMessage `json:"tools,omitempty"`
	Format   string            `json:"format,omitempty"`
	Options  map[string]any    `json:"options,omitempty"`
}

type olChunk struct {
	Message olMessage `json:"message"`
	Done    bool      `json:"done"`
}

func (p *ollamaProvider) buildRequest(req *GenerateRequest, stream bool) *olRequest {
	out := &olRequest{
		Model:  p.model,
		Stream: stream,
		Tools:  req.Tools,
	}
	if req.Model != "" {
		out.Model = req.Model
	}
	if req.JSONMode {
		out.Format = "json"
	}
	maxTokens := p.maxTokens
	if req.MaxTokens > 0 {
		maxTokens = req.MaxTokens
	}
	if maxTokens > 0 {
		out.Options = map[string]any{"num_predict": maxTokens}
	}
	for _, m := range req.Messages {
		om := olMessage{Role: m.Role, Content: m.Content}
		for _, tc := range m.ToolCalls {
			om.ToolCalls = append(om.ToolCalls, olToolCall{
				Function: olFunction{Name: tc.Name, Arguments: tc.Args},
			})
		}
		out.Messages = append(out.Messages, om)
	}
	return out
}

func (p *ollamaProvider) post(ctx context.Context, body *olRequest) (*http.Response, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url+"/api/chat", bytes.NewBuffer(raw))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("api returned non-200 status %d: %s", resp.StatusCode, string(bodyBytes))
	}
	return resp, nil
}

func (p *ollamaProvider) GenerateStream(ctx context.Context, req *GenerateRequest, ch chan<- StreamChunk) error {
	defer close(ch)

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	resp, err := p.post(ctx, p.buildRequest(req, true))
	if err != nil {
		ch <- StreamChunk{Err: err.Error()}
		return err
	}
	defer resp.Body.Close()

	var pending []ToolCall

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var chunk olChunk
		if err := json.Unmarshal(line, &chunk); err != nil {
			// The Err chunk is terminal: the consumer stops receiving after
			// it, so no further sends are allowed on this channel.
			select {
			case ch <- StreamChunk{Err: "failed to decode stream chunk"}:
			case <-ctx.Done():
				return ctx.Err()
			}
			return fmt.Errorf("failed to decode stream chunk: %w", err)
		}

		if chunk.Message.Content != "" {
			select {
			case ch <- StreamChunk{Content: chunk.Message.Content}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		// Ollama assigns no call IDs, so mint them here to keep the
		// tool_call / tool_response pairing contract intact downstream.
		for _, tc := range chunk.Message.ToolCalls {
			pending = append(pending, ToolCall{
				ID:   "call_" + uuid.NewString(),
				Name: tc.Function.Name,
				Args: tc.Function.Arguments,
			})
		}

		if chunk.Done {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		select {
		case ch <- StreamChunk{Err: err.Error()}:
		case <-ctx.Done():
			return ctx.Err()
		}
		return err
	}

	select {
	case ch <- StreamChunk{Done: true, ToolCalls: pending}:
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

func (p *ollamaProvider) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	resp, err := p.post(ctx, p.buildRequest(req, false))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var parsed olChunk
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}
	return &GenerateResponse{Content: parsed.Message.Content}, nil
}

func (p *ollamaProvider) GenerateJSON(ctx context.Context, req *GenerateRequest, out any) error {
	jsonReq := *req
	jsonReq.JSONMode = true

	resp, err := p.Generate(ctx, &jsonReq)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(resp.Content), out); err != nil {
		return fmt.Errorf("invalid JSON response from model: %w", err)
	}
	return nil
}

// HealthCheck probes the tags endpoint, which answers without loading a
// model.
func (p *ollamaProvider) HealthCheck(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := p.client.Do(httpReq)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
