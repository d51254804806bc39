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
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// openAIProvider speaks the OpenAI chat-completions wire format. Groq exposes
// the same API, so one implementation serves both backends.
type openAIProvider struct {
	client    *http.Client
	baseURL   string
	apiKey    string
	model     string
	maxTokens int
	timeout   time.Duration
	name      string
}

func newOpenAIFromConfig(cfg *config.Config) (Provider, error) {
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
	}
	return &openAIProvider{
		client:    &http.Client{},
		baseURL:   strings.TrimRight(cfg.OpenAIBaseURL, "/"),
		apiKey:    cfg.OpenAIAPIKey,
		model:     cfg.ChatModel,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.ProviderTimeout,
		name:      "openai",
	}, nil
}

func newGroqFromConfig(cfg *config.Config) (Provider, error) {
	if cfg.GroqAPIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY is required for the groq provider")
	}
	return &openAIProvider{
		client:    &http.Client{},
		baseURL:   groqBaseURL,
		apiKey:    cfg.GroqAPIKey,
		model:     cfg.ChatModel,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.ProviderTimeout,
		name:      "groq",
	}, nil
}

func (p *openAIProvider) Descriptor() Descriptor {
	return Descriptor{
		Name:              p.name,
		Model:             p.model,
		SupportsStreaming: true,
		SupportsTools:     true,
	}
}

// Wire types for the chat-completions API.
type oaFunction struct {
	Name      string `json:"name,omitempty"`
	Arguments string `json:"arguments,omitempty"`
}

type oaToolCall struct {
	Index    int        `json:"index"`
	ID       string     `json:"id,omitempty"`
	Type     string     `json:"type,omitempty"`
	Function oaFunction `json:"function"`
}

type oaMessage struct {
	Role       string       `json:"role"`
	Content    string       `json:"content"`
	ToolCalls  []oaToolCall `json:"tool_calls,omitempty"`
	ToolCallID string       `json:"tool_call_id,omitempty"`
	Name       string       `json:"name,omitempty"`
}

type oaRequest struct {
	Model          string            `json:"model"`
	Messages       []oaMessage       `json:"messages"`
	MaxTokens      int               `json:"max_tokens,omitempty"`
	Stream         bool              `json:"stream"`
	Tools          []json.RawMessage `json:"tools,omitempty"`
	Temperature    float64           `json:"temperature"`
	ResponseFormat *oaFormat         `json:"response_format,omitempty"`
}

type oaFormat struct {
	Type string `json:"type"`
}

type oaChoice struct {
	Delta   oaMessage `json:"delta"`
	Message oaMessage `json:"message"`
}

type oaResponse struct {
	Choices []oaChoice `json:"choices"`
}

func (p *openAIProvider) buildRequest(req *GenerateRequest, stream bool) *oaRequest {
	out := &oaRequest{
		Model:       p.model,
		MaxTokens:   p.maxTokens,
		Stream:      stream,
		Tools:       req.Tools,
		Temperature: 0.3,
	}
	if req.Model != "" {
		out.Model = req.Model
	}
	if req.MaxTokens > 0 {
		out.MaxTokens = req.MaxTokens
	}
	if req.JSONMode {
		out.ResponseFormat = &oaFormat{Type: "json_object"}
	}
	for _, m := range req.Messages {
		om := oaMessage{
			Role:       m.Role,
			Content:    m.Content,
			ToolCallID: m.ToolCallID,
			Name:       m.Name,
		}
		for i, tc := range m.ToolCalls {
			om.ToolCalls = append(om.ToolCalls, oaToolCall{
				Index: i,
				ID:    tc.ID,
				Type:  "function",
				Function: oaFunction{
					Name:      tc.Name,
					Arguments: string(tc.Args),
				},
			})
		}
		out.Messages = append(out.Messages, om)
	}
	return out
}

func (p *openAIProvider) post(ctx context.Context, body any) (*http.Response, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewBuffer(raw))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

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

// GenerateStream consumes the chat-completions SSE stream. Tool-call
// fragments arrive split across deltas and are accumulated by index until
// the stream ends, then emitted on the terminal chunk.
func (p *openAIProvider) GenerateStream(ctx context.Context, req *GenerateRequest, ch chan<- StreamChunk) error {
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

	var pending []oaToolCall

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "[DONE]" {
			break
		}

		var chunk oaResponse
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			// The Err chunk is terminal: the consumer stops receiving after
			// it, so no further sends are allowed on this channel.
			select {
			case ch <- StreamChunk{Err: "failed to decode stream chunk"}:
			case <-ctx.Done():
				return ctx.Err()
			}
			return fmt.Errorf("failed to decode stream chunk: %w", err)
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		delta := chunk.Choices[0].Delta

		if delta.Content != "" {
			select {
			case ch <- StreamChunk{Content: delta.Content}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		for _, tc := range delta.ToolCalls {
			for tc.Index >= len(pending) {
				pending = append(pending, oaToolCall{Type: "function"})
			}
			cur := &pending[tc.Index]
			if tc.ID != "" {
				cur.ID = tc.ID
			}
			if tc.Function.Name != "" {
				cur.Function.Name = tc.Function.Name
			}
			cur.Function.Arguments += tc.Function.Arguments
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

	final := StreamChunk{Done: true}
	for _, tc := range pending {
		final.ToolCalls = append(final.ToolCalls, ToolCall{
			ID:   tc.ID,
			Name: tc.Function.Name,
			Args: json.RawMessage(tc.Function.Arguments),
		})
	}
	select {
	case ch <- final:
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

func (p *openAIProvider) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
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

	var parsed oaResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("response contained no choices")
	}
	return &GenerateResponse{Content: parsed.Choices[0].Message.Content}, nil
}

func (p *openAIProvider) GenerateJSON(ctx context.Context, req *GenerateRequest, out any) error {
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

func (p *openAIProvider) HealthCheck(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := p.Generate(ctx, &GenerateRequest{
		Messages:  []Message{{Role: RoleUser, Content: "Hi"}},
		MaxTokens: 10,
	})
	return err == nil
}
