package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"lexaid/backend/internal/agent"
	app_errors "lexaid/backend/internal/errors"
	"lexaid/backend/internal/llm"
	"lexaid/backend/internal/model"
	"lexaid/backend/internal/repository"
)

const summarizationSystemPrompt = `The user will submit a conversation history in their first message.
Summarize ONLY the questions the USER explicitly typed and their answers.

IMPORTANT RULES:
- Only include questions that appear after "USER:" in the conversation
- SKIP any document analysis (messages about "I've analyzed your document...")
- SKIP questions the assistant generated or suggested
- If the user only uploaded a file and didn't ask follow-up questions, respond with just: "No user questions asked."

Format (only for actual user questions):
Q: [The user's actual question]
A: [Specific answer with details: addresses, costs, times, deadlines. If no specifics, note that.]`

// safeStreamError is the only failure text that crosses the protocol
// boundary; backend detail stays in the logs.
const safeStreamError = "Something went wrong while generating a response. Please try again."

// ChatService orchestrates chat turns: it persists the user message, drives
// the provider's streaming call, interleaves tool execution, and persists
// the final assistant message only when the turn completes cleanly.
type ChatService struct {
	repo    repository.Repository
	factory *llm.Factory

	// active tracks sessions with a stream in flight. This is the only
	// mutable in-memory state besides the cached provider handle.
	mu     sync.Mutex
	active map[string]struct{}
}

// CreateMessageRequest is a new user message from the client.
type CreateMessageRequest struct {
	SessionID  string `json:"session_id"`
	OwnerToken string `json:"-"`
	Agent      string `json:"agent"`
	Content    string `json:"message" validate:"required,min=1,max=2000"`
}

func NewChatService(repo repository.Repository, factory *llm.Factory) *ChatService {
	return &ChatService{
		repo:    repo,
		factory: factory,
		active:  make(map[string]struct{}),
	}
}

// TurnRunner is a prepared turn ready to stream. It exists so the API layer
// can be tested against a mock without a live provider.
type TurnRunner interface {
	SessionID() string
	Run(ctx context.Context, ch chan<- model.StreamEvent)
}

// Turn is one prepared user turn. StartTurn performs every synchronous
// check; Run produces the event stream.
type Turn struct {
	svc      *ChatService
	session  *model.Session
	agent    *agent.Agent
	provider llm.Provider
	content  string
	owner    string
}

// StartTurn validates the request, resolves the provider, loads or creates
// the session and acquires the per-session stream slot. All failures here
// are synchronous: no stream has started and no event is emitted.
func (s *ChatService) StartTurn(ctx context.Context, req *CreateMessageRequest) (TurnRunner, error) {
	ag, err := agent.Lookup(req.Agent)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", app_errors.ErrNotFound, err)
	}

	provider, err := s.factory.Provider()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", app_errors.ErrUnavailable, err)
	}

	var session *model.Session
	if req.SessionID == "" {
		now := time.Now().UTC()
		session = &model.Session{
			ID:         uuid.NewString(),
			OwnerToken: req.OwnerToken,
			Agent:      ag.Name,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := s.repo.CreateSession(ctx, session); err != nil {
			return nil, fmt.Errorf("%w: could not create session: %s", app_errors.ErrInternal, err)
		}
	} else {
		session, err = s.repo.GetSession(ctx, req.SessionID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, fmt.Errorf("%w: session %s", app_errors.ErrNotFound, req.SessionID)
			}
			return nil, fmt.Errorf("%w: could not load session: %s", app_errors.ErrInternal, err)
		}
		if session.OwnerToken != req.OwnerToken {
			return nil, fmt.Errorf("%w: session %s", app_errors.ErrPermission, req.SessionID)
		}
	}

	if !s.acquire(session.ID) {
		return nil, fmt.Errorf("%w: a response is already streaming for this session", app_errors.ErrConflict)
	}

	return &Turn{
		svc:      s,
		session:  session,
		agent:    ag,
		provider: provider,
		content:  req.Content,
		owner:    req.OwnerToken,
	}, nil
}

func (s *ChatService) acquire(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.active[sessionID]; busy {
		return false
	}
	s.active[sessionID] = struct{}{}
	return true
}

func (s *ChatService) release(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, sessionID)
}

// SessionID identifies the session this turn belongs to.
func (t *Turn) SessionID() string { return t.session.ID }

// Run executes the turn and writes protocol events to ch, closing it when
// the turn ends. Exactly one terminal event is emitted: done or error. The
// assistant message is persisted only on a clean done; any mid-stream
// failure or cancellation discards the accumulated text.
func (t *Turn) Run(ctx context.Context, ch chan<- model.StreamEvent) {
	defer close(ch)
	defer t.svc.release(t.session.ID)

	ch <- model.StreamEvent{Type: model.EventSession, SessionID: t.session.ID}

	userMessage := &model.Message{
		ID:        uuid.NewString(),
		SessionID: t.session.ID,
		Role:      model.RoleUser,
		Content:   t.content,
		CreatedAt: time.Now().UTC(),
	}
	if err := t.svc.repo.AddMessage(ctx, userMessage); err != nil {
		slog.Error("Failed to persist user message", "session_id", t.session.ID, "error", err)
		ch <- model.StreamEvent{Type: model.EventError, Error: "internal_error", Message: safeStreamError}
		return
	}

	history, err := t.buildHistory(ctx)
	if err != nil {
		slog.Error("Failed to assemble history", "session_id", t.session.ID, "error", err)
		ch <- model.StreamEvent{Type: model.EventError, Error: "internal_error", Message: safeStreamError}
		return
	}

	var tools []json.RawMessage
	if t.provider.Descriptor().SupportsTools {
		tools, err = t.agent.ToolSchemas()
		if err != nil {
			slog.Error("Failed to export tool schemas", "agent", t.agent.Name, "error", err)
			ch <- model.StreamEvent{Type: model.EventError, Error: "internal_error", Message: safeStreamError}
			return
		}
	}

	var fullText strings.Builder
	var invocations []model.ToolInvocation

	for step := 0; step < t.agent.MaxSteps; step++ {
		req := &llm.GenerateRequest{
			Messages:  history,
			Tools:     tools,
			MaxTokens: t.agent.MaxTokens,
		}

		chunks := make(chan llm.StreamChunk)
		go t.provider.GenerateStream(ctx, req, chunks) //nolint:errcheck // errors surface as chunk.Err

		var stepText strings.Builder
		var toolCalls []llm.ToolCall
		failed := false

		for chunk := range chunks {
			if ctx.Err() != nil {
				slog.Info("Client disconnected mid-stream, discarding turn", "session_id", t.session.ID)
				return
			}
			if chunk.Err != "" {
				slog.Error("Provider stream error", "session_id", t.session.ID, "error", chunk.Err)
				failed = true
				break
			}
			if chunk.Content != "" {
				stepText.WriteString(chunk.Content)
				fullText.WriteString(chunk.Content)
				ch <- model.StreamEvent{Type: model.EventContentDelta, Content: chunk.Content}
			}
			if chunk.Done {
				toolCalls = chunk.ToolCalls
			}
		}
		if failed {
			ch <- model.StreamEvent{Type: model.EventError, Error: "provider_error", Message: safeStreamError}
			return
		}

		if len(toolCalls) == 0 {
			break
		}

		// Tool calls execute strictly sequentially, in stream order. Each
		// call's tool_response is emitted before the next call starts.
		history = append(history, llm.Message{
			Role:      llm.RoleAssistant,
			Content:   stepText.String(),
			ToolCalls: toolCalls,
		})
		for _, call := range toolCalls {
			ch <- model.StreamEvent{
				Type: model.EventToolCall,
				ID:   call.ID,
				Name: call.Name,
				Args: call.Args,
			}

			output := t.executeTool(ctx, call)

			var data json.RawMessage
			if output.Data != nil {
				if raw, err := json.Marshal(output.Data); err == nil {
					data = raw
				}
			}
			ch <- model.StreamEvent{
				Type:     model.EventToolResponse,
				ID:       call.ID,
				Name:     call.Name,
				Response: output.Response,
				Data:     data,
			}

			invocations = append(invocations, model.ToolInvocation{
				ID:       call.ID,
				Name:     call.Name,
				Args:     call.Args,
				Response: output.Response,
				Data:     data,
			})
			history = append(history, llm.Message{
				Role:       llm.RoleTool,
				Content:    output.Response,
				ToolCallID: call.ID,
				Name:       call.Name,
			})
		}
	}

	assistantMessage := &model.Message{
		ID:        uuid.NewString(),
		SessionID: t.session.ID,
		Role:      model.RoleAssistant,
		Content:   fullText.String(),
		ToolCalls: invocations,
		CreatedAt: time.Now().UTC(),
	}
	if err := t.svc.repo.AddMessage(ctx, assistantMessage); err != nil {
		slog.Error("Failed to persist assistant message", "session_id", t.session.ID, "error", err)
		ch <- model.StreamEvent{Type: model.EventError, Error: "internal_error", Message: safeStreamError}
		return
	}

	ch <- model.StreamEvent{Type: model.EventDone}
}

// executeTool runs one tool call. Tool failure never aborts the turn: the
// error text becomes the tool response the model sees.
func (t *Turn) executeTool(ctx context.Context, call llm.ToolCall) agent.ToolOutput {
	tool, ok := t.agent.FindTool(call.Name)
	if !ok {
		slog.Warn("Model requested unknown tool", "tool", call.Name, "agent", t.agent.Name)
		return agent.ToolOutput{Response: fmt.Sprintf("Error: unknown tool %q", call.Name)}
	}

	output, err := tool.Call(ctx, call.Args)
	if err != nil {
		slog.Error("Tool execution failed", "tool", call.Name, "error", err)
		return agent.ToolOutput{Response: fmt.Sprintf("Error: %s", err)}
	}
	return output
}

// buildHistory assembles the ordered provider messages for this turn: the
// agent's system prompt, an optional one-shot document-context block, then
// every persisted message in sequence order.
func (t *Turn) buildHistory(ctx context.Context) ([]llm.Message, error) {
	history := []llm.Message{{Role: llm.RoleSystem, Content: t.agent.SystemPrompt}}

	pending, err := t.svc.repo.GetPendingExtraction(ctx, t.owner)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if pending != nil && !pending.ContextInjected {
		history = append(history, llm.Message{
			Role:    llm.RoleSystem,
			Content: documentContext(&pending.Data),
		})
		if err := t.svc.repo.MarkExtractionInjected(ctx, pending.ID); err != nil {
			slog.Warn("Failed to mark extraction context consumed", "id", pending.ID, "error", err)
		}
	}

	messages, err := t.svc.repo.GetMessages(ctx, t.session.ID)
	if err != nil {
		return nil, err
	}
	for _, msg := range messages {
		m := llm.Message{Role: msg.Role, Content: msg.Content}
		for _, inv := range msg.ToolCalls {
			m.ToolCalls = append(m.ToolCalls, llm.ToolCall{ID: inv.ID, Name: inv.Name, Args: inv.Args})
		}
		history = append(history, m)
		// Replay persisted tool responses so the model sees the full
		// exchange when the conversation resumes.
		for _, inv := range msg.ToolCalls {
			history = append(history, llm.Message{
				Role:       llm.RoleTool,
				Content:    inv.Response,
				ToolCallID: inv.ID,
				Name:       inv.Name,
			})
		}
	}
	return history, nil
}

// documentContext renders the pending extraction as the hidden context block
// injected once into the next turn.
func documentContext(data *model.ExtractedCaseData) string {
	var b strings.Builder
	b.WriteString("[Document Context]\n")
	b.WriteString("The user uploaded a legal document. Extracted details:\n")
	if data.CaseType != "" {
		fmt.Fprintf(&b, "Case type: %s\n", data.CaseType)
	}
	if data.Summary != "" {
		fmt.Fprintf(&b, "Summary: %s\n", data.Summary)
	}
	if data.CourtInfo.CourtName != "" {
		fmt.Fprintf(&b, "Court: %s", data.CourtInfo.CourtName)
		if data.CourtInfo.County != "" {
			fmt.Fprintf(&b, " (%s County)", data.CourtInfo.County)
		}
		b.WriteString("\n")
	}
	if data.CourtInfo.CaseNumber != "" {
		fmt.Fprintf(&b, "Case number: %s\n", data.CourtInfo.CaseNumber)
	}
	if data.Parties.OpposingParty != "" {
		fmt.Fprintf(&b, "Opposing party: %s\n", data.Parties.OpposingParty)
	}
	for _, d := range data.KeyDates {
		if d.IsDeadline {
			fmt.Fprintf(&b, "DEADLINE - %s: %s\n", d.Label, d.Date)
		} else {
			fmt.Fprintf(&b, "Date - %s: %s\n", d.Label, d.Date)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// GetSession returns a session with all its messages, verifying ownership.
func (s *ChatService) GetSession(ctx context.Context, ownerToken, sessionID string) (*model.Session, []model.Message, error) {
	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: session %s", app_errors.ErrNotFound, sessionID)
		}
		return nil, nil, fmt.Errorf("%w: %s", app_errors.ErrInternal, err)
	}
	if session.OwnerToken != ownerToken {
		return nil, nil, fmt.Errorf("%w: session %s", app_errors.ErrPermission, sessionID)
	}
	messages, err := s.repo.GetMessages(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: could not load messages: %s", app_errors.ErrInternal, err)
	}
	return session, messages, nil
}

// Summarize produces a Q&A summary of a conversation with one non-streaming
// provider call. The transcript is flattened to ROLE: content lines.
func (s *ChatService) Summarize(ctx context.Context, ownerToken, sessionID string) (string, error) {
	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", fmt.Errorf("%w: session %s", app_errors.ErrNotFound, sessionID)
		}
		return "", fmt.Errorf("%w: %s", app_errors.ErrInternal, err)
	}
	if session.OwnerToken != ownerToken {
		return "", fmt.Errorf("%w: session %s", app_errors.ErrPermission, sessionID)
	}

	// Count before loading the whole transcript.
	count, err := s.repo.CountMessages(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("%w: %s", app_errors.ErrInternal, err)
	}
	if count < 2 {
		return "", fmt.Errorf("%w: conversation has too few messages to summarize", app_errors.ErrValidation)
	}

	messages, err := s.repo.GetMessages(ctx, sessionID)
	if err != nil {
		return "", fmt.Errorf("%w: could not load messages: %s", app_errors.ErrInternal, err)
	}

	provider, err := s.factory.Provider()
	if err != nil {
		return "", fmt.Errorf("%w: %s", app_errors.ErrUnavailable, err)
	}

	var transcript strings.Builder
	for _, msg := range messages {
		if msg.Content == "" {
			continue
		}
		fmt.Fprintf(&transcript, "%s: %s\n", strings.ToUpper(msg.Role), msg.Content)
	}

	resp, err := provider.Generate(ctx, &llm.GenerateRequest{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: summarizationSystemPrompt},
			{Role: llm.RoleUser, Content: transcript.String()},
		},
		MaxTokens: 1024,
	})
	if err != nil {
		slog.Error("Summarization call failed", "session_id", sessionID, "error", err)
		return "", fmt.Errorf("%w: %s", app_errors.ErrUnavailable, err)
	}

	return strings.TrimSpace(resp.Content), nil
}

// Available reports whether the configured provider currently answers its
// liveness probe.
func (s *ChatService) Available(ctx context.Context) bool {
	provider, err := s.factory.Provider()
	if err != nil {
		slog.Warn("Provider unavailable during status check", "error", err)
		return false
	}
	return provider.HealthCheck(ctx)
}
