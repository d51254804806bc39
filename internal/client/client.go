// Package client implements the consumer side of the streaming chat
// protocol: an HTTP API client and the state machine that reconstructs
// conversation state from the event stream.
package client

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"lexaid/backend/internal/model"
	"lexaid/backend/internal/service"
)

// ssePrefix marks a data line in a Server-Sent Events stream.
const ssePrefix = "data: "

// clientTokenHeader matches the header the server scopes identity by.
const clientTokenHeader = "X-Client-Token"

// API is a thin HTTP client for the backend. All calls carry the anonymous
// client token.
type API struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewAPI creates a client for the backend at baseURL, identified by token.
func NewAPI(baseURL, token string) *API {
	return &API{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		// No timeout: the stream endpoint holds the connection open for
		// the whole turn. Callers bound calls with a context.
		http: &http.Client{},
	}
}

// StreamRequest is the body of a stream call.
type StreamRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Agent     string `json:"agent,omitempty"`
	Message   string `json:"message"`
}

// Stream submits a user message and invokes handle for every protocol event
// until the stream ends. A non-2xx response is returned as an error before
// any event is delivered.
func (a *API) Stream(ctx context.Context, req *StreamRequest, handle func(model.StreamEvent)) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("could not encode stream request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/api/v1/chat/stream", bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(clientTokenHeader, a.token)

	resp, err := a.http.Do(httpReq)
	if err != nil {
		return fmt.Errorf("stream request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return a.decodeError(resp)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		event, ok := parseSSELine(scanner.Text())
		if !ok {
			continue
		}
		handle(event)
	}
	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("stream read failed: %w", err)
	}
	return nil
}

// parseSSELine extracts a protocol event from one SSE line. Blank lines,
// comments and undecodable payloads are skipped.
func parseSSELine(line string) (model.StreamEvent, bool) {
	if !strings.HasPrefix(line, ssePrefix) {
		return model.StreamEvent{}, false
	}
	var event model.StreamEvent
	if err := json.Unmarshal([]byte(strings.TrimPrefix(line, ssePrefix)), &event); err != nil {
		slog.Warn("Dropping undecodable stream line", "error", err)
		return model.StreamEvent{}, false
	}
	return event, true
}

// Summarize asks the server for a Q&A summary of one session.
func (a *API) Summarize(ctx context.Context, sessionID string) (string, error) {
	var out struct {
		Summary string `json:"summary"`
	}
	err := a.postJSON(ctx, "/api/v1/chat/summarize", map[string]string{"session_id": sessionID}, &out)
	return out.Summary, err
}

// GetCase fetches the case record, timeline and pending extraction.
func (a *API) GetCase(ctx context.Context) (*service.CaseView, error) {
	var view service.CaseView
	if err := a.getJSON(ctx, "/api/v1/case", &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// ConfirmCase applies the pending extraction to the case record.
func (a *API) ConfirmCase(ctx context.Context) (*service.ConfirmResult, error) {
	var result service.ConfirmResult
	if err := a.postJSON(ctx, "/api/v1/case/confirm", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RejectCase discards the pending extraction.
func (a *API) RejectCase(ctx context.Context) error {
	return a.postJSON(ctx, "/api/v1/case/reject", nil, nil)
}

// AddTimelineEvent appends one event to the case timeline.
func (a *API) AddTimelineEvent(ctx context.Context, eventType, title, content string) error {
	payload := map[string]string{
		"event_type": eventType,
		"title":      title,
		"content":    content,
	}
	return a.postJSON(ctx, "/api/v1/case/timeline", payload, nil)
}

// ClearCase deletes the case record and reports whether anything existed.
func (a *API) ClearCase(ctx context.Context) (bool, error) {
	var out struct {
		Deleted bool `json:"deleted"`
	}
	err := a.postJSON(ctx, "/api/v1/case/clear", nil, &out)
	return out.Deleted, err
}

// Status reports whether chat is enabled and the backend provider reachable.
func (a *API) Status(ctx context.Context) (enabled, available bool, err error) {
	var out struct {
		Enabled   bool `json:"enabled"`
		Available bool `json:"available"`
	}
	err = a.getJSON(ctx, "/api/v1/chat/status", &out)
	return out.Enabled, out.Available, err
}

// Upload sends a PDF and returns the extraction outcome.
func (a *API) Upload(ctx context.Context, path string) (*service.UploadResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close() //nolint:errcheck

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/api/v1/chat/upload", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set(clientTokenHeader, a.token)

	resp, err := a.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, a.decodeError(resp)
	}
	var result service.UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("could not decode upload response: %w", err)
	}
	return &result, nil
}

func (a *API) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set(clientTokenHeader, a.token)
	return a.do(req, out)
}

func (a *API) postJSON(ctx context.Context, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(clientTokenHeader, a.token)
	return a.do(req, out)
}

func (a *API) do(req *http.Request, out any) error {
	resp, err := a.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return a.decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("could not decode response: %w", err)
	}
	return nil
}

func (a *API) decodeError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, body.Error)
	}
	return fmt.Errorf("server returned %d", resp.StatusCode)
}
