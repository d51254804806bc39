package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"lexaid/backend/internal/api"
	"lexaid/backend/internal/config"
	app_errors "lexaid/backend/internal/errors"
	"lexaid/backend/internal/interfaces/mocks"
	"lexaid/backend/internal/model"
	"lexaid/backend/internal/service"
	service_mocks "lexaid/backend/internal/service/mocks"
)

const testToken = "token-1"

type apiFixture struct {
	chat       *mocks.MockChatService
	cases      *mocks.MockCaseService
	extraction *mocks.MockExtractionService
	router     http.Handler
}

func setupAPI(t *testing.T) *apiFixture {
	t.Helper()
	f := &apiFixture{
		chat:       mocks.NewMockChatService(t),
		cases:      mocks.NewMockCaseService(t),
		extraction: mocks.NewMockExtractionService(t),
	}
	cfg := &config.Config{ChatEnabled: true}
	f.router = api.NewRouter(
		api.NewChatHandler(f.chat, f.extraction, cfg),
		api.NewCaseHandler(f.cases),
	)
	return f
}

// request performs one HTTP request against the router with the client token
// set. Pass token "" to simulate a client without an identity.
func (f *apiFixture) request(method, path, token string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("X-Client-Token", token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body api.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

// parseSSE decodes every data frame in a recorded event stream.
func parseSSE(t *testing.T, body string) []model.StreamEvent {
	t.Helper()
	var events []model.StreamEvent
	for _, line := range strings.Split(body, "\n") {
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var event model.StreamEvent
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &event))
		events = append(events, event)
	}
	return events
}

func TestHandleStream(t *testing.T) {
	t.Run("Success - full event stream", func(t *testing.T) {
		f := setupAPI(t)

		turn := service_mocks.NewMockTurnRunner(t)
		turn.On("Run", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			ch := args.Get(1).(chan<- model.StreamEvent)
			ch <- model.StreamEvent{Type: model.EventSession, SessionID: "sess-1"}
			ch <- model.StreamEvent{Type: model.EventContentDelta, Content: "Hello!"}
			ch <- model.StreamEvent{Type: model.EventDone}
			close(ch)
		}).Once()

		f.chat.On("StartTurn", mock.Anything, mock.MatchedBy(func(req *service.CreateMessageRequest) bool {
			return req.OwnerToken == testToken && req.Content == "Hello"
		})).Return(turn, nil).Once()

		rec := f.request(http.MethodPost, "/api/v1/chat/stream", testToken,
			strings.NewReader(`{"message": "Hello"}`))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

		events := parseSSE(t, rec.Body.String())
		require.Len(t, events, 3)
		assert.Equal(t, model.EventSession, events[0].Type)
		assert.Equal(t, "sess-1", events[0].SessionID)
		assert.Equal(t, "Hello!", events[1].Content)
		assert.Equal(t, model.EventDone, events[2].Type)
	})

	t.Run("Failure - missing client token", func(t *testing.T) {
		f := setupAPI(t)
		rec := f.request(http.MethodPost, "/api/v1/chat/stream", "",
			strings.NewReader(`{"message": "Hello"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec), "X-Client-Token")
	})

	t.Run("Failure - empty message rejected by validation", func(t *testing.T) {
		f := setupAPI(t)
		rec := f.request(http.MethodPost, "/api/v1/chat/stream", testToken,
			strings.NewReader(`{"message": ""}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec), "Field 'Content' failed on the 'required' tag")
	})

	t.Run("Failure - malformed JSON body", func(t *testing.T) {
		f := setupAPI(t)
		rec := f.request(http.MethodPost, "/api/v1/chat/stream", testToken,
			strings.NewReader(`{broken`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Failure - busy session rejected before streaming starts", func(t *testing.T) {
		f := setupAPI(t)
		f.chat.On("StartTurn", mock.Anything, mock.Anything).
			Return(nil, app_errors.ErrConflict).Once()

		rec := f.request(http.MethodPost, "/api/v1/chat/stream", testToken,
			strings.NewReader(`{"message": "Hello", "session_id": "sess-1"}`))

		// A plain HTTP error, not a partial event stream.
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, "A response is already streaming for this session.", decodeError(t, rec))
	})

	t.Run("Failure - provider down maps to 503", func(t *testing.T) {
		f := setupAPI(t)
		f.chat.On("StartTurn", mock.Anything, mock.Anything).
			Return(nil, app_errors.ErrUnavailable).Once()

		rec := f.request(http.MethodPost, "/api/v1/chat/stream", testToken,
			strings.NewReader(`{"message": "Hello"}`))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestHandleStatus(t *testing.T) {
	t.Run("Enabled and available", func(t *testing.T) {
		f := setupAPI(t)
		f.chat.On("Available", mock.Anything).Return(true).Once()

		rec := f.request(http.MethodGet, "/api/v1/chat/status", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var status api.ChatStatusResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
		assert.True(t, status.Enabled)
		assert.True(t, status.Available)
	})

	t.Run("Disabled chat never probes the provider", func(t *testing.T) {
		chat := mocks.NewMockChatService(t)
		router := api.NewRouter(
			api.NewChatHandler(chat, mocks.NewMockExtractionService(t), &config.Config{ChatEnabled: false}),
			api.NewCaseHandler(mocks.NewMockCaseService(t)),
		)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/chat/status", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var status api.ChatStatusResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
		assert.False(t, status.Enabled)
		assert.False(t, status.Available)
	})
}

func TestHandleGetSession(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := setupAPI(t)
		session := &model.Session{ID: "sess-1", OwnerToken: testToken}
		messages := []model.Message{{ID: "msg-1", Role: model.RoleUser, Content: "Hello"}}
		f.chat.On("GetSession", mock.Anything, testToken, "sess-1").
			Return(session, messages, nil).Once()

		rec := f.request(http.MethodGet, "/api/v1/chat/sessions/sess-1", testToken, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var body api.SessionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "sess-1", body.Session.ID)
		assert.Len(t, body.Messages, 1)
	})

	t.Run("Failure - someone else's session maps to 403", func(t *testing.T) {
		f := setupAPI(t)
		f.chat.On("GetSession", mock.Anything, testToken, "sess-2").
			Return(nil, nil, app_errors.ErrPermission).Once()

		rec := f.request(http.MethodGet, "/api/v1/chat/sessions/sess-2", testToken, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Failure - unknown session maps to 404", func(t *testing.T) {
		f := setupAPI(t)
		f.chat.On("GetSession", mock.Anything, testToken, "nope").
			Return(nil, nil, app_errors.ErrNotFound).Once()

		rec := f.request(http.MethodGet, "/api/v1/chat/sessions/nope", testToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandleSummarize(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := setupAPI(t)
		f.chat.On("Summarize", mock.Anything, testToken, "sess-1").
			Return("Q: ...\nA: ...", nil).Once()

		rec := f.request(http.MethodPost, "/api/v1/chat/summarize", testToken,
			strings.NewReader(`{"session_id": "sess-1"}`))

		require.Equal(t, http.StatusOK, rec.Code)
		var body api.SummaryResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body.Summary, "Q:")
	})

	t.Run("Failure - missing session id", func(t *testing.T) {
		f := setupAPI(t)
		rec := f.request(http.MethodPost, "/api/v1/chat/summarize", testToken,
			strings.NewReader(`{}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec), "Field 'SessionID' failed on the 'required' tag")
	})
}

// multipartPDF builds a multipart body with one PDF form file.
func multipartPDF(t *testing.T, filename string, content []byte) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", "application/pdf")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func TestHandleUpload(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := setupAPI(t)
		f.extraction.On("ProcessUpload", mock.Anything, testToken, "notice.pdf", "application/pdf", mock.AnythingOfType("int64"), mock.Anything).
			Return(&service.UploadResult{Filename: "notice.pdf", PageCount: 2}, nil).Once()

		body, contentType := multipartPDF(t, "notice.pdf", []byte("%PDF-1.4 ..."))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/upload", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("X-Client-Token", testToken)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var result service.UploadResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, "notice.pdf", result.Filename)
		assert.Equal(t, 2, result.PageCount)
	})

	t.Run("Failure - no file part", func(t *testing.T) {
		f := setupAPI(t)

		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/upload", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		req.Header.Set("X-Client-Token", testToken)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Failure - invalid upload maps to 400", func(t *testing.T) {
		f := setupAPI(t)
		f.extraction.On("ProcessUpload", mock.Anything, testToken, "notes.txt", "application/pdf", mock.AnythingOfType("int64"), mock.Anything).
			Return(nil, app_errors.ErrValidation).Once()

		body, contentType := multipartPDF(t, "notes.txt", []byte("plain text"))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/upload", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("X-Client-Token", testToken)
		rec := httptest.NewRecorder()
		f.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
