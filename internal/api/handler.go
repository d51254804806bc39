package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"lexaid/backend/internal/config"
	"lexaid/backend/internal/interfaces"
	"lexaid/backend/internal/model"
	"lexaid/backend/internal/pdf"
	"lexaid/backend/internal/service"
)

// ChatHandler handles HTTP requests for the chat endpoints: streaming turns,
// document upload, status, and summarization.
type ChatHandler struct {
	chat       interfaces.ChatService
	extraction interfaces.ExtractionService
	cfg        *config.Config
}

func NewChatHandler(chat interfaces.ChatService, extraction interfaces.ExtractionService, cfg *config.Config) *ChatHandler {
	return &ChatHandler{chat: chat, extraction: extraction, cfg: cfg}
}

// ChatStatusResponse reports whether chat is enabled and the provider is up.
type ChatStatusResponse struct {
	Enabled   bool `json:"enabled"`
	Available bool `json:"available"`
}

// SessionResponse bundles a session with its full message history.
type SessionResponse struct {
	Session  *model.Session  `json:"session"`
	Messages []model.Message `json:"messages"`
}

// SummarizeRequest asks for a Q&A summary of one conversation.
type SummarizeRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

// SummaryResponse carries the generated conversation summary.
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// HandleStream godoc
// @Summary      Stream a chat turn
// @Description  Submits a user message and streams the response as Server-Sent Events.
// @Tags         Chat
// @Accept       json
// @Produce      text/event-stream
// @Param        X-Client-Token  header  string  true  "Anonymous client token"
// @Param        message  body  service.CreateMessageRequest  true  "User message"
// @Success      200  {object}  model.StreamEvent
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      503  {object}  ErrorResponse
// @Router       /v1/chat/stream [post]
func (h *ChatHandler) HandleStream(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerToken(r)
	if err != nil {
		respondWithError(w, err)
		return
	}

	var req service.CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, errInvalidBody(err))
		return
	}
	req.OwnerToken = owner
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	// Every synchronous check happens before the SSE response starts, so
	// rejections (unknown agent, busy session, provider down) arrive as
	// plain HTTP errors with no partial stream.
	turn, err := h.chat.StartTurn(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	events := make(chan model.StreamEvent)
	go turn.Run(r.Context(), events)

	for event := range events {
		if r.Context().Err() != nil {
			slog.Info("Client disconnected, draining stream", "session_id", turn.SessionID())
			// Keep draining so Run can observe the cancellation and
			// close the channel.
			continue
		}
		if err := writeStreamEvent(w, event); err != nil {
			slog.Warn("Stream write failed, client likely disconnected", "session_id", turn.SessionID(), "error", err)
		}
	}
}

// HandleStatus godoc
// @Summary      Chat service status
// @Description  Reports whether chat is enabled and the language-model backend is reachable.
// @Tags         Chat
// @Produce      json
// @Success      200  {object}  ChatStatusResponse
// @Router       /v1/chat/status [get]
func (h *ChatHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	status := ChatStatusResponse{Enabled: h.cfg.ChatEnabled}
	if status.Enabled {
		status.Available = h.chat.Available(r.Context())
	}
	respondWithJSON(w, http.StatusOK, status)
}

// HandleGetSession godoc
// @Summary      Get a session
// @Description  Returns a session and its full message history.
// @Tags         Chat
// @Produce      json
// @Param        X-Client-Token  header  string  true  "Anonymous client token"
// @Param        sessionID  path  string  true  "Session ID"
// @Success      200  {object}  SessionResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/chat/sessions/{sessionID} [get]
func (h *ChatHandler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerToken(r)
	if err != nil {
		respondWithError(w, err)
		return
	}

	sessionID := chi.URLParam(r, "sessionID")
	session, messages, err := h.chat.GetSession(r.Context(), owner, sessionID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, SessionResponse{Session: session, Messages: messages})
}

// HandleUpload godoc
// @Summary      Upload a legal document
// @Description  Accepts a PDF, extracts its text and stages structured case data for confirmation. Analysis failure is reported in the body, not as an HTTP error.
// @Tags         Chat
// @Accept       multipart/form-data
// @Produce      json
// @Param        X-Client-Token  header  string  true  "Anonymous client token"
// @Param        file  formData  file  true  "PDF document"
// @Success      200  {object}  service.UploadResult
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/chat/upload [post]
func (h *ChatHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerToken(r)
	if err != nil {
		respondWithError(w, err)
		return
	}

	// Parse up to the size cap plus a little slack for the form envelope.
	if err := r.ParseMultipartForm(int64(pdf.MaxFileSizeBytes) + 1<<20); err != nil {
		respondWithError(w, errInvalidBody(err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondWithError(w, errInvalidBody(err))
		return
	}
	defer file.Close() //nolint:errcheck

	result, err := h.extraction.ProcessUpload(
		r.Context(),
		owner,
		header.Filename,
		header.Header.Get("Content-Type"),
		header.Size,
		file,
	)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// HandleSummarize godoc
// @Summary      Summarize a conversation
// @Description  Produces a Q&A summary of the conversation's user questions and answers.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        X-Client-Token  header  string  true  "Anonymous client token"
// @Param        request  body  SummarizeRequest  true  "Session to summarize"
// @Success      200  {object}  SummaryResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Failure      503  {object}  ErrorResponse
// @Router       /v1/chat/summarize [post]
func (h *ChatHandler) HandleSummarize(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerToken(r)
	if err != nil {
		respondWithError(w, err)
		return
	}

	var req SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, errInvalidBody(err))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	summary, err := h.chat.Summarize(r.Context(), owner, req.SessionID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, SummaryResponse{Summary: summary})
}
