package api

import (
	"encoding/json"
	"net/http"

	"lexaid/backend/internal/interfaces"
)

// CaseHandler handles HTTP requests for the user's case record and timeline.
type CaseHandler struct {
	cases interfaces.CaseService
}

func NewCaseHandler(cases interfaces.CaseService) *CaseHandler {
	return &CaseHandler{cases: cases}
}

// TimelineEventRequest appends one event to the case timeline.
type TimelineEventRequest struct {
	EventType string          `json:"event_type" validate:"required"`
	Title     string          `json:"title" validate:"required,min=1,max=200"`
	Content   string          `json:"content" validate:"max=10000"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
}

// ClearResponse reports whether a clear actually removed a record.
type ClearResponse struct {
	Deleted bool `json:"deleted"`
}

// HandleGetCase godoc
// @Summary      Get case record
// @Description  Returns the confirmed case record, its timeline, and any pending extraction.
// @Tags         Case
// @Produce      json
// @Param        X-Client-Token  header  string  true  "Anonymous client token"
// @Success      200  {object}  service.CaseView
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/case [get]
func (h *CaseHandler) HandleGetCase(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerToken(r)
	if err != nil {
		respondWithError(w, err)
		return
	}

	view, err := h.cases.Get(r.Context(), owner)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, view)
}

// HandleConfirm godoc
// @Summary      Confirm pending extraction
// @Description  Merges the pending extraction into the case record and returns the field-level diff.
// @Tags         Case
// @Produce      json
// @Param        X-Client-Token  header  string  true  "Anonymous client token"
// @Success      200  {object}  service.ConfirmResult
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/case/confirm [post]
func (h *CaseHandler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerToken(r)
	if err != nil {
		respondWithError(w, err)
		return
	}

	result, err := h.cases.Confirm(r.Context(), owner)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// HandleReject godoc
// @Summary      Reject pending extraction
// @Description  Discards the pending extraction without changing the case record.
// @Tags         Case
// @Produce      json
// @Param        X-Client-Token  header  string  true  "Anonymous client token"
// @Success      200  {object}  StatusResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /v1/case/reject [post]
func (h *CaseHandler) HandleReject(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerToken(r)
	if err != nil {
		respondWithError(w, err)
		return
	}

	if err := h.cases.Reject(r.Context(), owner); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// HandleAddTimelineEvent godoc
// @Summary      Append timeline event
// @Description  Adds one event to the case timeline, creating the case record if needed.
// @Tags         Case
// @Accept       json
// @Produce      json
// @Param        X-Client-Token  header  string  true  "Anonymous client token"
// @Param        event  body  TimelineEventRequest  true  "Timeline event"
// @Success      201  {object}  model.TimelineEvent
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/case/timeline [post]
func (h *CaseHandler) HandleAddTimelineEvent(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerToken(r)
	if err != nil {
		respondWithError(w, err)
		return
	}

	var req TimelineEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, errInvalidBody(err))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	event, err := h.cases.AddTimelineEvent(r.Context(), owner, req.EventType, req.Title, req.Content, req.Metadata)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, event)
}

// HandleClear godoc
// @Summary      Clear case record
// @Description  Deletes the case record and its timeline. Safe to call when nothing exists.
// @Tags         Case
// @Produce      json
// @Param        X-Client-Token  header  string  true  "Anonymous client token"
// @Success      200  {object}  ClearResponse
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/case/clear [post]
func (h *CaseHandler) HandleClear(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerToken(r)
	if err != nil {
		respondWithError(w, err)
		return
	}

	deleted, err := h.cases.Clear(r.Context(), owner)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ClearResponse{Deleted: deleted})
}
