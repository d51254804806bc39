package model

import (
	"encoding/json"
	"time"
)

// CourtInfo holds court details extracted from a document.
type CourtInfo struct {
	CourtName  string `json:"court_name,omitempty"`
	County     string `json:"county,omitempty"`
	CaseNumber string `json:"case_number,omitempty"`
	Address    string `json:"address,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
}

// Parties holds the people and representatives involved in the case.
type Parties struct {
	UserName        string `json:"user_name,omitempty"`
	UserAddress     string `json:"user_address,omitempty"`
	OpposingParty   string `json:"opposing_party,omitempty"`
	OpposingAddress string `json:"opposing_address,omitempty"`
	OpposingPhone   string `json:"opposing_phone,omitempty"`
	OpposingEmail   string `json:"opposing_email,omitempty"`
	AttorneyName    string `json:"attorney_name,omitempty"`
	AttorneyPhone   string `json:"attorney_phone,omitempty"`
	AttorneyEmail   string `json:"attorney_email,omitempty"`
}

// KeyDate is a date extracted from a legal document. IsDeadline marks dates
// the user must act on.
type KeyDate struct {
	Label      string `json:"label"`
	Date       string `json:"date"`
	IsDeadline bool   `json:"is_deadline"`
}

// ExtractedCaseData is the structured output of document extraction. It is a
// candidate only: it never becomes durable case state until the user
// confirms it.
type ExtractedCaseData struct {
	CaseType   string    `json:"case_type"`
	Summary    string    `json:"summary"`
	Confidence float64   `json:"confidence"`
	CourtInfo  CourtInfo `json:"court_info"`
	Parties    Parties   `json:"parties"`
	KeyDates   []KeyDate `json:"key_dates"`
}

// CaseRecord is the durable, user-confirmed case state for one owner.
// Provenance is exposed only through TimelineEvents.
type CaseRecord struct {
	ID         string    `json:"id"`
	OwnerToken string    `json:"-"`
	CaseType   string    `json:"case_type"`
	Summary    string    `json:"summary"`
	CourtInfo  CourtInfo `json:"court_info"`
	Parties    Parties   `json:"parties"`
	KeyDates   []KeyDate `json:"key_dates"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// PendingExtraction is an extraction candidate awaiting the user's decision.
// ContextInjected tracks whether the candidate summary has already been
// injected once as hidden context into a chat turn.
type PendingExtraction struct {
	ID              string            `json:"id"`
	OwnerToken      string            `json:"-"`
	Data            ExtractedCaseData `json:"data"`
	ContextInjected bool              `json:"context_injected"`
	CreatedAt       time.Time         `json:"created_at"`
}

// Timeline event types.
const (
	TimelineUpload  = "upload"
	TimelineSummary = "summary"
	TimelineChange  = "change"
)

// TimelineEvent is one append-only provenance entry on a case record.
type TimelineEvent struct {
	ID        string          `json:"id"`
	CaseID    string          `json:"case_id"`
	EventType string          `json:"event_type"`
	Title     string          `json:"title"`
	Content   string          `json:"content,omitempty"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// ValidTimelineEventType reports whether t is one of the known event types.
func ValidTimelineEventType(t string) bool {
	switch t {
	case TimelineUpload, TimelineSummary, TimelineChange:
		return true
	}
	return false
}
