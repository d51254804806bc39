package interfaces

import (
	"context"
	"encoding/json"
	"io"

	"lexaid/backend/internal/model"
	"lexaid/backend/internal/service"
)

// This file defines the interfaces for our core services.
// Depending on these interfaces, instead of concrete implementations, allows for
// decoupling (e.g., API layer from Service layer) and easier testing via mocking.

// ChatService defines the contract for chat-related business logic.
type ChatService interface {
	StartTurn(ctx context.Context, req *service.CreateMessageRequest) (service.TurnRunner, error)
	GetSession(ctx context.Context, ownerToken, sessionID string) (*model.Session, []model.Message, error)
	Summarize(ctx context.Context, ownerToken, sessionID string) (string, error)
	Available(ctx context.Context) bool
}

// CaseService defines the contract for case record management.
type CaseService interface {
	Get(ctx context.Context, ownerToken string) (*service.CaseView, error)
	Confirm(ctx context.Context, ownerToken string) (*service.ConfirmResult, error)
	Reject(ctx context.Context, ownerToken string) error
	AddTimelineEvent(ctx context.Context, ownerToken, eventType, title, content string, metadata json.RawMessage) (*model.TimelineEvent, error)
	Clear(ctx context.Context, ownerToken string) (bool, error)
}

// ExtractionService defines the contract for document upload processing.
type ExtractionService interface {
	ProcessUpload(ctx context.Context, ownerToken, filename, contentType string, size int64, r io.ReaderAt) (*service.UploadResult, error)
}
