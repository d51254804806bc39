package repository

import (
	"context"

	"lexaid/backend/internal/model"
)

// Repository defines the storage operations for the chat and case
// subsystems. Sessions and messages are append-only: nothing here reorders
// or deletes a persisted message.
type Repository interface {
	CreateSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, sessionID string) (*model.Session, error)

	// AddMessage inserts the message and assigns the next sequence number
	// for its session inside a single transaction.
	AddMessage(ctx context.Context, message *model.Message) error
	GetMessages(ctx context.Context, sessionID string) ([]model.Message, error)
	CountMessages(ctx context.Context, sessionID string) (int64, error)

	// SaveCaseRecord upserts the single case record for the owner and
	// reports whether it was newly created.
	SaveCaseRecord(ctx context.Context, record *model.CaseRecord) (created bool, err error)
	GetCaseRecord(ctx context.Context, ownerToken string) (*model.CaseRecord, error)
	DeleteCaseRecord(ctx context.Context, ownerToken string) (deleted bool, err error)

	AddTimelineEvent(ctx context.Context, event *model.TimelineEvent) error
	GetTimeline(ctx context.Context, caseID string) ([]model.TimelineEvent, error)

	// Pending extraction candidates: at most one per owner, last wins.
	SavePendingExtraction(ctx context.Context, pending *model.PendingExtraction) error
	GetPendingExtraction(ctx context.Context, ownerToken string) (*model.PendingExtraction, error)
	MarkExtractionInjected(ctx context.Context, id string) error
	DeletePendingExtraction(ctx context.Context, ownerToken string) error
}
