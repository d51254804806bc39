package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	app_errors "lexaid/backend/internal/errors"
	"lexaid/backend/internal/model"
	"lexaid/backend/internal/repository"
)

// CaseService reconciles extraction candidates into the durable case record
// and maintains its append-only timeline.
type CaseService struct {
	repo repository.Repository
}

func NewCaseService(repo repository.Repository) *CaseService {
	return &CaseService{repo: repo}
}

// CaseView is the full case state returned to the client. CaseInfo is nil
// when no record exists yet.
type CaseView struct {
	CaseInfo *model.CaseRecord       `json:"case_info"`
	Timeline []model.TimelineEvent   `json:"timeline"`
	Pending  *model.ExtractedCaseData `json:"pending,omitempty"`
}

// FieldChange describes one field updated by a merge.
type FieldChange struct {
	Field string `json:"field"`
	Old   string `json:"old,omitempty"`
	New   string `json:"new"`
}

// ConfirmResult reports the outcome of confirming a pending extraction.
type ConfirmResult struct {
	Created bool          `json:"created"`
	Changes []FieldChange `json:"changes,omitempty"`
}

// Get returns the case record, timeline, and any pending extraction for the
// owner.
func (s *CaseService) Get(ctx context.Context, ownerToken string) (*CaseView, error) {
	view := &CaseView{Timeline: []model.TimelineEvent{}}

	record, err := s.repo.GetCaseRecord(ctx, ownerToken)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: could not load case record: %s", app_errors.ErrInternal, err)
	}
	if record != nil {
		view.CaseInfo = record
		timeline, err := s.repo.GetTimeline(ctx, record.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: could not load timeline: %s", app_errors.ErrInternal, err)
		}
		if timeline != nil {
			view.Timeline = timeline
		}
	}

	pending, err := s.repo.GetPendingExtraction(ctx, ownerToken)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: could not load pending extraction: %s", app_errors.ErrInternal, err)
	}
	if pending != nil {
		view.Pending = &pending.Data
	}

	return view, nil
}

// Confirm applies the owner's pending extraction to the case record. The
// first confirmation adopts the candidate verbatim; later ones merge field
// by field, recording one change-type timeline event per changed field.
// Confirming the same data twice produces no further changes.
func (s *CaseService) Confirm(ctx context.Context, ownerToken string) (*ConfirmResult, error) {
	pending, err := s.repo.GetPendingExtraction(ctx, ownerToken)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: no pending extraction to confirm", app_errors.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: %s", app_errors.ErrInternal, err)
	}

	record, err := s.repo.GetCaseRecord(ctx, ownerToken)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", app_errors.ErrInternal, err)
	}

	now := time.Now().UTC()
	result := &ConfirmResult{}

	if record == nil {
		record = &model.CaseRecord{
			ID:         uuid.NewString(),
			OwnerToken: ownerToken,
			CaseType:   pending.Data.CaseType,
			Summary:    pending.Data.Summary,
			CourtInfo:  pending.Data.CourtInfo,
			Parties:    pending.Data.Parties,
			KeyDates:   append([]model.KeyDate(nil), pending.Data.KeyDates...),
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		result.Created = true
	} else {
		result.Changes = mergeRecord(record, &pending.Data)
		record.UpdatedAt = now
	}

	if _, err := s.repo.SaveCaseRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("%w: could not save case record: %s", app_errors.ErrInternal, err)
	}

	for _, change := range result.Changes {
		event := &model.TimelineEvent{
			ID:        uuid.NewString(),
			CaseID:    record.ID,
			EventType: model.TimelineChange,
			Title:     fmt.Sprintf("Updated %s", change.Field),
			Content:   changeContent(change),
			CreatedAt: time.Now().UTC(),
		}
		if err := s.repo.AddTimelineEvent(ctx, event); err != nil {
			slog.Error("Failed to record timeline change", "case_id", record.ID, "field", change.Field, "error", err)
		}
	}

	if err := s.repo.DeletePendingExtraction(ctx, ownerToken); err != nil {
		slog.Warn("Failed to delete confirmed extraction candidate", "owner", ownerToken, "error", err)
	}

	return result, nil
}

// Reject discards the pending extraction without touching the case record.
func (s *CaseService) Reject(ctx context.Context, ownerToken string) error {
	if _, err := s.repo.GetPendingExtraction(ctx, ownerToken); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: no pending extraction to reject", app_errors.ErrNotFound)
		}
		return fmt.Errorf("%w: %s", app_errors.ErrInternal, err)
	}
	if err := s.repo.DeletePendingExtraction(ctx, ownerToken); err != nil {
		return fmt.Errorf("%w: could not discard extraction: %s", app_errors.ErrInternal, err)
	}
	return nil
}

// AddTimelineEvent appends an event to the owner's timeline, creating an
// empty case record first if none exists.
func (s *CaseService) AddTimelineEvent(ctx context.Context, ownerToken, eventType, title, content string, metadata json.RawMessage) (*model.TimelineEvent, error) {
	if !model.ValidTimelineEventType(eventType) {
		return nil, fmt.Errorf("%w: unknown timeline event type %q", app_errors.ErrValidation, eventType)
	}
	if len(metadata) > 0 && !json.Valid(metadata) {
		return nil, fmt.Errorf("%w: metadata must be valid JSON", app_errors.ErrValidation)
	}

	record, err := s.getOrCreateRecord(ctx, ownerToken)
	if err != nil {
		return nil, err
	}

	event := &model.TimelineEvent{
		ID:        uuid.NewString(),
		CaseID:    record.ID,
		EventType: eventType,
		Title:     title,
		Content:   content,
		Metadata:  metadata,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.AddTimelineEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("%w: could not append timeline event: %s", app_errors.ErrInternal, err)
	}
	return event, nil
}

// Clear deletes the case record and, by cascade, its timeline. Any pending
// extraction is discarded too. Reports whether anything was deleted.
func (s *CaseService) Clear(ctx context.Context, ownerToken string) (bool, error) {
	if err := s.repo.DeletePendingExtraction(ctx, ownerToken); err != nil {
		slog.Warn("Failed to discard pending extraction during clear", "owner", ownerToken, "error", err)
	}
	deleted, err := s.repo.DeleteCaseRecord(ctx, ownerToken)
	if err != nil {
		return false, fmt.Errorf("%w: could not clear case record: %s", app_errors.ErrInternal, err)
	}
	return deleted, nil
}

func (s *CaseService) getOrCreateRecord(ctx context.Context, ownerToken string) (*model.CaseRecord, error) {
	record, err := s.repo.GetCaseRecord(ctx, ownerToken)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", app_errors.ErrInternal, err)
	}

	now := time.Now().UTC()
	record = &model.CaseRecord{
		ID:         uuid.NewString(),
		OwnerToken: ownerToken,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := s.repo.SaveCaseRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("%w: could not create case record: %s", app_errors.ErrInternal, err)
	}
	return record, nil
}

func changeContent(change FieldChange) string {
	if change.Old == "" {
		return change.New
	}
	return fmt.Sprintf("%s -> %s", change.Old, change.New)
}
