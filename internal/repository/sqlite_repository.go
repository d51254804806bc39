package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"lexaid/backend/internal/model"
)

type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository returns a Repository backed by the given SQLite handle.
func NewSQLiteRepository(db *sql.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateSession(ctx context.Context, session *model.Session) error {
	query := "INSERT INTO sessions (id, owner_token, agent, created_at, updated_at) VALUES (?, ?, ?, ?, ?)"
	_, err := r.db.ExecContext(ctx, query,
		session.ID, session.OwnerToken, session.Agent, session.CreatedAt, session.UpdatedAt)
	return err
}

func (r *sqliteRepository) GetSession(ctx context.Context, sessionID string) (*model.Session, error) {
	query := "SELECT id, owner_token, agent, created_at, updated_at FROM sessions WHERE id = ?"
	row := r.db.QueryRowContext(ctx, query, sessionID)

	var s model.Session
	err := row.Scan(&s.ID, &s.OwnerToken, &s.Agent, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// AddMessage assigns the next sequence number and inserts the message in one
// transaction. The UNIQUE(session_id, seq) constraint backs up the
// append-only invariant if two writers ever race.
func (r *sqliteRepository) AddMessage(ctx context.Context, message *model.Message) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	var seq int64
	seqQuery := "SELECT COALESCE(MAX(seq), 0) + 1 FROM messages WHERE session_id = ?"
	if err := tx.QueryRowContext(ctx, seqQuery, message.SessionID).Scan(&seq); err != nil {
		return fmt.Errorf("could not compute next sequence: %w", err)
	}
	message.Seq = seq

	var toolCalls sql.NullString
	if len(message.ToolCalls) > 0 {
		raw, err := json.Marshal(message.ToolCalls)
		if err != nil {
			return fmt.Errorf("could not marshal tool calls: %w", err)
		}
		toolCalls.String = string(raw)
		toolCalls.Valid = true
	}

	insertQuery := `
		INSERT INTO messages (id, session_id, seq, role, content, tool_calls, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.ExecContext(ctx, insertQuery,
		message.ID, message.SessionID, message.Seq, message.Role, message.Content, toolCalls, message.CreatedAt)
	if err != nil {
		return fmt.Errorf("could not insert message: %w", err)
	}

	touchQuery := "UPDATE sessions SET updated_at = ? WHERE id = ?"
	if _, err := tx.ExecContext(ctx, touchQuery, time.Now().UTC(), message.SessionID); err != nil {
		return fmt.Errorf("could not update session timestamp: %w", err)
	}

	return tx.Commit()
}

func (r *sqliteRepository) GetMessages(ctx context.Context, sessionID string) ([]model.Message, error) {
	query := `
		SELECT id, session_id, seq, role, content, tool_calls, created_at
		FROM messages
		WHERE session_id = ?
		ORDER BY seq ASC
	`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []model.Message
	for rows.Next() {
		var msg model.Message
		var toolCalls sql.NullString

		if err := rows.Scan(&msg.ID, &msg.SessionID, &msg.Seq, &msg.Role, &msg.Content, &toolCalls, &msg.CreatedAt); err != nil {
			return nil, err
		}
		if toolCalls.Valid {
			if err := json.Unmarshal([]byte(toolCalls.String), &msg.ToolCalls); err != nil {
				return nil, fmt.Errorf("could not unmarshal tool calls for message %s: %w", msg.ID, err)
			}
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

func (r *sqliteRepository) CountMessages(ctx context.Context, sessionID string) (int64, error) {
	var count int64
	query := "SELECT COUNT(*) FROM messages WHERE session_id = ?"
	err := r.db.QueryRowContext(ctx, query, sessionID).Scan(&count)
	return count, err
}

// caseData is the JSON shape stored in the case_records data column. Keeping
// the case fields in one document keeps the schema stable as extraction
// fields evolve.
type caseData struct {
	CaseType  string          `json:"case_type"`
	Summary   string          `json:"summary"`
	CourtInfo model.CourtInfo `json:"court_info"`
	Parties   model.Parties   `json:"parties"`
	KeyDates  []model.KeyDate `json:"key_dates"`
}

func (r *sqliteRepository) SaveCaseRecord(ctx context.Context, record *model.CaseRecord) (bool, error) {
	raw, err := json.Marshal(caseData{
		CaseType:  record.CaseType,
		Summary:   record.Summary,
		CourtInfo: record.CourtInfo,
		Parties:   record.Parties,
		KeyDates:  record.KeyDates,
	})
	if err != nil {
		return false, fmt.Errorf("could not marshal case data: %w", err)
	}

	updateQuery := "UPDATE case_records SET data = ?, updated_at = ? WHERE owner_token = ?"
	res, err := r.db.ExecContext(ctx, updateQuery, string(raw), record.UpdatedAt, record.OwnerToken)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected > 0 {
		return false, nil
	}

	insertQuery := "INSERT INTO case_records (id, owner_token, data, created_at, updated_at) VALUES (?, ?, ?, ?, ?)"
	if _, err := r.db.ExecContext(ctx, insertQuery,
		record.ID, record.OwnerToken, string(raw), record.CreatedAt, record.UpdatedAt); err != nil {
		return false, err
	}
	return true, nil
}

func (r *sqliteRepository) GetCaseRecord(ctx context.Context, ownerToken string) (*model.CaseRecord, error) {
	query := "SELECT id, owner_token, data, created_at, updated_at FROM case_records WHERE owner_token = ?"
	row := r.db.QueryRowContext(ctx, query, ownerToken)

	var rec model.CaseRecord
	var raw string
	err := row.Scan(&rec.ID, &rec.OwnerToken, &raw, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var data caseData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("could not unmarshal case data: %w", err)
	}
	rec.CaseType = data.CaseType
	rec.Summary = data.Summary
	rec.CourtInfo = data.CourtInfo
	rec.Parties = data.Parties
	rec.KeyDates = data.KeyDates
	return &rec, nil
}

func (r *sqliteRepository) DeleteCaseRecord(ctx context.Context, ownerToken string) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM case_records WHERE owner_token = ?", ownerToken)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *sqliteRepository) AddTimelineEvent(ctx context.Context, event *model.TimelineEvent) error {
	var metadata sql.NullString
	if len(event.Metadata) > 0 && string(event.Metadata) != "null" {
		metadata.String = string(event.Metadata)
		metadata.Valid = true
	}

	query := `
		INSERT INTO timeline_events (id, case_id, event_type, title, content, metadata, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		event.ID, event.CaseID, event.EventType, event.Title, event.Content, metadata, event.CreatedAt)
	return err
}

func (r *sqliteRepository) GetTimeline(ctx context.Context, caseID string) ([]model.TimelineEvent, error) {
	query := `
		SELECT id, case_id, event_type, title, content, metadata, created_at
		FROM timeline_events
		WHERE case_id = ?
		ORDER BY created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, caseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.TimelineEvent
	for rows.Next() {
		var ev model.TimelineEvent
		var metadata sql.NullString
		if err := rows.Scan(&ev.ID, &ev.CaseID, &ev.EventType, &ev.Title, &ev.Content, &metadata, &ev.CreatedAt); err != nil {
			return nil, err
		}
		if metadata.Valid {
			ev.Metadata = json.RawMessage(metadata.String)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (r *sqliteRepository) SavePendingExtraction(ctx context.Context, pending *model.PendingExtraction) error {
	raw, err := json.Marshal(pending.Data)
	if err != nil {
		return fmt.Errorf("could not marshal extraction data: %w", err)
	}

	// Last upload wins: replace any unconfirmed candidate for this owner.
	query := `
		INSERT INTO pending_extractions (id, owner_token, data, context_injected, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(owner_token) DO UPDATE SET
			id = excluded.id,
			data = excluded.data,
			context_injected = excluded.context_injected,
			created_at = excluded.created_at
	`
	_, err = r.db.ExecContext(ctx, query,
		pending.ID, pending.OwnerToken, string(raw), pending.ContextInjected, pending.CreatedAt)
	return err
}

func (r *sqliteRepository) GetPendingExtraction(ctx context.Context, ownerToken string) (*model.PendingExtraction, error) {
	query := "SELECT id, owner_token, data, context_injected, created_at FROM pending_extractions WHERE owner_token = ?"
	row := r.db.QueryRowContext(ctx, query, ownerToken)

	var p model.PendingExtraction
	var raw string
	err := row.Scan(&p.ID, &p.OwnerToken, &raw, &p.ContextInjected, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal([]byte(raw), &p.Data); err != nil {
		return nil, fmt.Errorf("could not unmarshal extraction data: %w", err)
	}
	return &p, nil
}

func (r *sqliteRepository) MarkExtractionInjected(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, "UPDATE pending_extractions SET context_injected = TRUE WHERE id = ?", id)
	return err
}

func (r *sqliteRepository) DeletePendingExtraction(ctx context.Context, ownerToken string) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM pending_extractions WHERE owner_token = ?", ownerToken)
	return err
}
