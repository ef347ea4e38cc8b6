package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cavxn/AI-Interview-Preparation-System/internal/logger"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/models"
)

const sessionColumns = "session_id, user_id, start_time, end_time, duration_seconds, average_confidence, dominant_emotion, total_questions, session_summary"

// SessionUpdate carries the nullable end-of-session fields applied when a
// session is closed. Nil fields are left untouched.
type SessionUpdate struct {
	EndTime           *time.Time
	DurationSeconds   *int
	AverageConfidence *float64
	DominantEmotion   *string
	TotalQuestions    *int
	SessionSummary    *string
}

// SessionWriteRepository handles session write operations
type SessionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSessionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SessionWriteRepository {
	return &SessionWriteRepository{db: db, txGetter: txGetter}
}

func (r *SessionWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save creates a new open session for the user and returns it.
func (r *SessionWriteRepository) Save(ctx context.Context, userID uuid.UUID) (*models.SessionDB, error) {
	query := `
		INSERT INTO interview_sessions (session_id, user_id, start_time, total_questions)
		VALUES ($1, $2, NOW(), 0)
		RETURNING ` + sessionColumns + `
	`
	args := []any{uuid.New(), userID}

	var session models.SessionDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &session, query, args...)

	logger.Log.Infow("session insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Update applies end-of-session fields to a session owned by the user.
// Returns nil when no such session exists.
func (r *SessionWriteRepository) Update(ctx context.Context, sessionID, userID uuid.UUID, upd SessionUpdate) (*models.SessionDB, error) {
	query := `
		UPDATE interview_sessions
		SET end_time           = COALESCE($3, end_time),
		    duration_seconds   = COALESCE($4, duration_seconds),
		    average_confidence = COALESCE($5, average_confidence),
		    dominant_emotion   = COALESCE($6, dominant_emotion),
		    total_questions    = COALESCE($7, total_questions),
		    session_summary    = COALESCE($8, session_summary)
		WHERE session_id = $1 AND user_id = $2
		RETURNING ` + sessionColumns + `
	`
	args := []any{
		sessionID, userID,
		upd.EndTime, upd.DurationSeconds, upd.AverageConfidence,
		upd.DominantEmotion, upd.TotalQuestions, upd.SessionSummary,
	}

	var session models.SessionDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &session, query, args...)

	logger.Log.Infow("session update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{sessionID, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// SessionReadRepository handles session read operations
type SessionReadRepository struct {
	db *sqlx.DB
}

func NewSessionReadRepository(db *sqlx.DB) *SessionReadRepository {
	return &SessionReadRepository{db: db}
}

// GetByIDAndUser returns the session with the given id owned by the user,
// or nil if absent. Ownership is part of the lookup so foreign sessions are
// indistinguishable from missing ones.
func (r *SessionReadRepository) GetByIDAndUser(ctx context.Context, sessionID, userID uuid.UUID) (*models.SessionDB, error) {
	const query = `
		SELECT ` + sessionColumns + `
		FROM interview_sessions
		WHERE session_id = $1 AND user_id = $2
		LIMIT 1
	`

	var session models.SessionDB
	err := r.db.GetContext(ctx, &session, query, sessionID, userID)

	logger.Log.Infow("session query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{sessionID, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// ListByUser returns all sessions of the user, newest first.
func (r *SessionReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.SessionDB, error) {
	const query = `
		SELECT ` + sessionColumns + `
		FROM interview_sessions
		WHERE user_id = $1
		ORDER BY start_time DESC
	`

	var sessions []models.SessionDB
	err := r.db.SelectContext(ctx, &sessions, query, userID)

	logger.Log.Infow("session list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"count", len(sessions),
		"error", err,
	)

	return sessions, err
}

// ListRecentByUser returns the user's most recent sessions, newest first.
func (r *SessionReadRepository) ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.SessionDB, error) {
	const query = `
		SELECT ` + sessionColumns + `
		FROM interview_sessions
		WHERE user_id = $1
		ORDER BY start_time DESC
		LIMIT $2
	`

	var sessions []models.SessionDB
	err := r.db.SelectContext(ctx, &sessions, query, userID, limit)

	logger.Log.Infow("session list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit},
		"count", len(sessions),
		"error", err,
	)

	return sessions, err
}
