package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/cavxn/AI-Interview-Preparation-System/internal/logger"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/models"
)

const emotionColumns = "emotion_id, user_id, session_id, emotion, confidence, eye_contact_score, timestamp"

// EmotionWriteRepository handles emotion sample writes. Samples are
// append-only: there is no update or delete path.
type EmotionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewEmotionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *EmotionWriteRepository {
	return &EmotionWriteRepository{db: db, txGetter: txGetter}
}

func (r *EmotionWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save appends one emotion sample and returns the stored row.
func (r *EmotionWriteRepository) Save(ctx context.Context, userID uuid.UUID, sessionID *uuid.UUID, emotion string, confidence, eyeContactScore float64) (*models.EmotionDB, error) {
	query := `
		INSERT INTO emotion_data (emotion_id, user_id, session_id, emotion, confidence, eye_contact_score, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING ` + emotionColumns + `
	`
	args := []any{uuid.New(), userID, sessionID, emotion, confidence, eyeContactScore}

	var sample models.EmotionDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &sample, query, args...)

	logger.Log.Infow("emotion insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, sessionID, emotion, confidence, eyeContactScore},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &sample, nil
}

// EmotionReadRepository handles emotion sample reads
type EmotionReadRepository struct {
	db *sqlx.DB
}

func NewEmotionReadRepository(db *sqlx.DB) *EmotionReadRepository {
	return &EmotionReadRepository{db: db}
}

// ListBySession returns the emotion timeline of a session in capture order.
func (r *EmotionReadRepository) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]models.EmotionDB, error) {
	const query = `
		SELECT ` + emotionColumns + `
		FROM emotion_data
		WHERE session_id = $1
		ORDER BY timestamp
	`

	var samples []models.EmotionDB
	err := r.db.SelectContext(ctx, &samples, query, sessionID)

	logger.Log.Infow("emotion list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{sessionID},
		"count", len(samples),
		"error", err,
	)

	return samples, err
}
