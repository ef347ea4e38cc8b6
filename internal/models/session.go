package models

import (
	"time"

	"github.com/google/uuid"
)

// SessionDB represents an interview practice session row in the database.
// A session is open while end_time is NULL and closed once the end-of-session
// update fills in the derived fields.
type SessionDB struct {
	SessionID         uuid.UUID  `json:"id" db:"session_id"`                          // Primary key
	UserID            uuid.UUID  `json:"user_id" db:"user_id"`                        // Owner of the session
	StartTime         time.Time  `json:"start_time" db:"start_time"`                  // When the session was opened
	EndTime           *time.Time `json:"end_time" db:"end_time"`                      // When the session was closed
	DurationSeconds   *int       `json:"duration_seconds" db:"duration_seconds"`      // Total session duration
	AverageConfidence *float64   `json:"average_confidence" db:"average_confidence"`  // Mean confidence over the session's emotion samples
	DominantEmotion   *string    `json:"dominant_emotion" db:"dominant_emotion"`      // Modal emotion over the session's emotion samples
	TotalQuestions    int        `json:"total_questions" db:"total_questions"`        // Number of questions answered
	SessionSummary    *string    `json:"session_summary" db:"session_summary"`        // Free-text summary line
}
