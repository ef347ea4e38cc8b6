package models

import (
	"time"

	"github.com/google/uuid"
)

// EmotionLabels is the closed label set of the emotion model, in the
// output order the model was trained with.
var EmotionLabels = []string{"Angry", "Disgust", "Fear", "Happy", "Sad", "Surprise", "Neutral"}

// MockEmotions is the label set the mock classifier draws from.
var MockEmotions = []string{"Happy", "Neutral", "Confident", "Focused", "Calm"}

// EmotionDB represents a single classifier invocation result, optionally
// tied to a session. Rows are append-only.
type EmotionDB struct {
	EmotionID       uuid.UUID  `json:"id" db:"emotion_id"`                     // Primary key
	UserID          uuid.UUID  `json:"user_id" db:"user_id"`                   // Owner of the sample
	SessionID       *uuid.UUID `json:"session_id" db:"session_id"`             // Session the sample belongs to, if any
	Emotion         string     `json:"emotion" db:"emotion"`                   // Predicted emotion label
	Confidence      float64    `json:"confidence" db:"confidence"`             // Prediction confidence in [0,1]
	EyeContactScore float64    `json:"eye_contact_score" db:"eye_contact_score"` // Eye contact score in [0,1]
	Timestamp       time.Time  `json:"timestamp" db:"timestamp"`               // When the sample was taken
}
