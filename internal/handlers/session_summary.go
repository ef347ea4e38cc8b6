package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cavxn/AI-Interview-Preparation-System/internal/logger"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/models"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/services"
)

// SessionSummarizer defines the interface that the service must implement.
type SessionSummarizer interface {
	Summary(ctx context.Context, userID, sessionID uuid.UUID) (*models.SessionDB, []models.EmotionDB, error)
}

// EmotionSampleResponse represents one emotion timeline entry
// swagger:model EmotionSampleResponse
type EmotionSampleResponse struct {
	// Emotion label
	// default: Neutral
	Emotion string `json:"emotion"`

	// Prediction confidence
	// default: 0.8
	Confidence float64 `json:"confidence"`

	// Eye contact score
	// default: 0.75
	EyeContactScore float64 `json:"eye_contact_score"`

	// Capture timestamp
	Timestamp time.Time `json:"timestamp"`
}

// SessionSummaryResponse represents a detailed session summary
// swagger:model SessionSummaryResponse
type SessionSummaryResponse struct {
	// Session id
	SessionID string `json:"session_id"`

	// Start timestamp
	StartTime time.Time `json:"start_time"`

	// Session duration in seconds
	DurationSeconds int `json:"duration_seconds"`

	// Mean confidence over the session's emotion samples
	AverageConfidence float64 `json:"average_confidence"`

	// Modal emotion over the session's emotion samples
	// default: Neutral
	DominantEmotion string `json:"dominant_emotion"`

	// Number of questions answered
	TotalQuestions int `json:"total_questions"`

	// Ordered emotion timeline
	EmotionTimeline []EmotionSampleResponse `json:"emotion_timeline"`

	// Free-text summary line
	// default: No summary available
	SessionSummary string `json:"session_summary"`
}

// NewSessionSummaryHandler returns an HTTP handler for a session summary.
// @Summary Get session summary
// @Description Returns session stats and the ordered emotion timeline
// @Tags sessions
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} handlers.SessionSummaryResponse "Session summary"
// @Failure 401 {object} handlers.SessionErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.SessionErrorResponse "Session not found"
// @Router /sessions/{id}/summary [get]
// @Security BearerAuth
func NewSessionSummaryHandler(svc SessionSummarizer, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized session summary: missing or invalid token")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SessionErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to parse token claims", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SessionErrorResponse{Error: "Unauthorized"})
			return
		}

		sessionID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(SessionErrorResponse{Error: "Session not found"})
			return
		}

		session, timeline, err := svc.Summary(ctx, claims.UserID, sessionID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSessionNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(SessionErrorResponse{Error: "Session not found"})
			default:
				logger.Log.Errorw("failed to get session summary", "sessionID", sessionID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SessionErrorResponse{Error: "Internal server error"})
			}
			return
		}

		resp := SessionSummaryResponse{
			SessionID:       session.SessionID.String(),
			StartTime:       session.StartTime,
			DominantEmotion: "Neutral",
			TotalQuestions:  session.TotalQuestions,
			SessionSummary:  "No summary available",
			EmotionTimeline: make([]EmotionSampleResponse, 0, len(timeline)),
		}
		if session.DurationSeconds != nil {
			resp.DurationSeconds = *session.DurationSeconds
		}
		if session.AverageConfidence != nil {
			resp.AverageConfidence = *session.AverageConfidence
		}
		if session.DominantEmotion != nil {
			resp.DominantEmotion = *session.DominantEmotion
		}
		if session.SessionSummary != nil {
			resp.SessionSummary = *session.SessionSummary
		}
		for _, sample := range timeline {
			resp.EmotionTimeline = append(resp.EmotionTimeline, EmotionSampleResponse{
				Emotion:         sample.Emotion,
				Confidence:      sample.Confidence,
				EyeContactScore: sample.EyeContactScore,
				Timestamp:       sample.Timestamp,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
