package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/cavxn/AI-Interview-Preparation-System/internal/logger"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/models"
)

// SessionCreator defines the interface that the service must implement.
type SessionCreator interface {
	Create(ctx context.Context, userID uuid.UUID) (*models.SessionDB, error)
}

// SessionResponse represents an interview session
// swagger:model SessionResponse
type SessionResponse struct {
	// Session id
	ID string `json:"id"`

	// Owner id
	UserID string `json:"user_id"`

	// Start timestamp
	StartTime time.Time `json:"start_time"`

	// End timestamp, null while the session is open
	EndTime *time.Time `json:"end_time"`

	// Session duration in seconds
	DurationSeconds *int `json:"duration_seconds"`

	// Mean confidence over the session's emotion samples
	AverageConfidence *float64 `json:"average_confidence"`

	// Modal emotion over the session's emotion samples
	DominantEmotion *string `json:"dominant_emotion"`

	// Number of questions answered
	TotalQuestions int `json:"total_questions"`

	// Free-text summary line
	SessionSummary *string `json:"session_summary"`
}

// SessionErrorResponse represents an error response for session endpoints
// swagger:model SessionErrorResponse
type SessionErrorResponse struct {
	// Error message
	// default: Session not found
	Error string `json:"error"`
}

func toSessionResponse(session *models.SessionDB) SessionResponse {
	return SessionResponse{
		ID:                session.SessionID.String(),
		UserID:            session.UserID.String(),
		StartTime:         session.StartTime,
		EndTime:           session.EndTime,
		DurationSeconds:   session.DurationSeconds,
		AverageConfidence: session.AverageConfidence,
		DominantEmotion:   session.DominantEmotion,
		TotalQuestions:    session.TotalQuestions,
		SessionSummary:    session.SessionSummary,
	}
}

// NewSessionCreateHandler returns an HTTP handler for opening a new session.
// @Summary Create session
// @Description Opens a new interview practice session for the authenticated user
// @Tags sessions
// @Produce json
// @Success 201 {object} handlers.SessionResponse "New open session"
// @Failure 401 {object} handlers.SessionErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.SessionErrorResponse "Internal server error"
// @Router /sessions [post]
// @Security BearerAuth
func NewSessionCreateHandler(svc SessionCreator, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized session create: missing or invalid token")
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

		session, err := svc.Create(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to create session", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SessionErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(toSessionResponse(session))
	}
}
