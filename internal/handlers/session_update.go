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
	"github.com/cavxn/AI-Interview-Preparation-System/internal/repositories"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/services"
)

// SessionUpdater defines the interface that the service must implement.
type SessionUpdater interface {
	Update(ctx context.Context, userID, sessionID uuid.UUID, upd repositories.SessionUpdate) (*models.SessionDB, error)
}

// SessionUpdateRequest represents the end-of-session fields
// swagger:model SessionUpdateRequest
type SessionUpdateRequest struct {
	// End timestamp
	EndTime *time.Time `json:"end_time"`

	// Session duration in seconds
	DurationSeconds *int `json:"duration_seconds"`

	// Average confidence, used only when the session has no emotion samples
	AverageConfidence *float64 `json:"average_confidence"`

	// Dominant emotion, used only when the session has no emotion samples
	DominantEmotion *string `json:"dominant_emotion"`

	// Number of questions answered
	TotalQuestions *int `json:"total_questions"`

	// Free-text summary line
	SessionSummary *string `json:"session_summary"`
}

// NewSessionUpdateHandler returns an HTTP handler for closing/updating a session.
// @Summary Update session
// @Description Closes a session. Average confidence and dominant emotion are computed from the session's emotion samples; supplied values apply only to sessions without samples.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param sessionUpdateRequest body handlers.SessionUpdateRequest true "End-of-session fields"
// @Success 200 {object} handlers.SessionResponse "Updated session"
// @Failure 401 {object} handlers.SessionErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.SessionErrorResponse "Session not found"
// @Router /sessions/{id} [put]
// @Security BearerAuth
func NewSessionUpdateHandler(svc SessionUpdater, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized session update: missing or invalid token")
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

		var req SessionUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SessionErrorResponse{Error: "Invalid request body"})
			return
		}

		session, err := svc.Update(ctx, claims.UserID, sessionID, repositories.SessionUpdate{
			EndTime:           req.EndTime,
			DurationSeconds:   req.DurationSeconds,
			AverageConfidence: req.AverageConfidence,
			DominantEmotion:   req.DominantEmotion,
			TotalQuestions:    req.TotalQuestions,
			SessionSummary:    req.SessionSummary,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSessionNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(SessionErrorResponse{Error: "Session not found"})
			default:
				logger.Log.Errorw("failed to update session", "sessionID", sessionID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SessionErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(toSessionResponse(session))
	}
}
