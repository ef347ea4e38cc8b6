package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/cavxn/AI-Interview-Preparation-System/internal/facades"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/logger"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/models"
)

// EmotionAnalyzer defines the interface that the service must implement.
type EmotionAnalyzer interface {
	Analyze(ctx context.Context, userID uuid.UUID, sessionID *uuid.UUID, frameData string) (*models.EmotionDB, error)
}

// AnalyzeRequest represents the JSON body for emotion analysis
// swagger:model AnalyzeRequest
type AnalyzeRequest struct {
	// Base64 encoded image frame, optionally with a data-URL prefix
	// required: true
	FrameData string `json:"frame_data"`

	// Session the sample belongs to
	SessionID *uuid.UUID `json:"session_id"`
}

// AnalyzeResponse represents an emotion analysis result
// swagger:model AnalyzeResponse
type AnalyzeResponse struct {
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

// AnalyzeErrorResponse represents an error response for emotion analysis
// swagger:model AnalyzeErrorResponse
type AnalyzeErrorResponse struct {
	// Error message
	// default: Cannot decode image
	Error string `json:"error"`
}

// NewAnalyzeHandler returns an HTTP handler for per-frame emotion analysis.
// @Summary Analyze emotion
// @Description Classifies a single frame, stores the emotion sample and returns the result
// @Tags analysis
// @Accept json
// @Produce json
// @Param analyzeRequest body handlers.AnalyzeRequest true "Frame payload"
// @Success 200 {object} handlers.AnalyzeResponse "Emotion analysis result"
// @Failure 400 {object} handlers.AnalyzeErrorResponse "Cannot decode image"
// @Failure 401 {object} handlers.AnalyzeErrorResponse "Unauthorized"
// @Failure 422 {object} handlers.AnalyzeErrorResponse "No face detected"
// @Router /analyze [post]
// @Security BearerAuth
func NewAnalyzeHandler(svc EmotionAnalyzer, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized analyze request: missing or invalid token")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AnalyzeErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to parse token claims", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AnalyzeErrorResponse{Error: "Unauthorized"})
			return
		}

		var req AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.FrameData == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AnalyzeErrorResponse{Error: "Invalid request body"})
			return
		}

		sample, err := svc.Analyze(ctx, claims.UserID, req.SessionID, req.FrameData)
		if err != nil {
			switch {
			case errors.Is(err, facades.ErrImageDecode):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(AnalyzeErrorResponse{Error: "Cannot decode image"})
			case errors.Is(err, facades.ErrNoFaceDetected):
				w.WriteHeader(http.StatusUnprocessableEntity)
				json.NewEncoder(w).Encode(AnalyzeErrorResponse{Error: "No face detected"})
			default:
				logger.Log.Errorw("failed to analyze emotion", "userID", claims.UserID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(AnalyzeErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AnalyzeResponse{
			Emotion:         sample.Emotion,
			Confidence:      sample.Confidence,
			EyeContactScore: sample.EyeContactScore,
			Timestamp:       sample.Timestamp,
		})
	}
}
