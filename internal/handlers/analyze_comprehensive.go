package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/cavxn/AI-Interview-Preparation-System/internal/logger"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/services"
)

// ComprehensiveAnalyzer defines the interface that the service must implement.
type ComprehensiveAnalyzer interface {
	AnalyzeComprehensive(ctx context.Context, question, answer string, snapshot services.EmotionSnapshot) (*services.ComprehensiveFeedback, error)
}

// AnalyzeComprehensiveRequest represents an answer with its emotion context
// swagger:model AnalyzeComprehensiveRequest
type AnalyzeComprehensiveRequest struct {
	// Interview question
	// required: true
	Question string `json:"question"`

	// Candidate's answer
	// required: true
	Answer string `json:"answer"`

	// Emotion snapshot captured while answering
	EmotionData services.EmotionSnapshot `json:"emotion_data"`
}

// AnalyzeComprehensiveResponse represents the combined verbal/emotional analysis
// swagger:model AnalyzeComprehensiveResponse
type AnalyzeComprehensiveResponse struct {
	// Operation status
	// default: success
	Status string `json:"status"`

	// Combined analysis
	Analysis *services.ComprehensiveFeedback `json:"analysis"`

	// Analysis timestamp
	Timestamp time.Time `json:"timestamp"`
}

// AnalyzeComprehensiveErrorResponse represents an error response for comprehensive analysis
// swagger:model AnalyzeComprehensiveErrorResponse
type AnalyzeComprehensiveErrorResponse struct {
	// Error message
	// default: Invalid request body
	Error string `json:"error"`
}

// NewAnalyzeComprehensiveHandler returns an HTTP handler for combined analysis.
// @Summary Analyze answer with emotion context
// @Description Scores a question/answer pair together with the emotion snapshot captured while answering
// @Tags feedback
// @Accept json
// @Produce json
// @Param analyzeComprehensiveRequest body handlers.AnalyzeComprehensiveRequest true "Answer with emotion context"
// @Success 200 {object} handlers.AnalyzeComprehensiveResponse "Combined analysis"
// @Failure 400 {object} handlers.AnalyzeComprehensiveErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.AnalyzeComprehensiveErrorResponse "Unauthorized"
// @Router /analyze-comprehensive [post]
// @Security BearerAuth
func NewAnalyzeComprehensiveHandler(svc ComprehensiveAnalyzer, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized comprehensive analysis: missing or invalid token")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AnalyzeComprehensiveErrorResponse{Error: "Unauthorized"})
			return
		}

		if _, err := tokenGetter.GetClaims(ctx, tokenStr); err != nil {
			logger.Log.Errorw("failed to parse token claims", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AnalyzeComprehensiveErrorResponse{Error: "Unauthorized"})
			return
		}

		var req AnalyzeComprehensiveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Question == "" || req.Answer == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AnalyzeComprehensiveErrorResponse{Error: "Invalid request body"})
			return
		}

		analysis, err := svc.AnalyzeComprehensive(ctx, req.Question, req.Answer, req.EmotionData)
		if err != nil {
			logger.Log.Errorw("failed to run comprehensive analysis", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AnalyzeComprehensiveErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AnalyzeComprehensiveResponse{
			Status:    "success",
			Analysis:  analysis,
			Timestamp: time.Now().UTC(),
		})
	}
}
