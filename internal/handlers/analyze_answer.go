package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/cavxn/AI-Interview-Preparation-System/internal/logger"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/services"
)

// AnswerAnalyzer defines the interface that the service must implement.
type AnswerAnalyzer interface {
	AnalyzeAnswer(ctx context.Context, question, answer string) (*services.Feedback, []string, error)
}

// AnalyzeAnswerRequest represents a question/answer pair to analyze
// swagger:model AnalyzeAnswerRequest
type AnalyzeAnswerRequest struct {
	// Interview question
	// required: true
	Question string `json:"question"`

	// Candidate's answer
	// required: true
	Answer string `json:"answer"`
}

// AnalyzeAnswerResponse represents the structured answer analysis
// swagger:model AnalyzeAnswerResponse
type AnalyzeAnswerResponse struct {
	// Operation status
	// default: success
	Status string `json:"status"`

	// Structured feedback
	Analysis *services.Feedback `json:"analysis"`

	// Suggested follow-up questions
	FollowUpQuestions []string `json:"follow_up_questions"`

	// Analysis timestamp
	Timestamp time.Time `json:"timestamp"`
}

// AnalyzeAnswerErrorResponse represents an error response for answer analysis
// swagger:model AnalyzeAnswerErrorResponse
type AnalyzeAnswerErrorResponse struct {
	// Error message
	// default: Invalid request body
	Error string `json:"error"`
}

// NewAnalyzeAnswerHandler returns an HTTP handler for answer analysis.
// @Summary Analyze answer
// @Description Scores a question/answer pair and suggests follow-up questions
// @Tags feedback
// @Accept json
// @Produce json
// @Param analyzeAnswerRequest body handlers.AnalyzeAnswerRequest true "Question/answer pair"
// @Success 200 {object} handlers.AnalyzeAnswerResponse "Answer analysis"
// @Failure 400 {object} handlers.AnalyzeAnswerErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.AnalyzeAnswerErrorResponse "Unauthorized"
// @Router /analyze-answer [post]
// @Security BearerAuth
func NewAnalyzeAnswerHandler(svc AnswerAnalyzer, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized answer analysis: missing or invalid token")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AnalyzeAnswerErrorResponse{Error: "Unauthorized"})
			return
		}

		if _, err := tokenGetter.GetClaims(ctx, tokenStr); err != nil {
			logger.Log.Errorw("failed to parse token claims", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AnalyzeAnswerErrorResponse{Error: "Unauthorized"})
			return
		}

		var req AnalyzeAnswerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Question == "" || req.Answer == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AnalyzeAnswerErrorResponse{Error: "Invalid request body"})
			return
		}

		feedback, followUps, err := svc.AnalyzeAnswer(ctx, req.Question, req.Answer)
		if err != nil {
			logger.Log.Errorw("failed to analyze answer", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AnalyzeAnswerErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AnalyzeAnswerResponse{
			Status:            "success",
			Analysis:          feedback,
			FollowUpQuestions: followUps,
			Timestamp:         time.Now().UTC(),
		})
	}
}
