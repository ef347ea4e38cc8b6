package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cavxn/AI-Interview-Preparation-System/internal/logger"
)

// QuestionGenerator defines the interface that the service must implement.
type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, topic, difficulty string, count int) ([]string, error)
}

// GenerateQuestionsRequest represents question generation parameters
// swagger:model GenerateQuestionsRequest
type GenerateQuestionsRequest struct {
	// Interview topic
	// required: true
	// example: behavioral
	Topic string `json:"topic"`

	// Difficulty level
	// default: medium
	Difficulty string `json:"difficulty"`

	// Number of questions
	// default: 5
	Count int `json:"count"`
}

// GenerateQuestionsResponse represents a generated question list
// swagger:model GenerateQuestionsResponse
type GenerateQuestionsResponse struct {
	// Operation status
	// default: success
	Status string `json:"status"`

	// Interview topic
	Topic string `json:"topic"`

	// Difficulty level
	Difficulty string `json:"difficulty"`

	// Generated questions
	Questions []string `json:"questions"`

	// Number of questions returned
	Count int `json:"count"`
}

// GenerateQuestionsErrorResponse represents an error response for question generation
// swagger:model GenerateQuestionsErrorResponse
type GenerateQuestionsErrorResponse struct {
	// Error message
	// default: Invalid request body
	Error string `json:"error"`
}

// NewGenerateQuestionsHandler returns an HTTP handler for question generation.
// @Summary Generate interview questions
// @Description Returns interview questions for a topic, from cache, LLM or the fixed bank
// @Tags feedback
// @Accept json
// @Produce json
// @Param generateQuestionsRequest body handlers.GenerateQuestionsRequest true "Generation parameters"
// @Success 200 {object} handlers.GenerateQuestionsResponse "Generated questions"
// @Failure 400 {object} handlers.GenerateQuestionsErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.GenerateQuestionsErrorResponse "Unauthorized"
// @Router /generate-questions [post]
// @Security BearerAuth
func NewGenerateQuestionsHandler(svc QuestionGenerator, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized question generation: missing or invalid token")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(GenerateQuestionsErrorResponse{Error: "Unauthorized"})
			return
		}

		if _, err := tokenGetter.GetClaims(ctx, tokenStr); err != nil {
			logger.Log.Errorw("failed to parse token claims", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(GenerateQuestionsErrorResponse{Error: "Unauthorized"})
			return
		}

		var req GenerateQuestionsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Topic == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GenerateQuestionsErrorResponse{Error: "Invalid request body"})
			return
		}
		if req.Difficulty == "" {
			req.Difficulty = "medium"
		}
		if req.Count <= 0 {
			req.Count = 5
		}

		questions, err := svc.GenerateQuestions(ctx, req.Topic, req.Difficulty, req.Count)
		if err != nil {
			logger.Log.Errorw("failed to generate questions", "topic", req.Topic, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(GenerateQuestionsErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GenerateQuestionsResponse{
			Status:     "success",
			Topic:      req.Topic,
			Difficulty: req.Difficulty,
			Questions:  questions,
			Count:      len(questions),
		})
	}
}
