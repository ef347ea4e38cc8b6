package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/cavxn/AI-Interview-Preparation-System/internal/logger"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/models"
)

// DashboardGetter defines the interface that the service must implement.
type DashboardGetter interface {
	Dashboard(ctx context.Context, userID uuid.UUID) (totalSessions int, averageConfidence float64, bestEmotion string, recent []models.SessionDB, err error)
}

// DashboardResponse represents dashboard statistics for the user
// swagger:model DashboardResponse
type DashboardResponse struct {
	// Total number of recent sessions
	TotalSessions int `json:"total_sessions"`

	// Mean average confidence over closed sessions
	AverageConfidence float64 `json:"average_confidence"`

	// Modal dominant emotion over closed sessions
	// default: Neutral
	BestEmotion string `json:"best_emotion"`

	// Recent sessions, newest first
	RecentSessions []SessionResponse `json:"recent_sessions"`
}

// DashboardErrorResponse represents an error response for the dashboard
// swagger:model DashboardErrorResponse
type DashboardErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewDashboardHandler returns an HTTP handler for dashboard statistics.
// @Summary Get dashboard stats
// @Description Aggregates the user's recent sessions: mean confidence and modal dominant emotion
// @Tags sessions
// @Produce json
// @Success 200 {object} handlers.DashboardResponse "Dashboard statistics"
// @Failure 401 {object} handlers.DashboardErrorResponse "Unauthorized"
// @Router /dashboard [get]
// @Security BearerAuth
func NewDashboardHandler(svc DashboardGetter, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized dashboard request: missing or invalid token")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(DashboardErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to parse token claims", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(DashboardErrorResponse{Error: "Unauthorized"})
			return
		}

		total, avgConfidence, bestEmotion, recent, err := svc.Dashboard(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to get dashboard stats", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(DashboardErrorResponse{Error: "Internal server error"})
			return
		}

		resp := DashboardResponse{
			TotalSessions:     total,
			AverageConfidence: avgConfidence,
			BestEmotion:       bestEmotion,
			RecentSessions:    make([]SessionResponse, 0, len(recent)),
		}
		for i := range recent {
			resp.RecentSessions = append(resp.RecentSessions, toSessionResponse(&recent[i]))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
