package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/cavxn/AI-Interview-Preparation-System/internal/logger"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/models"
)

// SessionLister defines the interface that the service must implement.
type SessionLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.SessionDB, error)
}

// NewSessionListHandler returns an HTTP handler listing the caller's sessions.
// @Summary List sessions
// @Description Returns all sessions of the authenticated user, newest first
// @Tags sessions
// @Produce json
// @Success 200 {array} handlers.SessionResponse "Sessions"
// @Failure 401 {object} handlers.SessionErrorResponse "Unauthorized"
// @Router /sessions [get]
// @Security BearerAuth
func NewSessionListHandler(svc SessionLister, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized session list: missing or invalid token")
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

		sessions, err := svc.List(ctx, claims.UserID)
		if err != nil {
			logger.Log.Errorw("failed to list sessions", "userID", claims.UserID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SessionErrorResponse{Error: "Internal server error"})
			return
		}

		resp := make([]SessionResponse, 0, len(sessions))
		for i := range sessions {
			resp = append(resp, toSessionResponse(&sessions[i]))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
