package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/cavxn/AI-Interview-Preparation-System/internal/jwt"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/models"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/services"
)

func TestSessionSummaryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSessionSummarizer(ctrl)
	mockToken := NewMockTokener(ctrl)

	userID := uuid.New()
	sessionID := uuid.New()
	startTime := time.Now().UTC().Truncate(time.Second)

	expectAuth := func() {
		mockToken.EXPECT().
			GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return("token123", nil)
		mockToken.EXPECT().
			GetClaims(gomock.Any(), "token123").
			Return(&jwt.Claims{UserID: userID}, nil)
	}

	t.Run("success", func(t *testing.T) {
		expectAuth()

		duration := 120
		avg := 0.8
		dominant := "Happy"
		summary := "Completed 2 questions with 80% average confidence. Dominant emotion: Happy."

		mockSvc.EXPECT().
			Summary(gomock.Any(), userID, sessionID).
			Return(&models.SessionDB{
				SessionID:         sessionID,
				UserID:            userID,
				StartTime:         startTime,
				DurationSeconds:   &duration,
				AverageConfidence: &avg,
				DominantEmotion:   &dominant,
				TotalQuestions:    2,
				SessionSummary:    &summary,
			}, []models.EmotionDB{
				{Emotion: "Happy", Confidence: 0.8, EyeContactScore: 0.7, Timestamp: startTime},
			}, nil)

		req := newAuthedRequest(http.MethodGet, "/sessions/"+sessionID.String()+"/summary", sessionID.String(), nil)
		w := httptest.NewRecorder()

		NewSessionSummaryHandler(mockSvc, mockToken).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp SessionSummaryResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, sessionID.String(), resp.SessionID)
		assert.Equal(t, 120, resp.DurationSeconds)
		assert.Equal(t, 0.8, resp.AverageConfidence)
		assert.Equal(t, "Happy", resp.DominantEmotion)
		assert.Equal(t, summary, resp.SessionSummary)
		assert.Len(t, resp.EmotionTimeline, 1)
		assert.Equal(t, "Happy", resp.EmotionTimeline[0].Emotion)
	})

	t.Run("open session uses defaults", func(t *testing.T) {
		expectAuth()

		mockSvc.EXPECT().
			Summary(gomock.Any(), userID, sessionID).
			Return(&models.SessionDB{SessionID: sessionID, UserID: userID, StartTime: startTime}, nil, nil)

		req := newAuthedRequest(http.MethodGet, "/sessions/"+sessionID.String()+"/summary", sessionID.String(), nil)
		w := httptest.NewRecorder()

		NewSessionSummaryHandler(mockSvc, mockToken).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp SessionSummaryResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Neutral", resp.DominantEmotion)
		assert.Equal(t, "No summary available", resp.SessionSummary)
		assert.Empty(t, resp.EmotionTimeline)
	})

	t.Run("malformed session id", func(t *testing.T) {
		expectAuth()

		req := newAuthedRequest(http.MethodGet, "/sessions/not-a-uuid/summary", "not-a-uuid", nil)
		w := httptest.NewRecorder()

		NewSessionSummaryHandler(mockSvc, mockToken).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("session not found", func(t *testing.T) {
		expectAuth()
		mockSvc.EXPECT().
			Summary(gomock.Any(), userID, sessionID).
			Return(nil, nil, services.ErrSessionNotFound)

		req := newAuthedRequest(http.MethodGet, "/sessions/"+sessionID.String()+"/summary", sessionID.String(), nil)
		w := httptest.NewRecorder()

		NewSessionSummaryHandler(mockSvc, mockToken).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		mockToken.EXPECT().
			GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return("", errors.New("no token"))

		req := newAuthedRequest(http.MethodGet, "/sessions/"+sessionID.String()+"/summary", sessionID.String(), nil)
		w := httptest.NewRecorder()

		NewSessionSummaryHandler(mockSvc, mockToken).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
