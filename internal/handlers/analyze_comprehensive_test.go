package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/cavxn/AI-Interview-Preparation-System/internal/jwt"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/services"
)

func TestAnalyzeComprehensiveHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockComprehensiveAnalyzer(ctrl)
	mockToken := NewMockTokener(ctrl)

	userID := uuid.New()

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

		snapshot := services.EmotionSnapshot{Emotion: "Happy", Confidence: 0.9, EyeContactScore: 0.75}
		mockSvc.EXPECT().
			AnalyzeComprehensive(gomock.Any(), "q", "a", snapshot).
			Return(&services.ComprehensiveFeedback{OverallScore: 77, EmotionalInsights: "Calm and collected"}, nil)

		body, _ := json.Marshal(AnalyzeComprehensiveRequest{
			Question:    "q",
			Answer:      "a",
			EmotionData: snapshot,
		})
		req := httptest.NewRequest(http.MethodPost, "/analyze-comprehensive", bytes.NewReader(body))
		req.Header.Set("Authorization", "Bearer token123")
		w := httptest.NewRecorder()

		NewAnalyzeComprehensiveHandler(mockSvc, mockToken).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp AnalyzeComprehensiveResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "success", resp.Status)
		assert.Equal(t, 77, resp.Analysis.OverallScore)
		assert.False(t, resp.Timestamp.IsZero())
	})

	t.Run("missing question", func(t *testing.T) {
		expectAuth()

		body, _ := json.Marshal(AnalyzeComprehensiveRequest{Answer: "a"})
		req := httptest.NewRequest(http.MethodPost, "/analyze-comprehensive", bytes.NewReader(body))
		req.Header.Set("Authorization", "Bearer token123")
		w := httptest.NewRecorder()

		NewAnalyzeComprehensiveHandler(mockSvc, mockToken).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		mockToken.EXPECT().
			GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return("", errors.New("no token"))

		req := httptest.NewRequest(http.MethodPost, "/analyze-comprehensive", nil)
		w := httptest.NewRecorder()

		NewAnalyzeComprehensiveHandler(mockSvc, mockToken).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		expectAuth()
		mockSvc.EXPECT().
			AnalyzeComprehensive(gomock.Any(), "q", "a", services.EmotionSnapshot{}).
			Return(nil, errors.New("llm error"))

		body, _ := json.Marshal(AnalyzeComprehensiveRequest{Question: "q", Answer: "a"})
		req := httptest.NewRequest(http.MethodPost, "/analyze-comprehensive", bytes.NewReader(body))
		req.Header.Set("Authorization", "Bearer token123")
		w := httptest.NewRecorder()

		NewAnalyzeComprehensiveHandler(mockSvc, mockToken).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
