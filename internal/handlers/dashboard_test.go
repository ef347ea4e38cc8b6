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
)

func TestDashboardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockDashboardGetter(ctrl)
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

	avg := 0.8
	dominant := "Happy"

	tests := []struct {
		name         string
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			mockSetup: func() {
				expectAuth()
				mockSvc.EXPECT().
					Dashboard(gomock.Any(), userID).
					Return(1, 0.8, "Happy", []models.SessionDB{
						{
							SessionID:         sessionID,
							UserID:            userID,
							StartTime:         startTime,
							AverageConfidence: &avg,
							DominantEmotion:   &dominant,
							TotalQuestions:    5,
						},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &DashboardResponse{
				TotalSessions:     1,
				AverageConfidence: 0.8,
				BestEmotion:       "Happy",
				RecentSessions: []SessionResponse{
					{
						ID:                sessionID.String(),
						UserID:            userID.String(),
						StartTime:         startTime,
						AverageConfidence: &avg,
						DominantEmotion:   &dominant,
						TotalQuestions:    5,
					},
				},
			},
		},
		{
			name: "no sessions",
			mockSetup: func() {
				expectAuth()
				mockSvc.EXPECT().
					Dashboard(gomock.Any(), userID).
					Return(0, 0.0, "Neutral", nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &DashboardResponse{
				TotalSessions:     0,
				AverageConfidence: 0,
				BestEmotion:       "Neutral",
				RecentSessions:    []SessionResponse{},
			},
		},
		{
			name: "missing token",
			mockSetup: func() {
				mockToken.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: &DashboardErrorResponse{Error: "Unauthorized"},
		},
		{
			name: "internal error",
			mockSetup: func() {
				expectAuth()
				mockSvc.EXPECT().
					Dashboard(gomock.Any(), userID).
					Return(0, 0.0, "", nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &DashboardErrorResponse{Error: "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			req.Header.Set("Authorization", "Bearer token123")
			w := httptest.NewRecorder()

			handler := NewDashboardHandler(mockSvc, mockToken)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &DashboardResponse{}
			default:
				respBody = &DashboardErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
