package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/cavxn/AI-Interview-Preparation-System/internal/facades"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/jwt"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/models"
)

func TestAnalyzeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockEmotionAnalyzer(ctrl)
	mockToken := NewMockTokener(ctrl)

	userID := uuid.New()
	sessionID := uuid.New()
	timestamp := time.Now().UTC().Truncate(time.Second)

	expectAuth := func() {
		mockToken.EXPECT().
			GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return("token123", nil)
		mockToken.EXPECT().
			GetClaims(gomock.Any(), "token123").
			Return(&jwt.Claims{UserID: userID}, nil)
	}

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			inputBody: AnalyzeRequest{
				FrameData: "ZnJhbWU=",
				SessionID: &sessionID,
			},
			mockSetup: func() {
				expectAuth()
				mockSvc.EXPECT().
					Analyze(gomock.Any(), userID, &sessionID, "ZnJhbWU=").
					Return(&models.EmotionDB{
						Emotion:         "Happy",
						Confidence:      0.9,
						EyeContactScore: 0.8,
						Timestamp:       timestamp,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &AnalyzeResponse{
				Emotion:         "Happy",
				Confidence:      0.9,
				EyeContactScore: 0.8,
				Timestamp:       timestamp,
			},
		},
		{
			name: "missing token",
			inputBody: AnalyzeRequest{
				FrameData: "ZnJhbWU=",
			},
			mockSetup: func() {
				mockToken.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: &AnalyzeErrorResponse{Error: "Unauthorized"},
		},
		{
			name:      "empty frame data",
			inputBody: AnalyzeRequest{},
			mockSetup: func() {
				expectAuth()
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &AnalyzeErrorResponse{Error: "Invalid request body"},
		},
		{
			name: "cannot decode image",
			inputBody: AnalyzeRequest{
				FrameData: "%%%",
			},
			mockSetup: func() {
				expectAuth()
				mockSvc.EXPECT().
					Analyze(gomock.Any(), userID, gomock.Nil(), "%%%").
					Return(nil, facades.ErrImageDecode)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &AnalyzeErrorResponse{Error: "Cannot decode image"},
		},
		{
			name: "no face detected",
			inputBody: AnalyzeRequest{
				FrameData: "ZnJhbWU=",
			},
			mockSetup: func() {
				expectAuth()
				mockSvc.EXPECT().
					Analyze(gomock.Any(), userID, gomock.Nil(), "ZnJhbWU=").
					Return(nil, facades.ErrNoFaceDetected)
			},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: &AnalyzeErrorResponse{Error: "No face detected"},
		},
		{
			name: "internal error",
			inputBody: AnalyzeRequest{
				FrameData: "ZnJhbWU=",
			},
			mockSetup: func() {
				expectAuth()
				mockSvc.EXPECT().
					Analyze(gomock.Any(), userID, gomock.Nil(), "ZnJhbWU=").
					Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &AnalyzeErrorResponse{Error: "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			bodyBytes, _ := json.Marshal(tt.inputBody)

			req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader(bodyBytes))
			req.Header.Set("Authorization", "Bearer token123")
			w := httptest.NewRecorder()

			handler := NewAnalyzeHandler(mockSvc, mockToken)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &AnalyzeResponse{}
			default:
				respBody = &AnalyzeErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
