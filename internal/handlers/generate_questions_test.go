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
)

func TestGenerateQuestionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockQuestionGenerator(ctrl)
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

	tests := []struct {
		name         string
		inputBody    interface{}
		mockSetup    func()
		expectedCode int
		expectedBody interface{}
	}{
		{
			name: "success",
			inputBody: GenerateQuestionsRequest{
				Topic:      "technical",
				Difficulty: "hard",
				Count:      2,
			},
			mockSetup: func() {
				expectAuth()
				mockSvc.EXPECT().
					GenerateQuestions(gomock.Any(), "technical", "hard", 2).
					Return([]string{"Q1", "Q2"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &GenerateQuestionsResponse{
				Status:     "success",
				Topic:      "technical",
				Difficulty: "hard",
				Questions:  []string{"Q1", "Q2"},
				Count:      2,
			},
		},
		{
			name: "defaults applied",
			inputBody: GenerateQuestionsRequest{
				Topic: "behavioral",
			},
			mockSetup: func() {
				expectAuth()
				mockSvc.EXPECT().
					GenerateQuestions(gomock.Any(), "behavioral", "medium", 5).
					Return([]string{"Q1", "Q2", "Q3", "Q4", "Q5"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &GenerateQuestionsResponse{
				Status:     "success",
				Topic:      "behavioral",
				Difficulty: "medium",
				Questions:  []string{"Q1", "Q2", "Q3", "Q4", "Q5"},
				Count:      5,
			},
		},
		{
			name:      "missing topic",
			inputBody: GenerateQuestionsRequest{},
			mockSetup: func() {
				expectAuth()
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: &GenerateQuestionsErrorResponse{Error: "Invalid request body"},
		},
		{
			name: "missing token",
			inputBody: GenerateQuestionsRequest{
				Topic: "technical",
			},
			mockSetup: func() {
				mockToken.EXPECT().
					GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedCode: http.StatusUnauthorized,
			expectedBody: &GenerateQuestionsErrorResponse{Error: "Unauthorized"},
		},
		{
			name: "internal error",
			inputBody: GenerateQuestionsRequest{
				Topic: "technical",
			},
			mockSetup: func() {
				expectAuth()
				mockSvc.EXPECT().
					GenerateQuestions(gomock.Any(), "technical", "medium", 5).
					Return(nil, errors.New("llm error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: &GenerateQuestionsErrorResponse{Error: "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			bodyBytes, _ := json.Marshal(tt.inputBody)

			req := httptest.NewRequest(http.MethodPost, "/generate-questions", bytes.NewReader(bodyBytes))
			req.Header.Set("Authorization", "Bearer token123")
			w := httptest.NewRecorder()

			handler := NewGenerateQuestionsHandler(mockSvc, mockToken)
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)

			var respBody interface{}
			switch tt.expectedCode {
			case http.StatusOK:
				respBody = &GenerateQuestionsResponse{}
			default:
				respBody = &GenerateQuestionsErrorResponse{}
			}
			err := json.Unmarshal(w.Body.Bytes(), respBody)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, respBody)
		})
	}
}
