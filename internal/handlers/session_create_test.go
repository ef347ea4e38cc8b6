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

func TestSessionCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSessionCreator(ctrl)
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
		mockSvc.EXPECT().
			Create(gomock.Any(), userID).
			Return(&models.SessionDB{SessionID: sessionID, UserID: userID, StartTime: startTime}, nil)

		req := httptest.NewRequest(http.MethodPost, "/sessions", nil)
		req.Header.Set("Authorization", "Bearer token123")
		w := httptest.NewRecorder()

		NewSessionCreateHandler(mockSvc, mockToken).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp SessionResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, sessionID.String(), resp.ID)
		assert.Equal(t, userID.String(), resp.UserID)
		assert.Nil(t, resp.EndTime)
	})

	t.Run("missing token", func(t *testing.T) {
		mockToken.EXPECT().
			GetTokenFromRequest(gomock.Any(), gomock.Any()).
			Return("", errors.New("no token"))

		req := httptest.NewRequest(http.MethodPost, "/sessions", nil)
		w := httptest.NewRecorder()

		NewSessionCreateHandler(mockSvc, mockToken).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("internal error", func(t *testing.T) {
		expectAuth()
		mockSvc.EXPECT().
			Create(gomock.Any(), userID).
			Return(nil, errors.New("database error"))

		req := httptest.NewRequest(http.MethodPost, "/sessions", nil)
		req.Header.Set("Authorization", "Bearer token123")
		w := httptest.NewRecorder()

		NewSessionCreateHandler(mockSvc, mockToken).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
