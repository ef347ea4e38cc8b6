package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cavxn/AI-Interview-Preparation-System/internal/logger"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/services"
)

// GoogleLoginer defines the interface that the Google login service must implement.
type GoogleLoginer interface {
	GoogleLogin(ctx context.Context, profile services.GoogleProfile) (string, error)
}

// GoogleLoginRequest represents the Google profile claims sent by the client
// swagger:model GoogleLoginRequest
type GoogleLoginRequest struct {
	// Google subject id
	// required: true
	Sub string `json:"sub"`

	// Display name
	// required: true
	// default: John Doe
	Name string `json:"name"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Profile picture URL
	Picture string `json:"picture,omitempty"`

	// Given name
	GivenName string `json:"given_name,omitempty"`

	// Family name
	FamilyName string `json:"family_name,omitempty"`
}

// GoogleLoginErrorResponse represents an error response for Google login
// swagger:model GoogleLoginErrorResponse
type GoogleLoginErrorResponse struct {
	// Error message
	// default: Google login failed
	Error string `json:"error"`
}

// NewGoogleLoginHandler returns an HTTP handler for Google OAuth login.
// @Summary Google login
// @Description Authenticate via Google profile claims. Links the Google id to an existing account by email or creates a password-less account.
// @Tags auth
// @Accept json
// @Produce json
// @Param googleLoginRequest body handlers.GoogleLoginRequest true "Google profile claims"
// @Success 200 {object} handlers.TokenResponse "JWT token returned"
// @Failure 400 {object} handlers.GoogleLoginErrorResponse "Invalid request body"
// @Router /google-login [post]
func NewGoogleLoginHandler(svc GoogleLoginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GoogleLoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Sub == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(GoogleLoginErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		token, err := svc.GoogleLogin(r.Context(), services.GoogleProfile{
			Sub:   req.Sub,
			Name:  req.Name,
			Email: req.Email,
		})
		if err != nil {
			logger.Log.Errorw("google login failed", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(GoogleLoginErrorResponse{
				Error: "Google login failed",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TokenResponse{
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}
