package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/cavxn/AI-Interview-Preparation-System/internal/logger"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/models"
	"github.com/cavxn/AI-Interview-Preparation-System/internal/services"
)

// Signuper defines the interface that the service must implement.
type Signuper interface {
	Signup(ctx context.Context, name, email, password string) (*models.UserDB, error)
}

// SignupRequest represents the JSON body for user signup
// swagger:model SignupRequest
type SignupRequest struct {
	// Display name
	// required: true
	// default: John Doe
	Name string `json:"name"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// UserProfileResponse represents a public user profile
// swagger:model UserProfileResponse
type UserProfileResponse struct {
	// User id
	ID string `json:"id"`

	// Display name
	// default: John Doe
	Name string `json:"name"`

	// Email
	// default: john@example.com
	Email string `json:"email"`

	// Google subject id, if linked
	GoogleID *string `json:"google_id"`

	// Creation timestamp
	CreatedAt time.Time `json:"created_at"`
}

// SignupErrorResponse represents an error response for signup
// swagger:model SignupErrorResponse
type SignupErrorResponse struct {
	// Error message
	// default: Email already registered
	Error string `json:"error"`
}

func toUserProfileResponse(user *models.UserDB) UserProfileResponse {
	return UserProfileResponse{
		ID:        user.UserID.String(),
		Name:      user.Name,
		Email:     user.Email,
		GoogleID:  user.GoogleID,
		CreatedAt: user.CreatedAt,
	}
}

// NewSignupHandler returns an HTTP handler for user signup.
// @Summary Register a new user
// @Description Creates a new user account. Ensures unique email. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body handlers.SignupRequest true "User signup request"
// @Success 201 {object} handlers.UserProfileResponse "User successfully registered"
// @Failure 400 {object} handlers.SignupErrorResponse "Email already registered / invalid request"
// @Router /signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SignupErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		user, err := svc.Signup(r.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyRegistered):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: "Email already registered",
				})
			case errors.Is(err, services.ErrPasswordTooLong):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: "Password exceeds maximum length",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SignupErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(toUserProfileResponse(user))
	}
}
