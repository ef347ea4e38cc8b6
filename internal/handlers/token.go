package handlers

import (
	"context"
	"net/http"

	"github.com/cavxn/AI-Interview-Preparation-System/internal/jwt"
)

// Tokener defines the token operations protected handlers need.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}
