package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vkamarthi/heritage-collect/internal/logger"
	"github.com/vkamarthi/heritage-collect/internal/services"
)

// Signuper defines the interface that the service must implement.
type Signuper interface {
	Signup(ctx context.Context, email, name string) error
}

// RegisterRequest represents the JSON body for signup
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Gmail address, unique identifier
	// required: true
	// default: asha@gmail.com
	Email string `json:"email"`

	// Display name
	// required: true
	// default: Asha
	Name string `json:"name"`
}

// RegisterResponse represents a successful signup response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: Sign up successful! You may now login.
	Message string `json:"message"`
}

// ErrorResponse represents an error response body
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: User already exists. Please login.
	Error string `json:"error"`
}

// NewRegisterHandler returns an HTTP handler for user signup.
// @Summary Sign up a new user
// @Description Creates a user from an email/name pair. The email must carry the gmail domain marker and must not already exist.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Signup request"
// @Success 201 {object} handlers.RegisterResponse "User created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid email, missing name, or already exists"
// @Router /register [post]
func NewRegisterHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		err := svc.Signup(r.Context(), req.Email, req.Name)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidEmail):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Please enter a valid Gmail address.",
				})
			case errors.Is(err, services.ErrNameRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Please enter your name for sign up.",
				})
			case errors.Is(err, services.ErrUserAlreadyExists):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "User already exists. Please login.",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResponse{
			Message: "Sign up successful! You may now login.",
		})
	}
}
