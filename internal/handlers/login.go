package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vkamarthi/heritage-collect/internal/logger"
	"github.com/vkamarthi/heritage-collect/internal/models"
	"github.com/vkamarthi/heritage-collect/internal/services"
	"github.com/vkamarthi/heritage-collect/internal/sessions"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email string) (*models.UserDB, bool, error)
}

// SessionSaver writes session state back into the response.
type SessionSaver interface {
	Save(w http.ResponseWriter, r *http.Request, s *sessions.Session) error
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Gmail address of an existing user
	// required: true
	// default: asha@gmail.com
	Email string `json:"email"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Welcome message
	// default: Welcome back, Asha!
	Message string `json:"message"`

	// Email of the authenticated session
	// default: asha@gmail.com
	Email string `json:"email"`

	// Display name
	// default: Asha
	Name string `json:"name"`

	// Whether the session has admin rights
	// default: false
	IsAdmin bool `json:"is_admin"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticates by email match alone and starts a session. Admin rights follow allow-list membership evaluated at login time.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "Session started"
// @Failure 400 {object} handlers.ErrorResponse "Invalid email format"
// @Failure 401 {object} handlers.ErrorResponse "User not found"
// @Router /login [post]
func NewLoginHandler(svc Loginer, store SessionSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		user, isAdmin, err := svc.Login(r.Context(), req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidEmail):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Please enter a valid Gmail address.",
				})
			case errors.Is(err, services.ErrUserDoesNotExist):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "User not found. Please sign up first.",
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

		sess := &sessions.Session{
			LoggedIn: true,
			Email:    user.Email,
			Name:     user.Name,
			IsAdmin:  isAdmin,
		}
		if err := store.Save(w, r, sess); err != nil {
			logger.Log.Errorw("failed to save session", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		json.NewEncoder(w).Encode(LoginResponse{
			Message: "Welcome back, " + user.Name + "!",
			Email:   user.Email,
			Name:    user.Name,
			IsAdmin: isAdmin,
		})
	}
}
