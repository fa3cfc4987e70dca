package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vkamarthi/heritage-collect/internal/logger"
	"github.com/vkamarthi/heritage-collect/internal/services"
	"github.com/vkamarthi/heritage-collect/internal/sessions"
)

// AdminLoginer defines the interface that the admin login service must implement.
type AdminLoginer interface {
	AdminLogin(ctx context.Context, email string) (string, error)
}

// AdminLoginRequest represents the JSON body for admin login
// swagger:model AdminLoginRequest
type AdminLoginRequest struct {
	// Admin gmail address, must be on the allow-list
	// required: true
	// default: boss@gmail.com
	Email string `json:"email"`
}

// AdminLoginResponse represents a successful admin login response
// swagger:model AdminLoginResponse
type AdminLoginResponse struct {
	// Success message
	// default: Admin login successful.
	Message string `json:"message"`

	// Display name
	// default: Admin
	Name string `json:"name"`
}

// NewAdminLoginHandler returns an HTTP handler for admin login.
// @Summary Admin login
// @Description Authenticates an administrator purely by allow-list membership and starts an admin session.
// @Tags auth
// @Accept json
// @Produce json
// @Param adminLoginRequest body handlers.AdminLoginRequest true "Admin login request"
// @Success 200 {object} handlers.AdminLoginResponse "Admin session started"
// @Failure 403 {object} handlers.ErrorResponse "Email not on the allow-list"
// @Router /admin/login [post]
func NewAdminLoginHandler(svc AdminLoginer, store SessionSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AdminLoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		name, err := svc.AdminLogin(r.Context(), req.Email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrAccessDenied):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Access denied. Only authorized admin emails allowed.",
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
			Email:    req.Email,
			Name:     name,
			IsAdmin:  true,
		}
		if err := store.Save(w, r, sess); err != nil {
			logger.Log.Errorw("failed to save session", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		json.NewEncoder(w).Encode(AdminLoginResponse{
			Message: "Admin login successful.",
			Name:    name,
		})
	}
}
