package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/vkamarthi/heritage-collect/internal/logger"
)

// SessionClearer drops all session state from the response.
type SessionClearer interface {
	Clear(w http.ResponseWriter, r *http.Request) error
}

// LogoutResponse represents a successful logout response
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Success message
	// default: You have logged out successfully.
	Message string `json:"message"`
}

// NewLogoutHandler returns an HTTP handler that ends the session.
// @Summary Logout
// @Description Clears all session state and returns the client to anonymous.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.LogoutResponse "Session cleared"
// @Router /logout [post]
func NewLogoutHandler(store SessionClearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := store.Clear(w, r); err != nil {
			logger.Log.Errorw("failed to clear session", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		json.NewEncoder(w).Encode(LogoutResponse{
			Message: "You have logged out successfully.",
		})
	}
}
