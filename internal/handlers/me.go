package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/vkamarthi/heritage-collect/internal/sessions"
)

// NewMeHandler returns an HTTP handler exposing the current session state,
// including the form visibility toggle the UI renders from.
// @Summary Current session
// @Description Returns the identity and UI state of the calling session.
// @Tags session
// @Produce json
// @Success 200 {object} sessions.Session "Session state"
// @Failure 401 {object} handlers.ErrorResponse "Not logged in"
// @Router /me [get]
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessions.FromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Please login first.",
			})
			return
		}

		json.NewEncoder(w).Encode(sess)
	}
}
