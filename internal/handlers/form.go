package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/vkamarthi/heritage-collect/internal/logger"
	"github.com/vkamarthi/heritage-collect/internal/sessions"
)

// FormResponse reports the submission form visibility after a toggle
// swagger:model FormResponse
type FormResponse struct {
	// Whether the submission form is visible
	// default: true
	ShowForm bool `json:"show_form"`
}

// NewOpenFormHandler returns an HTTP handler that reveals the submission form.
// @Summary Open submission form
// @Description Marks the submission form visible in the session.
// @Tags submissions
// @Produce json
// @Success 200 {object} handlers.FormResponse "Form visible"
// @Failure 401 {object} handlers.ErrorResponse "Not logged in"
// @Router /form/open [post]
func NewOpenFormHandler(store SessionSaver) http.HandlerFunc {
	return setFormVisibility(store, true)
}

// NewCancelFormHandler returns an HTTP handler that hides the submission form.
// Entered data is discarded client-side; nothing is persisted.
// @Summary Cancel submission form
// @Description Hides the submission form with no persistence side effect.
// @Tags submissions
// @Produce json
// @Success 200 {object} handlers.FormResponse "Form hidden"
// @Failure 401 {object} handlers.ErrorResponse "Not logged in"
// @Router /form/cancel [post]
func NewCancelFormHandler(store SessionSaver) http.HandlerFunc {
	return setFormVisibility(store, false)
}

func setFormVisibility(store SessionSaver, visible bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessions.FromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Please login first.",
			})
			return
		}

		sess.ShowForm = visible
		if err := store.Save(w, r, sess); err != nil {
			logger.Log.Errorw("failed to save session", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		json.NewEncoder(w).Encode(FormResponse{ShowForm: visible})
	}
}
