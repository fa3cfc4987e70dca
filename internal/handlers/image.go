package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"image"
	"net/http"
	"strconv"

	_ "image/jpeg"
	_ "image/png"

	"github.com/go-chi/chi/v5"
	"github.com/vkamarthi/heritage-collect/internal/logger"
	"github.com/vkamarthi/heritage-collect/internal/services"
)

// ImageLoader defines the interface that the report service must implement.
type ImageLoader interface {
	LoadImage(ctx context.Context, id int64) ([]byte, error)
}

// NewFeedImageHandler returns an HTTP handler that streams a submission's
// stored image for inline display in the admin feed. A file deleted
// out-of-band yields a missing-image error for this row only.
// @Summary Feed image
// @Description Streams the stored image for one submission.
// @Tags admin
// @Produce png
// @Param id path int true "Submission ID"
// @Success 200 {file} binary "Image bytes"
// @Failure 404 {object} handlers.ErrorResponse "Submission unknown or image file missing"
// @Failure 422 {object} handlers.ErrorResponse "File exists but does not open as an image"
// @Router /admin/images/{id} [get]
func NewFeedImageHandler(svc ImageLoader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "invalid submission id",
			})
			return
		}

		data, err := svc.LoadImage(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrSubmissionNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "submission not found",
				})
			case errors.Is(err, services.ErrImageMissing):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Image file missing.",
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

		// Display-time probe: the row renders a warning instead of broken
		// bytes when the file no longer opens as an image.
		if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
			w.WriteHeader(http.StatusUnprocessableEntity)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Could not display image.",
			})
			return
		}

		w.Header().Set("Content-Type", http.DetectContentType(data))
		w.Write(data)
	}
}
