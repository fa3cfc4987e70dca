package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/vkamarthi/heritage-collect/internal/logger"
	"github.com/vkamarthi/heritage-collect/internal/services"
	"github.com/vkamarthi/heritage-collect/internal/sessions"
)

// maxUploadBytes caps the parsed multipart form size.
const maxUploadBytes = 32 << 20

// SubmissionCreator defines the interface that the submission service must implement.
type SubmissionCreator interface {
	Create(ctx context.Context, userEmail, filename string, image io.Reader, description string) (string, error)
}

// SubmissionResponse represents a successful submission response
// swagger:model SubmissionResponse
type SubmissionResponse struct {
	// Success message
	// default: Your data has been successfully saved!
	Message string `json:"message"`

	// Path of the stored image
	// default: uploaded_images/20240102_150405_x.png
	ImagePath string `json:"image_path"`
}

// NewCreateSubmissionHandler returns an HTTP handler for submitting an image
// plus description. The multipart form carries an "image" file part and a
// "description" text field.
// @Summary Create a submission
// @Description Validates image presence then trimmed description, stores the image under a timestamp-prefixed filename, and inserts one submission row.
// @Tags submissions
// @Accept mpfd
// @Produce json
// @Param image formData file true "Image file (jpg, jpeg, png)"
// @Param description formData string true "Free-text description"
// @Success 201 {object} handlers.SubmissionResponse "Submission stored"
// @Failure 400 {object} handlers.ErrorResponse "Missing image or empty description"
// @Failure 401 {object} handlers.ErrorResponse "Not logged in"
// @Router /submissions [post]
func NewCreateSubmissionHandler(svc SubmissionCreator, store SessionSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessions.FromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Please login first.",
			})
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

		// A missing file part is left for the service to reject so the
		// validation order stays in one place.
		var image io.Reader
		var filename string
		file, header, err := r.FormFile("image")
		if err == nil {
			defer file.Close()
			image = file
			filename = header.Filename
		}

		imagePath, err := svc.Create(r.Context(), sess.Email, filename, image, r.FormValue("description"))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrImageRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Please upload an image!",
				})
			case errors.Is(err, services.ErrDescriptionRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Please enter a description!",
				})
			case errors.Is(err, services.ErrUnsupportedImageType):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Only jpg, jpeg and png images are supported.",
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

		// Successful submit hides the form again.
		sess.ShowForm = false
		if err := store.Save(w, r, sess); err != nil {
			logger.Log.Errorw("failed to save session", "err", err)
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(SubmissionResponse{
			Message:   "Your data has been successfully saved!",
			ImagePath: imagePath,
		})
	}
}
