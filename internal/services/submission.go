package services

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/vkamarthi/heritage-collect/internal/logger"
)

// Error variables
var (
	ErrImageRequired        = errors.New("image file is required")
	ErrDescriptionRequired  = errors.New("description is required")
	ErrUnsupportedImageType = errors.New("unsupported image type")
)

// timestampLayout produces the YYYYMMDD_HHMMSS token stored with each
// submission and prefixed onto the stored filename. Two uploads of the same
// filename within the same second overwrite each other.
const timestampLayout = "20060102_150405"

var allowedImageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

// SubmissionWriter defines write operations for submissions.
type SubmissionWriter interface {
	Save(ctx context.Context, userEmail, imagePath, description, timestamp string) error
}

// ImageSaver persists raw image bytes and returns the stored path.
type ImageSaver interface {
	Save(filename string, r io.Reader) (string, error)
}

// SubmissionService validates and stores one (image, description) pair.
type SubmissionService struct {
	writer SubmissionWriter
	images ImageSaver
	now    func() time.Time
}

// NewSubmissionService creates a new SubmissionService instance.
func NewSubmissionService(writer SubmissionWriter, images ImageSaver) *SubmissionService {
	return &SubmissionService{
		writer: writer,
		images: images,
		now:    time.Now,
	}
}

// Create validates the upload, writes the image file, and inserts the
// submission row. Validation runs in order — image presence, then trimmed
// description — and both checks pass before any write happens.
func (svc *SubmissionService) Create(ctx context.Context, userEmail, filename string, image io.Reader, description string) (string, error) {
	if image == nil || filename == "" {
		return "", ErrImageRequired
	}

	description = strings.TrimSpace(description)
	if description == "" {
		return "", ErrDescriptionRequired
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedImageExtensions[ext]; !ok {
		return "", ErrUnsupportedImageType
	}

	timestamp := svc.now().Format(timestampLayout)
	storedName := timestamp + "_" + filepath.Base(filename)

	imagePath, err := svc.images.Save(storedName, image)
	if err != nil {
		logger.Log.Errorw("failed to store image", "err", err)
		return "", err
	}

	if err := svc.writer.Save(ctx, userEmail, imagePath, description, timestamp); err != nil {
		logger.Log.Errorw("failed to save submission", "err", err)
		return "", err
	}

	return imagePath, nil
}
