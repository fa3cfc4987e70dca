package services

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"strconv"

	"github.com/vkamarthi/heritage-collect/internal/logger"
	"github.com/vkamarthi/heritage-collect/internal/models"
)

// Error variables
var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrImageMissing       = errors.New("image file missing")
)

// SubmissionLister defines the read operations the report needs.
type SubmissionLister interface {
	ListWithUsers(ctx context.Context) ([]models.SubmissionWithUser, error)
	CountByUser(ctx context.Context) ([]models.SubmissionCount, error)
	GetByID(ctx context.Context, id int64) (*models.SubmissionDB, error)
}

// ImageReader checks and reads stored image files.
type ImageReader interface {
	Exists(path string) bool
	ReadFile(path string) ([]byte, error)
}

// ReportService builds the admin dashboard and the CSV export.
type ReportService struct {
	subs   SubmissionLister
	images ImageReader
}

// NewReportService creates a new ReportService instance.
func NewReportService(subs SubmissionLister, images ImageReader) *ReportService {
	return &ReportService{
		subs:   subs,
		images: images,
	}
}

// Dashboard returns the per-user frequency table and the feed, newest first.
// A submission whose image file disappeared is flagged, not dropped.
func (svc *ReportService) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	counts, err := svc.subs.CountByUser(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count submissions", "err", err)
		return nil, err
	}

	rows, err := svc.subs.ListWithUsers(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list submissions", "err", err)
		return nil, err
	}

	feed := make([]models.FeedEntry, 0, len(rows))
	for _, row := range rows {
		feed = append(feed, models.FeedEntry{
			ID:           row.ID,
			UserEmail:    row.UserEmail,
			UserName:     row.UserName,
			ImagePath:    row.ImagePath,
			Description:  row.Description,
			Timestamp:    row.Timestamp,
			ImageMissing: !svc.images.Exists(row.ImagePath),
		})
	}

	return &models.Dashboard{
		Counts: counts,
		Feed:   feed,
	}, nil
}

// LoadImage returns the stored image bytes for a submission, for inline
// display in the feed.
func (svc *ReportService) LoadImage(ctx context.Context, id int64) ([]byte, error) {
	sub, err := svc.subs.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get submission", "err", err)
		return nil, err
	}
	if sub == nil {
		return nil, ErrSubmissionNotFound
	}

	if !svc.images.Exists(sub.ImagePath) {
		return nil, ErrImageMissing
	}

	data, err := svc.images.ReadFile(sub.ImagePath)
	if err != nil {
		logger.Log.Errorw("failed to read image", "path", sub.ImagePath, "err", err)
		return nil, err
	}

	return data, nil
}

// WriteCSV serializes the joined rows as CSV with the fixed header, one row
// per submission, no row limit. Produced on demand, never cached.
func (svc *ReportService) WriteCSV(ctx context.Context, w io.Writer) error {
	rows, err := svc.subs.ListWithUsers(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list submissions for export", "err", err)
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"user_email", "user_name", "image_path", "description", "timestamp"}); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{row.UserEmail, row.UserName, row.ImagePath, row.Description, row.Timestamp}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		logger.Log.Errorw("failed to flush csv", "rows", strconv.Itoa(len(rows)), "err", err)
		return err
	}

	return nil
}
