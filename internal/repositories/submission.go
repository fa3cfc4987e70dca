package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/vkamarthi/heritage-collect/internal/logger"
	"github.com/vkamarthi/heritage-collect/internal/models"
)

type SubmissionReadRepository struct {
	db *sqlx.DB
}

func NewSubmissionReadRepository(db *sqlx.DB) *SubmissionReadRepository {
	return &SubmissionReadRepository{db: db}
}

// ListAll returns every submission row. Ordering is not guaranteed by the
// store; callers sort for display.
func (r *SubmissionReadRepository) ListAll(ctx context.Context) ([]models.SubmissionDB, error) {
	const query = `
		SELECT id, user_email, image_path, description, timestamp
		FROM submissions
	`

	var subs []models.SubmissionDB
	err := r.db.SelectContext(ctx, &subs, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(subs),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return subs, nil
}

// ListWithUsers left-joins submissions to users on email, newest first.
// Submissions without a matching user keep an empty user_name.
func (r *SubmissionReadRepository) ListWithUsers(ctx context.Context) ([]models.SubmissionWithUser, error) {
	const query = `
		SELECT s.id, s.user_email, COALESCE(u.name, '') AS user_name,
		       s.image_path, s.description, s.timestamp
		FROM submissions s
		LEFT JOIN users u ON u.email = s.user_email
		ORDER BY s.timestamp DESC, s.id DESC
	`

	var rows []models.SubmissionWithUser
	err := r.db.SelectContext(ctx, &rows, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return rows, nil
}

// CountByUser groups submissions by (email, name) and counts rows per group,
// ordered by email for stable output.
func (r *SubmissionReadRepository) CountByUser(ctx context.Context) ([]models.SubmissionCount, error) {
	const query = `
		SELECT s.user_email, COALESCE(u.name, '') AS user_name,
		       COUNT(*) AS submissions
		FROM submissions s
		LEFT JOIN users u ON u.email = s.user_email
		GROUP BY s.user_email, u.name
		ORDER BY s.user_email
	`

	var counts []models.SubmissionCount
	err := r.db.SelectContext(ctx, &counts, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(counts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return counts, nil
}

// GetByID returns the submission with the given id, or nil when absent.
func (r *SubmissionReadRepository) GetByID(ctx context.Context, id int64) (*models.SubmissionDB, error) {
	const query = `
		SELECT id, user_email, image_path, description, timestamp
		FROM submissions
		WHERE id = ?
		LIMIT 1
	`

	var sub models.SubmissionDB
	err := r.db.GetContext(ctx, &sub, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", sub,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &sub, nil
}

type SubmissionWriteRepository struct {
	db *sqlx.DB
}

func NewSubmissionWriteRepository(db *sqlx.DB) *SubmissionWriteRepository {
	return &SubmissionWriteRepository{db: db}
}

// Save inserts a submission row. The user email is not validated against the
// users table; the join at read time tolerates orphans.
func (r *SubmissionWriteRepository) Save(ctx context.Context, userEmail, imagePath, description, timestamp string) error {
	query := `
		INSERT INTO submissions (user_email, image_path, description, timestamp)
		VALUES (?, ?, ?, ?)
	`
	args := []any{userEmail, imagePath, description, timestamp}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
