package models

// SubmissionCount is one row of the per-user frequency table.
type SubmissionCount struct {
	UserEmail   string `json:"user_email" db:"user_email"`
	UserName    string `json:"user_name" db:"user_name"`
	Submissions int    `json:"submissions" db:"submissions"`
}

// FeedEntry is one submission as shown in the admin feed.
// ImageMissing is set when the referenced file is absent at read time.
type FeedEntry struct {
	ID           int64  `json:"id"`
	UserEmail    string `json:"user_email"`
	UserName     string `json:"user_name"`
	ImagePath    string `json:"image_path"`
	Description  string `json:"description"`
	Timestamp    string `json:"timestamp"`
	ImageMissing bool   `json:"image_missing"`
}

// Dashboard is the full admin report: the frequency table (which also
// drives the bar chart) and the feed sorted by timestamp descending.
type Dashboard struct {
	Counts []SubmissionCount `json:"counts"`
	Feed   []FeedEntry       `json:"feed"`
}
