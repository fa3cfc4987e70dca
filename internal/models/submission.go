package models

// SubmissionDB represents a submission record in the database
type SubmissionDB struct {
	ID          int64  `json:"id" db:"id"`                   // Auto-incrementing primary key
	UserEmail   string `json:"user_email" db:"user_email"`   // References users.email, not enforced by the store
	ImagePath   string `json:"image_path" db:"image_path"`   // Path of the stored image file
	Description string `json:"description" db:"description"` // Free-text description, stored trimmed
	Timestamp   string `json:"timestamp" db:"timestamp"`     // Creation time, formatted YYYYMMDD_HHMMSS
}

// SubmissionWithUser is a submission row left-joined to its user.
// UserName is empty when no matching user row exists.
type SubmissionWithUser struct {
	ID          int64  `json:"id" db:"id"`
	UserEmail   string `json:"user_email" db:"user_email"`
	UserName    string `json:"user_name" db:"user_name"`
	ImagePath   string `json:"image_path" db:"image_path"`
	Description string `json:"description" db:"description"`
	Timestamp   string `json:"timestamp" db:"timestamp"`
}
