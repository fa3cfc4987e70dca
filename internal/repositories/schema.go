package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/vkamarthi/heritage-collect/internal/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	email TEXT PRIMARY KEY,
	name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS submissions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_email TEXT,
	image_path TEXT,
	description TEXT,
	timestamp TEXT
);
`

// InitSchema creates both tables if they do not exist yet. Safe to call on
// every startup.
func InitSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)

	logger.Log.Infow("schema init",
		"error", err,
	)

	return err
}
