package models

// UserDB represents a user record in the database
type UserDB struct {
	Email string `json:"email" db:"email"` // Primary key, entered once at signup
	Name  string `json:"name" db:"name"`   // Display name
}
