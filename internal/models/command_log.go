package models

import "time"

type CommandLog struct {
	ID        int       `json:"id" db:"id"`
	RequestID string    `json:"request_id" db:"request_id"`
	Platform  string    `json:"platform" db:"platform"`
	UserID    string    `json:"user_id" db:"user_id"`
	Username  string    `json:"username" db:"username"`
	Server    string    `json:"server" db:"server_name"`
	Command   string    `json:"command" db:"command"`
	Success   bool      `json:"success" db:"success"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
