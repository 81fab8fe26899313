package repository

import (
	"context"
	"database/sql"

	"swbox/internal/models"
)

type CommandLog interface {
	Create(ctx context.Context, entry models.CommandLog) error
	// List returns at most limit entries, newest first.
	List(ctx context.Context, limit int) ([]models.CommandLog, error)
}

type Repository struct {
	CommandLog
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		CommandLog: NewCommandLogPostgres(db),
		db:         db,
	}
}

// NewMemoryRepository keeps the command log in process memory, for running
// without a database.
func NewMemoryRepository(capacity int) *Repository {
	return &Repository{
		CommandLog: NewCommandLogMemory(capacity),
	}
}
