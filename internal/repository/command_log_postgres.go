package repository

import (
	"context"
	"database/sql"
	"fmt"

	"swbox/internal/models"
)

type CommandLogPostgres struct {
	db *sql.DB
}

func NewCommandLogPostgres(db *sql.DB) *CommandLogPostgres {
	return &CommandLogPostgres{db: db}
}

func (r *CommandLogPostgres) Create(ctx context.Context, entry models.CommandLog) error {
	query := `INSERT INTO command_logs (request_id, platform, user_id, username, server_name, command, success, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query,
		entry.RequestID, entry.Platform, entry.UserID, entry.Username,
		entry.Server, entry.Command, entry.Success, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert command log: %w", err)
	}
	return nil
}

func (r *CommandLogPostgres) List(ctx context.Context, limit int) ([]models.CommandLog, error) {
	query := `
		SELECT id, request_id, platform, user_id, username, server_name, command, success, created_at
		FROM command_logs
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query command logs: %w", err)
	}
	defer rows.Close()

	var logs []models.CommandLog
	for rows.Next() {
		var l models.CommandLog
		if err := rows.Scan(&l.ID, &l.RequestID, &l.Platform, &l.UserID, &l.Username, &l.Server, &l.Command, &l.Success, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan command log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate command logs: %w", err)
	}
	return logs, nil
}
