package repository

import (
	"context"
	"sync"

	"swbox/internal/models"
)

// CommandLogMemory is a fixed-size ring of the latest command logs.
type CommandLogMemory struct {
	mu      sync.RWMutex
	entries []models.CommandLog
	next    int
	full    bool
	lastID  int
}

func NewCommandLogMemory(capacity int) *CommandLogMemory {
	if capacity <= 0 {
		capacity = 1
	}
	return &CommandLogMemory{
		entries: make([]models.CommandLog, capacity),
	}
}

func (r *CommandLogMemory) Create(_ context.Context, entry models.CommandLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	entry.ID = r.lastID
	r.entries[r.next] = entry
	r.next = (r.next + 1) % len(r.entries)
	if r.next == 0 {
		r.full = true
	}
	return nil
}

func (r *CommandLogMemory) List(_ context.Context, limit int) ([]models.CommandLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	size := r.next
	if r.full {
		size = len(r.entries)
	}
	if limit <= 0 || limit > size {
		limit = size
	}

	logs := make([]models.CommandLog, 0, limit)
	for i := 0; i < limit; i++ {
		idx := (r.next - 1 - i + len(r.entries)) % len(r.entries)
		logs = append(logs, r.entries[idx])
	}
	return logs, nil
}
