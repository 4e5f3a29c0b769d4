// Package history persists a record of completed web comparisons in
// PostgreSQL. It is an optional side channel: the comparison engine
// itself keeps no state, and when no database is configured the server
// simply runs without history.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store records and queries comparison history entries.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a Store backed by the given connection pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Entry is one completed comparison.
type Entry struct {
	ID         string    `json:"id"`
	LeftFile   string    `json:"leftFile"`
	RightFile  string    `json:"rightFile"`
	SheetCount int       `json:"sheetCount"`
	DiffCount  int       `json:"diffCount"`
	DurationMS int64     `json:"durationMs"`
	ClientIP   string    `json:"clientIp,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// EnsureSchema creates the history table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS comparisons (
			id          UUID PRIMARY KEY,
			left_file   TEXT NOT NULL,
			right_file  TEXT NOT NULL,
			sheet_count INTEGER NOT NULL,
			diff_count  INTEGER NOT NULL,
			duration_ms BIGINT NOT NULL,
			client_ip   TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("ensure history schema: %w", err)
	}
	return nil
}

// Record inserts one history entry. A zero ID or CreatedAt is filled
// in before the insert.
func (s *Store) Record(ctx context.Context, e Entry) (Entry, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO comparisons (id, left_file, right_file, sheet_count, diff_count, duration_ms, client_ip, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		e.ID, e.LeftFile, e.RightFile, e.SheetCount, e.DiffCount, e.DurationMS, e.ClientIP, e.CreatedAt)
	if err != nil {
		return Entry{}, fmt.Errorf("record comparison: %w", err)
	}
	return e, nil
}

// Recent returns the most recent entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, left_file, right_file, sheet_count, diff_count, duration_ms, client_ip, created_at
		FROM comparisons
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query comparison history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.LeftFile, &e.RightFile, &e.SheetCount,
			&e.DiffCount, &e.DurationMS, &e.ClientIP, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comparison history: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read comparison history: %w", err)
	}
	return entries, nil
}
