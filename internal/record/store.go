// Package record persists batch-level recruitment reports as durable
// records visible to the requesting chairs.
package record

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Store publishes recruitment status records.
type Store interface {
	// Publish writes one record under parentID and returns the new record id.
	Publish(ctx context.Context, parentID string, payload interface{}) (string, error)
}

// PostgresStore writes records to the recruitment_records table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a Postgres-backed record store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Publish inserts the payload as a JSON record and returns its id.
func (s *PostgresStore) Publish(ctx context.Context, parentID string, payload interface{}) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("record: marshal payload: %w", err)
	}

	id := uuid.New()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO recruitment_records (id, parent_id, payload, created_at)
		VALUES ($1, $2, $3, NOW())
	`, id, parentID, data)
	if err != nil {
		return "", fmt.Errorf("record: insert: %w", err)
	}

	return id.String(), nil
}
