// Package membership answers venue-scoped group membership queries for
// the recruitment classifier.
package membership

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Store looks up the groups a member currently belongs to.
type Store interface {
	// GroupsContaining returns the ids of all groups under venuePrefix
	// that contain the given member (an email address or profile id).
	GroupsContaining(ctx context.Context, member, venuePrefix string) ([]string, error)
}

// PostgresStore reads memberships from the venue_group_members table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a Postgres-backed membership store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// GroupsContaining queries all groups under venuePrefix containing member.
// Member matching is case-insensitive, consistent with email handling
// elsewhere in the platform.
func (s *PostgresStore) GroupsContaining(ctx context.Context, member, venuePrefix string) ([]string, error) {
	member = strings.ToLower(strings.TrimSpace(member))

	rows, err := s.db.QueryContext(ctx, `
		SELECT group_id FROM venue_group_members
		WHERE LOWER(member) = $1 AND group_id LIKE $2 || '%'
		ORDER BY group_id
	`, member, venuePrefix)
	if err != nil {
		return nil, fmt.Errorf("membership: query groups for member: %w", err)
	}
	defer rows.Close()

	var groups []string
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, fmt.Errorf("membership: scan group id: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("membership: iterate groups: %w", err)
	}

	return groups, nil
}
