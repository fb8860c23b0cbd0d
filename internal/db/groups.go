package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/progracyd/capstone-matcher/internal/types"
)

// ListGroupMembers returns every group member with their skill text, ordered
// by group then member id so repeated loads see a stable order.
func (db *DB) ListGroupMembers(ctx context.Context) ([]types.Member, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, group_id, name, email, COALESCE(skill, '')
		 FROM group_members
		 ORDER BY group_id, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query group members: %w", err)
	}
	defer rows.Close()

	var members []types.Member
	for rows.Next() {
		var m types.Member
		if err := rows.Scan(&m.ID, &m.GroupID, &m.Name, &m.Email, &m.Skill); err != nil {
			return nil, fmt.Errorf("failed to scan group member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read group members: %w", err)
	}
	return members, nil
}

// GroupIDForUser returns the group a user belongs to, or false when the
// user is not on any roster.
func (db *DB) GroupIDForUser(ctx context.Context, userID uuid.UUID) (int64, bool, error) {
	var groupID int64
	err := db.pool.QueryRow(ctx,
		`SELECT group_id FROM group_members WHERE user_id = $1`,
		userID,
	).Scan(&groupID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to look up group membership: %w", err)
	}
	return groupID, true, nil
}
