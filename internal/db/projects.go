package db

import (
	"context"
	"fmt"

	"github.com/progracyd/capstone-matcher/internal/types"
)

// ListProjects returns the full project catalog in insertion order.
func (db *DB) ListProjects(ctx context.Context) ([]types.Project, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, project_number, project_title, client_name, group_capacity,
		        COALESCE(required_skills, '')
		 FROM projects
		 ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	var projects []types.Project
	for rows.Next() {
		var p types.Project
		if err := rows.Scan(&p.ID, &p.Number, &p.Title, &p.Client, &p.Capacity, &p.RequiredSkills); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}
	return projects, nil
}
