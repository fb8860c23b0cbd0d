package db

import (
	"context"
	"fmt"

	"github.com/progracyd/capstone-matcher/internal/types"
)

// ReplaceGroupRecommendations overwrites the stored recommendation list for
// one group. Delete and insert run in a single transaction so readers never
// observe a group mid-update with zero or partial rows; different groups can
// be replaced concurrently without conflict.
func (db *DB) ReplaceGroupRecommendations(ctx context.Context, groupID int64, recs []types.Recommendation) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(ctx,
		`DELETE FROM group_project_recommendation WHERE group_id = $1`,
		groupID,
	); err != nil {
		return fmt.Errorf("failed to clear recommendations for group %d: %w", groupID, err)
	}

	for _, rec := range recs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO group_project_recommendation
			   (group_id, project_id, final_score, match_score, complementarity_score, rank)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			groupID, rec.ProjectID, rec.FinalScore, rec.MatchScore, rec.ComplementarityScore, rec.Rank,
		); err != nil {
			return fmt.Errorf("failed to insert recommendation for group %d: %w", groupID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit recommendations for group %d: %w", groupID, err)
	}
	return nil
}

// GetGroupRecommendations returns the stored recommendation list for a
// group, best rank first.
func (db *DB) GetGroupRecommendations(ctx context.Context, groupID int64) ([]types.Recommendation, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT r.group_id, r.project_id, p.project_number, p.project_title,
		        r.final_score, r.match_score, r.complementarity_score, r.rank
		 FROM group_project_recommendation r
		 JOIN projects p ON p.id = r.project_id
		 WHERE r.group_id = $1
		 ORDER BY r.rank`,
		groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to query recommendations: %w", err)
	}
	defer rows.Close()

	var recs []types.Recommendation
	for rows.Next() {
		var rec types.Recommendation
		if err := rows.Scan(
			&rec.GroupID, &rec.ProjectID, &rec.ProjectNumber, &rec.ProjectTitle,
			&rec.FinalScore, &rec.MatchScore, &rec.ComplementarityScore, &rec.Rank,
		); err != nil {
			return nil, fmt.Errorf("failed to scan recommendation: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recommendations: %w", err)
	}
	return recs, nil
}
