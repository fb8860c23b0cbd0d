package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/progracyd/capstone-matcher/internal/server/middleware"
	"github.com/progracyd/capstone-matcher/internal/types"
)

// reloadSnapshot pulls the current roster and catalog out of the store and
// rebuilds the engine snapshot. Recommendations always reflect the data as
// of the triggering request, matching the load-then-query lifecycle.
func (s *Server) reloadSnapshot(ctx context.Context) error {
	members, err := s.store.ListGroupMembers(ctx)
	if err != nil {
		return fmt.Errorf("failed to load group members: %w", err)
	}
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}
	s.engine.LoadData(members, projects)
	return nil
}

// handleStudentRecommend computes fresh recommendations for the calling
// student's group, stores them as the group's current list and returns them.
func (s *Server) handleStudentRecommend(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	groupID, ok, err := s.store.GroupIDForUser(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !ok {
		err := &ErrNoGroup{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.reloadSnapshot(r.Context()); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	recs, err := s.engine.Recommend(groupID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.store.ReplaceGroupRecommendations(r.Context(), groupID, recs); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store recommendations: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"group_id":        groupID,
		"recommendations": recs,
	})
}

// handleRefreshRecommendations recomputes and stores recommendations for
// every group. Staff only.
func (s *Server) handleRefreshRecommendations(w http.ResponseWriter, r *http.Request) {
	if err := s.reloadSnapshot(r.Context()); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	all, err := s.engine.RecommendAll(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	for groupID, recs := range all {
		if err := s.store.ReplaceGroupRecommendations(r.Context(), groupID, recs); err != nil {
			s.errorResponse(w, http.StatusInternalServerError,
				fmt.Sprintf("Failed to store recommendations for group %d: %v", groupID, err))
			return
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"groups_processed": len(all),
		"projects_scored":  s.engine.Snapshot().ProjectCount(),
	})
}

// handleGroupRecommendations returns the stored recommendation list for a
// group without recomputing it.
func (s *Server) handleGroupRecommendations(w http.ResponseWriter, r *http.Request) {
	groupID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid group ID")
		return
	}

	recs, err := s.store.GetGroupRecommendations(r.Context(), groupID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if recs == nil {
		recs = []types.Recommendation{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"group_id":        groupID,
		"recommendations": recs,
	})
}
