// Package types provides the shared data types exchanged between the
// matching engine, the database layer and the HTTP API.
package types

// Member is one student on a team roster. Skill holds the free-text skill
// description extracted from the member's resume or profile.
type Member struct {
	ID      int64  `json:"id"`
	GroupID int64  `json:"group_id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Skill   string `json:"skill"`
}

// Project is one client project from the catalog. RequiredSkills holds the
// free-text required-skills description supplied by the client.
type Project struct {
	ID             int64  `json:"id"`
	Number         string `json:"project_number"`
	Title          string `json:"project_title"`
	Client         string `json:"client_name,omitempty"`
	Capacity       string `json:"group_capacity,omitempty"`
	RequiredSkills string `json:"required_skills"`
}

// Recommendation is one ranked project suggestion for a team. Scores are
// the weighted components: MatchScore = alpha * normalized match,
// ComplementarityScore = beta * normalized complementarity, FinalScore their
// sum after compression.
type Recommendation struct {
	Rank                 int     `json:"rank"`
	GroupID              int64   `json:"group_id"`
	ProjectID            int64   `json:"project_id"`
	ProjectNumber        string  `json:"project_number,omitempty"`
	ProjectTitle         string  `json:"project_title"`
	FinalScore           float64 `json:"final_score"`
	MatchScore           float64 `json:"match_score"`
	ComplementarityScore float64 `json:"complementarity_score"`
}
