// Package recommend implements the team-to-project recommendation engine:
// it scores every (team, project) pair on semantic match and internal skill
// complementarity, then returns a weighted, ranked shortlist per team.
package recommend

import "fmt"

// ErrNotLoaded indicates Recommend was called before LoadData.
type ErrNotLoaded struct{}

func (e *ErrNotLoaded) Error() string {
	return "no data loaded: call LoadData before requesting recommendations"
}

// ErrTeamNotFound indicates the requested team is not in the loaded snapshot.
type ErrTeamNotFound struct {
	TeamID int64
}

func (e *ErrTeamNotFound) Error() string {
	return fmt.Sprintf("team not found in loaded snapshot: %d", e.TeamID)
}

// ErrEmptyTeam indicates a team with no members; its aggregate vector is
// undefined, so a recommendation request for it is rejected rather than
// silently scored as a zero vector.
type ErrEmptyTeam struct {
	TeamID int64
}

func (e *ErrEmptyTeam) Error() string {
	return fmt.Sprintf("team %d has no members", e.TeamID)
}
