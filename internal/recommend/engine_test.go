package recommend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/progracyd/capstone-matcher/internal/lexicon"
	"github.com/progracyd/capstone-matcher/internal/types"
	"github.com/progracyd/capstone-matcher/internal/vector"
)

func testEngine() *Engine {
	lex := lexicon.New("Python", "Java", "React", "SQL", "Docker", "Jest", "Figma")
	return New(lex, DefaultWeights())
}

func testMembers() []types.Member {
	return []types.Member{
		{ID: 1, GroupID: 10, Name: "Alice", Skill: "expert in Python and SQL"},
		{ID: 2, GroupID: 10, Name: "Bob", Skill: "skilled in Java"},
		{ID: 3, GroupID: 20, Name: "Cara", Skill: "basic React, familiar with Figma"},
	}
}

func testProjects() []types.Project {
	return []types.Project{
		{ID: 1, Number: "P1", Title: "Data Platform", RequiredSkills: "Python, SQL and Java required"},
		{ID: 2, Number: "P2", Title: "Design System", RequiredSkills: "React, Figma and Jest"},
		{ID: 3, Number: "P3", Title: "Vague Brief", RequiredSkills: "Docker only"},
	}
}

func TestLoadData_ExcludesUnderspecifiedProjects(t *testing.T) {
	e := testEngine()

	snap := e.LoadData(testMembers(), testProjects())

	// P3 names a single recognized skill and is dropped.
	assert.Equal(t, 2, snap.ProjectCount())
	assert.Equal(t, []int64{10, 20}, snap.TeamIDs())
}

func TestSnapshotTeam_Lookup(t *testing.T) {
	e := testEngine()
	snap := e.LoadData(testMembers(), testProjects())

	team, ok := snap.Team(10)
	require.True(t, ok)
	assert.Equal(t, int64(10), team.ID)
	assert.Len(t, team.Members, 2)

	_, ok = snap.Team(99)
	assert.False(t, ok)
}

func TestRecommend_RanksMatchingProjectFirst(t *testing.T) {
	e := testEngine()
	e.LoadData(testMembers(), testProjects())

	recs, err := e.Recommend(10)

	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "P1", recs[0].ProjectNumber)
	assert.Equal(t, 1, recs[0].Rank)
	assert.Equal(t, 2, recs[1].Rank)
	assert.Greater(t, recs[0].FinalScore, recs[1].FinalScore)
}

func TestRecommend_NeverExceedsTopK(t *testing.T) {
	e := testEngine()
	projects := make([]types.Project, 0, 10)
	for i := int64(1); i <= 10; i++ {
		projects = append(projects, types.Project{
			ID:             i,
			Title:          "Candidate",
			RequiredSkills: "Python, SQL and Java",
		})
	}
	e.LoadData(testMembers(), projects)

	recs, err := e.Recommend(10)

	require.NoError(t, err)
	assert.Len(t, recs, DefaultWeights().TopK)
}

func TestRecommend_NotLoaded(t *testing.T) {
	e := testEngine()

	_, err := e.Recommend(10)

	var notLoaded *ErrNotLoaded
	require.ErrorAs(t, err, &notLoaded)
}

func TestRecommend_UnknownTeam(t *testing.T) {
	e := testEngine()
	e.LoadData(testMembers(), testProjects())

	_, err := e.Recommend(999)

	var notFound *ErrTeamNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, int64(999), notFound.TeamID)
}

func TestRecommend_ZeroProjectsIsEmptyNotError(t *testing.T) {
	e := testEngine()
	e.LoadData(testMembers(), nil)

	recs, err := e.Recommend(10)

	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRecommend_EmptyTeamFailsValidation(t *testing.T) {
	e := testEngine()
	snap := NewSnapshot(
		[]*TeamProfile{{ID: 5}},
		[]ProjectProfile{{ID: 1, Vector: vector.Vector{1, 2, 3}}},
	)
	e.mu.Lock()
	e.snap = snap
	e.mu.Unlock()

	_, err := e.Recommend(5)

	var empty *ErrEmptyTeam
	require.ErrorAs(t, err, &empty)
}

func TestRecommend_Idempotent(t *testing.T) {
	e := testEngine()
	e.LoadData(testMembers(), testProjects())

	first, err := e.Recommend(10)
	require.NoError(t, err)
	second, err := e.Recommend(10)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRecommend_TieBrokenByProjectIDAscending(t *testing.T) {
	e := testEngine()
	// Identical requirement texts produce identical scores; catalog order is
	// deliberately descending by id.
	projects := []types.Project{
		{ID: 9, Number: "P9", Title: "Twin B", RequiredSkills: "Python, SQL and Java"},
		{ID: 4, Number: "P4", Title: "Twin A", RequiredSkills: "Python, SQL and Java"},
	}
	e.LoadData(testMembers(), projects)

	recs, err := e.Recommend(10)

	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.InDelta(t, recs[0].FinalScore, recs[1].FinalScore, 1e-12)
	assert.Equal(t, int64(4), recs[0].ProjectID)
	assert.Equal(t, int64(9), recs[1].ProjectID)
}

func TestRecommend_TopCandidateCompressed(t *testing.T) {
	e := testEngine()
	members := []types.Member{
		{ID: 1, GroupID: 10, Skill: "expert in Python"},
		{ID: 2, GroupID: 10, Skill: "expert in SQL"},
	}
	projects := []types.Project{
		{ID: 1, Number: "P1", Title: "Fit", RequiredSkills: "Python, SQL and Java"},
		{ID: 2, Number: "P2", Title: "Misfit", RequiredSkills: "React, Figma and Jest"},
	}
	e.LoadData(members, projects)

	recs, err := e.Recommend(10)

	require.NoError(t, err)
	require.Len(t, recs, 2)
	// P1 maxes both normalized components: 0.7 + 0.3 = 1.0, which is above
	// the 0.9 threshold and gets reduced by 0.1.
	assert.Equal(t, "P1", recs[0].ProjectNumber)
	assert.InDelta(t, 0.9, recs[0].FinalScore, 1e-9)
	assert.InDelta(t, 0.7, recs[0].MatchScore, 1e-9)
	assert.InDelta(t, 0.3, recs[0].ComplementarityScore, 1e-9)
}

func TestRecommend_RawMatchVariant(t *testing.T) {
	lex := lexicon.New("Python", "Java", "React", "SQL", "Docker", "Jest", "Figma")
	w := DefaultWeights()
	w.NormalizeMatch = false
	e := New(lex, w)
	e.LoadData(testMembers(), testProjects())

	recs, err := e.Recommend(10)

	require.NoError(t, err)
	require.Len(t, recs, 2)
	// Raw cosine never reaches 1.0 here, so the match component stays
	// strictly below alpha.
	assert.Less(t, recs[0].MatchScore, w.Alpha)
	assert.Greater(t, recs[0].MatchScore, 0.0)
}

func TestRecommendAll_CoversEveryTeam(t *testing.T) {
	e := testEngine()
	e.LoadData(testMembers(), testProjects())

	all, err := e.RecommendAll(context.Background())

	require.NoError(t, err)
	require.Len(t, all, 2)

	single, err := e.Recommend(10)
	require.NoError(t, err)
	assert.Equal(t, single, all[10])
}

func TestRecommendAll_NotLoaded(t *testing.T) {
	e := testEngine()

	_, err := e.RecommendAll(context.Background())

	var notLoaded *ErrNotLoaded
	require.ErrorAs(t, err, &notLoaded)
}

func TestLoadData_ReloadSwapsSnapshot(t *testing.T) {
	e := testEngine()
	e.LoadData(testMembers(), testProjects())
	before, err := e.Recommend(10)
	require.NoError(t, err)
	require.NotEmpty(t, before)

	// Reload with an empty catalog; recommendations must reflect the new
	// snapshot, not the old one.
	e.LoadData(testMembers(), nil)
	after, err := e.Recommend(10)
	require.NoError(t, err)
	assert.Empty(t, after)
}
