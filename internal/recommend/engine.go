package recommend

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/progracyd/capstone-matcher/internal/classify"
	"github.com/progracyd/capstone-matcher/internal/lexicon"
	"github.com/progracyd/capstone-matcher/internal/types"
	"github.com/progracyd/capstone-matcher/internal/vector"
)

// minRequiredSkills is the specificity floor: projects whose requirement
// text yields fewer recognized skills are excluded from scoring.
const minRequiredSkills = 3

// Weights configures the ranking step.
type Weights struct {
	// Alpha and Beta weight the match and complementarity components.
	// They are independent knobs and need not sum to 1.
	Alpha float64
	Beta  float64

	// TopK caps the number of recommendations returned per team.
	TopK int

	// NormalizeMatch controls whether match scores are min-max scaled
	// across the candidate set before weighting. Complementarity is always
	// scaled; match scaling is optional because raw cosine is already in
	// [0,1] for non-negative vectors.
	NormalizeMatch bool

	// CompressThreshold and CompressOffset define the ceiling-avoidance
	// step: any final score above the threshold is reduced by the offset.
	CompressThreshold float64
	CompressOffset    float64
}

// DefaultWeights returns the production defaults.
func DefaultWeights() Weights {
	return Weights{
		Alpha:             0.7,
		Beta:              0.3,
		TopK:              6,
		NormalizeMatch:    true,
		CompressThreshold: 0.9,
		CompressOffset:    0.1,
	}
}

// TeamProfile is a team's in-memory skill profile: one vector per member
// plus the derived aggregate (member mean).
type TeamProfile struct {
	ID        int64
	Members   []vector.Vector
	Aggregate vector.Vector
}

// ProjectProfile is a candidate project with its requirement vector.
type ProjectProfile struct {
	ID     int64
	Number string
	Title  string
	Vector vector.Vector
}

// Snapshot is an immutable view of vectorized teams and projects. Engines
// swap whole snapshots on reload; a snapshot is never mutated after
// construction, so concurrent readers need no locking against each other.
type Snapshot struct {
	teams    map[int64]*TeamProfile
	projects []ProjectProfile
}

// NewSnapshot builds a snapshot directly from prepared profiles. LoadData is
// the usual entry point; this constructor exists for callers that vectorize
// their own inputs.
func NewSnapshot(teams []*TeamProfile, projects []ProjectProfile) *Snapshot {
	snap := &Snapshot{
		teams:    make(map[int64]*TeamProfile, len(teams)),
		projects: projects,
	}
	for _, team := range teams {
		snap.teams[team.ID] = team
	}
	return snap
}

// TeamIDs returns the loaded team ids in ascending order.
func (s *Snapshot) TeamIDs() []int64 {
	ids := make([]int64, 0, len(s.teams))
	for id := range s.teams {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Team returns the profile loaded for a team id.
func (s *Snapshot) Team(id int64) (*TeamProfile, bool) {
	team, ok := s.teams[id]
	return team, ok
}

// ProjectCount returns the number of eligible candidate projects.
func (s *Snapshot) ProjectCount() int {
	return len(s.projects)
}

// Engine computes recommendations over a loaded snapshot.
type Engine struct {
	classifier *classify.Classifier
	lex        *lexicon.Lexicon
	weights    Weights

	mu   sync.RWMutex
	snap *Snapshot
}

// New creates an engine over the given lexicon. Scoring is a pure function
// of the loaded snapshot, so one engine may serve concurrent requests.
func New(lex *lexicon.Lexicon, weights Weights) *Engine {
	return &Engine{
		classifier: classify.New(lex),
		lex:        lex,
		weights:    weights,
	}
}

// Weights returns the engine's ranking configuration.
func (e *Engine) Weights() Weights {
	return e.weights
}

// LoadData classifies and vectorizes the supplied roster and catalog and
// swaps them in as the engine's current snapshot. It must be called before
// Recommend or RecommendAll, and again to pick up changed source data.
// Projects with fewer than three recognized required skills are skipped for
// insufficient specificity. Catalog order is preserved for the surviving
// projects.
func (e *Engine) LoadData(members []types.Member, projects []types.Project) *Snapshot {
	grouped := make(map[int64][]vector.Vector)
	var order []int64
	for _, m := range members {
		if _, seen := grouped[m.GroupID]; !seen {
			order = append(order, m.GroupID)
		}
		strengths := e.classifier.Classify(m.Skill)
		grouped[m.GroupID] = append(grouped[m.GroupID], vector.Vectorize(e.lex, strengths))
	}

	teams := make([]*TeamProfile, 0, len(grouped))
	for _, groupID := range order {
		vectors := grouped[groupID]
		teams = append(teams, &TeamProfile{
			ID:        groupID,
			Members:   vectors,
			Aggregate: vector.Mean(vectors),
		})
	}

	eligible := make([]ProjectProfile, 0, len(projects))
	for _, p := range projects {
		strengths := e.classifier.Classify(p.RequiredSkills)
		if len(strengths) < minRequiredSkills {
			continue
		}
		eligible = append(eligible, ProjectProfile{
			ID:     p.ID,
			Number: p.Number,
			Title:  p.Title,
			Vector: vector.Vectorize(e.lex, strengths),
		})
	}

	snap := NewSnapshot(teams, eligible)
	e.mu.Lock()
	e.snap = snap
	e.mu.Unlock()
	return snap
}

// Snapshot returns the currently loaded snapshot, or nil before LoadData.
func (e *Engine) Snapshot() *Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snap
}

// Recommend returns the ranked top-K project recommendations for one team.
// A loaded snapshot with zero eligible projects yields an empty list, not an
// error; an unknown or empty team is a validation failure.
func (e *Engine) Recommend(teamID int64) ([]types.Recommendation, error) {
	snap := e.Snapshot()
	if snap == nil {
		return nil, &ErrNotLoaded{}
	}
	return e.recommendFromSnapshot(snap, teamID)
}

// RecommendAll computes recommendations for every loaded team. Teams are
// independent and the snapshot is immutable, so they are scored in parallel.
func (e *Engine) RecommendAll(ctx context.Context) (map[int64][]types.Recommendation, error) {
	snap := e.Snapshot()
	if snap == nil {
		return nil, &ErrNotLoaded{}
	}

	results := make(map[int64][]types.Recommendation, len(snap.teams))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, teamID := range snap.TeamIDs() {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			recs, err := e.recommendFromSnapshot(snap, teamID)
			if err != nil {
				return err
			}
			mu.Lock()
			results[teamID] = recs
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (e *Engine) recommendFromSnapshot(snap *Snapshot, teamID int64) ([]types.Recommendation, error) {
	team, ok := snap.teams[teamID]
	if !ok {
		return nil, &ErrTeamNotFound{TeamID: teamID}
	}
	if len(team.Members) == 0 {
		return nil, &ErrEmptyTeam{TeamID: teamID}
	}
	if len(snap.projects) == 0 {
		return []types.Recommendation{}, nil
	}

	match := matchScores(team.Aggregate, snap.projects)
	comp := make([]float64, len(snap.projects))
	for i, p := range snap.projects {
		comp[i] = complementarity(team.Members, p.Vector)
	}

	// Complementarity is always rescaled across the candidate set; its raw
	// range depends on the level scale and would otherwise swamp or vanish
	// against the cosine component.
	comp = minMaxScale(comp)
	if e.weights.NormalizeMatch {
		match = minMaxScale(match)
	}

	w := e.weights
	type scored struct {
		idx   int
		final float64
		match float64
		comp  float64
	}
	candidates := make([]scored, len(snap.projects))
	for i := range snap.projects {
		weightedMatch := w.Alpha * match[i]
		weightedComp := w.Beta * comp[i]
		candidates[i] = scored{
			idx:   i,
			final: compress(weightedMatch+weightedComp, w.CompressThreshold, w.CompressOffset),
			match: weightedMatch,
			comp:  weightedComp,
		}
	}

	// Final score descending; equal scores fall back to project id
	// ascending so the ordering is deterministic across runs.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].final != candidates[j].final {
			return candidates[i].final > candidates[j].final
		}
		return snap.projects[candidates[i].idx].ID < snap.projects[candidates[j].idx].ID
	})

	top := w.TopK
	if top > len(candidates) {
		top = len(candidates)
	}
	recs := make([]types.Recommendation, 0, top)
	for rank, c := range candidates[:top] {
		p := snap.projects[c.idx]
		recs = append(recs, types.Recommendation{
			Rank:                 rank + 1,
			GroupID:              teamID,
			ProjectID:            p.ID,
			ProjectNumber:        p.Number,
			ProjectTitle:         p.Title,
			FinalScore:           c.final,
			MatchScore:           c.match,
			ComplementarityScore: c.comp,
		})
	}
	return recs, nil
}
