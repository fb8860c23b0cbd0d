package recommend

import (
	"github.com/progracyd/capstone-matcher/internal/vector"
)

// matchScores returns the cosine similarity between the team aggregate and
// each project requirement vector, in project order.
func matchScores(aggregate vector.Vector, projects []ProjectProfile) []float64 {
	scores := make([]float64, len(projects))
	for i, p := range projects {
		scores[i] = vector.Cosine(aggregate, p.Vector)
	}
	return scores
}

// complementarity measures how much the team divides labor on the skills a
// project actually needs. For every dimension the project requires, it takes
// the population standard deviation of member levels on that dimension and
// averages them: high dispersion means members specialize in different
// needed skills rather than overlapping.
func complementarity(members []vector.Vector, project vector.Vector) float64 {
	if len(members) == 0 {
		return 0
	}
	var sum float64
	relevant := 0
	values := make([]float64, len(members))
	for dim, required := range project {
		if required <= 0 {
			continue
		}
		for i, m := range members {
			values[i] = m[dim]
		}
		sum += vector.StdDev(values)
		relevant++
	}
	if relevant == 0 {
		return 0
	}
	return sum / float64(relevant)
}

// minMaxScale rescales scores to [0,1] across the candidate set. When all
// scores are equal the spread is zero; everything maps to 0 so the component
// contributes nothing instead of dividing by zero.
func minMaxScale(scores []float64) []float64 {
	out := make([]float64, len(scores))
	if len(scores) == 0 {
		return out
	}
	lo, hi := scores[0], scores[0]
	for _, s := range scores[1:] {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}
	if hi == lo {
		return out
	}
	for i, s := range scores {
		out[i] = (s - lo) / (hi - lo)
	}
	return out
}

// compress applies the ceiling-avoidance adjustment: scores above the
// threshold are reduced by the offset. Inherited behavior from the original
// scoring heuristic, kept configurable because its calibration is unproven.
func compress(score, threshold, offset float64) float64 {
	if score > threshold {
		return score - offset
	}
	return score
}
