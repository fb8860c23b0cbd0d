// Package vector provides fixed-dimension skill vectors and the numeric
// primitives used to compare them.
package vector

import (
	"math"

	"github.com/progracyd/capstone-matcher/internal/classify"
	"github.com/progracyd/capstone-matcher/internal/lexicon"
)

// Vector is a skill vector aligned to a lexicon: entry i holds the strength
// level for lexicon label i, or 0 when the skill is absent.
type Vector []float64

// Vectorize converts a strength map into a vector of dimension lex.Len().
// Map entries that are not lexicon labels are dropped.
func Vectorize(lex *lexicon.Lexicon, strengths classify.StrengthMap) Vector {
	v := make(Vector, lex.Len())
	for label, level := range strengths {
		if i, ok := lex.Index(label); ok {
			v[i] = float64(level)
		}
	}
	return v
}

// IsZero reports whether every entry is zero.
func (v Vector) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// NonZeroCount returns the number of nonzero entries.
func (v Vector) NonZeroCount() int {
	n := 0
	for _, x := range v {
		if x != 0 {
			n++
		}
	}
	return n
}

// Cosine returns the cosine similarity of a and b. When either vector has
// zero magnitude the similarity is undefined; 0 is returned instead of an
// error so degenerate profiles score at the bottom rather than failing.
func Cosine(a, b Vector) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Mean returns the element-wise mean of vectors, or nil when the input is
// empty. All vectors are assumed to share one dimension.
func Mean(vectors []Vector) Vector {
	if len(vectors) == 0 {
		return nil
	}
	out := make(Vector, len(vectors[0]))
	for _, v := range vectors {
		for i, x := range v {
			out[i] += x
		}
	}
	for i := range out {
		out[i] /= float64(len(vectors))
	}
	return out
}

// StdDev returns the population standard deviation of values, 0 for an
// empty slice.
func StdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, x := range values {
		sum += x
	}
	mean := sum / float64(len(values))
	var sq float64
	for _, x := range values {
		d := x - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(values)))
}
