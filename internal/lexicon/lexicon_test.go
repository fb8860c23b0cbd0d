package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DedupCaseInsensitive(t *testing.T) {
	lex := New("Python", "python", "Java", " PYTHON ", "Go")

	assert.Equal(t, 3, lex.Len())
	assert.Equal(t, []string{"Python", "Java", "Go"}, lex.Labels())
}

func TestNew_DropsBlankLabels(t *testing.T) {
	lex := New("Python", "", "   ", "Java")

	assert.Equal(t, 2, lex.Len())
}

func TestIndex_CaseInsensitive(t *testing.T) {
	lex := New("Python", "Java", "Go")

	i, ok := lex.Index("java")
	require.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = lex.Index("Haskell")
	assert.False(t, ok)
}

func TestLabels_ReturnsCopy(t *testing.T) {
	lex := New("Python", "Java")
	labels := lex.Labels()
	labels[0] = "mutated"

	assert.Equal(t, "Python", lex.Label(0))
}

func TestMatch_WholeWordOnly(t *testing.T) {
	lex := New("Go", "Java", "React")

	// "Go" must not match inside "Golang", "Java" not inside "JavaScript".
	assert.Empty(t, lex.Match("I write golang and javascript"))
	assert.Equal(t, []string{"Go", "Java"}, lex.Match("I write Go and Java"))
}

func TestMatch_PreservesLexiconOrder(t *testing.T) {
	lex := New("Python", "Java", "React")

	assert.Equal(t, []string{"Python", "React"}, lex.Match("react then python"))
}

func TestMatch_EmptyText(t *testing.T) {
	lex := New("Python")
	assert.Nil(t, lex.Match(""))
}

func TestContainsWord_SymbolicEdges(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		needle string
		want   bool
	}{
		{"cpp at clause end", "experience with c++", "c++", true},
		{"cpp before comma", "c++, java", "c++", true},
		{"csharp", "built services in c#", "c#", true},
		{"nodejs dotted", "node.js backend work", "node.js", true},
		{"cicd slash", "set up ci/cd pipelines", "ci/cd", true},
		{"r single letter whole word", "analysis in r and excel", "r", true},
		{"r inside word", "rust programming", "r", false},
		{"word prefix", "golang", "go", false},
		{"word suffix", "mango", "go", false},
		{"exact", "go", "go", true},
		{"empty needle", "anything", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContainsWord(tt.text, tt.needle))
		})
	}
}

func TestDefault_StableAndDeduplicated(t *testing.T) {
	lex := Default()

	require.Greater(t, lex.Len(), 100)
	seen := make(map[string]bool)
	for _, label := range lex.Labels() {
		assert.False(t, seen[label], "duplicate label %q", label)
		seen[label] = true
	}

	// Dimension and axis order must be identical across constructions.
	again := Default()
	assert.Equal(t, lex.Labels(), again.Labels())
}
