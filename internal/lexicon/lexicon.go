// Package lexicon defines the closed skill vocabulary that fixes the
// dimensionality and axis order of every skill vector in the system.
package lexicon

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexicon is an ordered, immutable list of recognized skill labels.
// Label order is significant: position i of every vector built against a
// lexicon corresponds to Label(i). Changing the label set invalidates all
// previously computed vectors.
type Lexicon struct {
	labels  []string
	lowered []string
	index   map[string]int
}

// New builds a lexicon from the given labels. Labels are deduplicated
// case-insensitively, keeping the first occurrence and its original casing.
// Blank labels are dropped.
func New(labels ...string) *Lexicon {
	lex := &Lexicon{
		index: make(map[string]int, len(labels)),
	}
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		lower := strings.ToLower(label)
		if _, seen := lex.index[lower]; seen {
			continue
		}
		lex.index[lower] = len(lex.labels)
		lex.labels = append(lex.labels, label)
		lex.lowered = append(lex.lowered, lower)
	}
	return lex
}

// Len returns the vector dimension defined by this lexicon.
func (l *Lexicon) Len() int {
	return len(l.labels)
}

// Label returns the label at position i.
func (l *Lexicon) Label(i int) string {
	return l.labels[i]
}

// Labels returns a copy of the ordered label list.
func (l *Lexicon) Labels() []string {
	out := make([]string, len(l.labels))
	copy(out, l.labels)
	return out
}

// Index returns the vector position of a label (case-insensitive) and
// whether the label is part of the vocabulary.
func (l *Lexicon) Index(label string) (int, bool) {
	i, ok := l.index[strings.ToLower(strings.TrimSpace(label))]
	return i, ok
}

// Match returns the labels whose whole-word occurrence is found in text,
// in lexicon order. Matching is case-insensitive.
func (l *Lexicon) Match(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	var found []string
	for i, needle := range l.lowered {
		if ContainsWord(lower, needle) {
			found = append(found, l.labels[i])
		}
	}
	return found
}

// ContainsWord reports whether needle occurs in text as a whole word.
// Both arguments are expected to be lowercased already. A match is rejected
// when a needle edge that is itself a word character touches another word
// character in text, so "go" never matches inside "golang" while labels with
// symbolic edges such as "c++" or "c#" still match before a space.
func ContainsWord(text, needle string) bool {
	if needle == "" {
		return false
	}
	for start := 0; ; {
		i := strings.Index(text[start:], needle)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(needle)
		if boundaryBefore(text, i, needle) && boundaryAfter(text, end, needle) {
			return true
		}
		start = i + 1
	}
}

func boundaryBefore(text string, i int, needle string) bool {
	first, _ := utf8.DecodeRuneInString(needle)
	if !isWordRune(first) {
		return true
	}
	if i == 0 {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(prev)
}

func boundaryAfter(text string, end int, needle string) bool {
	last, _ := utf8.DecodeLastRuneInString(needle)
	if !isWordRune(last) {
		return true
	}
	if end >= len(text) {
		return true
	}
	next, _ := utf8.DecodeRuneInString(text[end:])
	return !isWordRune(next)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
