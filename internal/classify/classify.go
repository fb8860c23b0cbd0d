// Package classify converts free-text skill descriptions into per-skill
// strength ratings against a fixed lexicon.
package classify

import (
	"regexp"
	"strings"

	"github.com/progracyd/capstone-matcher/internal/lexicon"
)

// StrengthMap maps a lexicon skill label to a strength level in [1,5].
type StrengthMap map[string]int

// Strength levels expressed by intensity modifiers.
const (
	LevelMin = 1
	LevelMax = 5

	// defaultLevel is assigned to a skill mentioned with no preceding
	// intensity modifier in its sentence (a bare mention).
	defaultLevel = 2
)

// DefaultTiers maps strength levels to the intensity-modifier keywords that
// express them. Keywords are matched whole-word and case-insensitively.
func DefaultTiers() map[int][]string {
	return map[int][]string{
		5: {"expert", "mastered", "advanced"},
		4: {"skilled", "proficient", "strong", "well-versed"},
		3: {"experience", "hands-on", "practical", "used"},
		2: {"basic", "familiar", "learning", "knowledge of"},
		1: {"understanding", "know", "aware of"},
	}
}

// Sentence boundaries: sentence-terminal period (ASCII and CJK) and line
// breaks. Decimal numbers and abbreviations are split too; that is a known
// limitation of the format, not worth a tokenizer.
var sentenceSplitter = regexp.MustCompile(`[.\x{3002}\n]`)

// Clause boundaries within a sentence: commas, semicolons and the
// conjunction "and".
var clauseSplitter = regexp.MustCompile(`[;,]|\band\b`)

// Classifier derives strength maps from free text. The lexicon and the
// intensity tiers are injected data; both are read-only after construction,
// so a Classifier is safe for concurrent use.
type Classifier struct {
	lex   *lexicon.Lexicon
	tiers []tier
}

type tier struct {
	level    int
	keywords []string // lowercased
}

// New creates a classifier over lex using the default intensity tiers.
func New(lex *lexicon.Lexicon) *Classifier {
	return NewWithTiers(lex, DefaultTiers())
}

// NewWithTiers creates a classifier with a custom modifier vocabulary.
// Tiers outside [LevelMin, LevelMax] are ignored.
func NewWithTiers(lex *lexicon.Lexicon, tiers map[int][]string) *Classifier {
	c := &Classifier{lex: lex}
	for level := LevelMax; level >= LevelMin; level-- {
		keywords := tiers[level]
		if len(keywords) == 0 {
			continue
		}
		lowered := make([]string, 0, len(keywords))
		for _, kw := range keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				lowered = append(lowered, kw)
			}
		}
		c.tiers = append(c.tiers, tier{level: level, keywords: lowered})
	}
	return c
}

// Classify analyzes text and returns the strength level for every lexicon
// skill the text mentions. Empty or blank text yields an empty map. Skills
// outside the lexicon are ignored; a skill mentioned more than once keeps
// the highest level observed.
func (c *Classifier) Classify(text string) StrengthMap {
	rating := make(StrengthMap)
	if strings.TrimSpace(text) == "" {
		return rating
	}
	lower := strings.ToLower(text)

	for _, sentence := range sentenceSplitter.Split(lower, -1) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}

		// Intensity carries forward across clauses of one sentence;
		// it never crosses a sentence boundary.
		currentLevel := 0

		for _, clause := range clauseSplitter.Split(sentence, -1) {
			clause = strings.TrimSpace(clause)
			if clause == "" {
				continue
			}

			if level, ok := c.intensityOf(clause); ok {
				currentLevel = level
			}

			for _, skill := range c.lex.Match(clause) {
				level := currentLevel
				if level == 0 {
					level = defaultLevel
				}
				if level > rating[skill] {
					rating[skill] = level
				}
			}
		}
	}
	return rating
}

// intensityOf scans a clause for modifier keywords. When keywords from
// several tiers appear in one clause, the lowest tier wins (tiers are
// scanned high to low and each hit overrides the previous one).
func (c *Classifier) intensityOf(clause string) (int, bool) {
	level, found := 0, false
	for _, t := range c.tiers {
		for _, kw := range t.keywords {
			if lexicon.ContainsWord(clause, kw) {
				level = t.level
				found = true
				break
			}
		}
	}
	return level, found
}
