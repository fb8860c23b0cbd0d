// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/progracyd/capstone-matcher/internal/classify"
	"github.com/progracyd/capstone-matcher/internal/lexicon"
	"github.com/progracyd/capstone-matcher/internal/recommend"
	"github.com/progracyd/capstone-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxSkillsToShow caps how many skills a strength-map box lists
	maxSkillsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintStrengthMap outputs the classified skills for one source text,
// strongest first.
func (p *Printer) PrintStrengthMap(source string, strengths classify.StrengthMap) {
	var sb strings.Builder

	if len(strengths) == 0 {
		sb.WriteString("(no recognized skills)")
		p.printBox("Skills: "+source, sb.String())
		return
	}

	type entry struct {
		skill string
		level int
	}
	entries := make([]entry, 0, len(strengths))
	for skill, level := range strengths {
		entries = append(entries, entry{skill, level})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].level != entries[j].level {
			return entries[i].level > entries[j].level
		}
		return entries[i].skill < entries[j].skill
	})

	shown := entries
	if len(shown) > maxSkillsToShow {
		shown = shown[:maxSkillsToShow]
	}
	for _, e := range shown {
		sb.WriteString(fmt.Sprintf("%-24s level %d\n", e.skill, e.level))
	}
	if len(entries) > maxSkillsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more", len(entries)-maxSkillsToShow))
	}

	p.printBox("Skills: "+source, strings.TrimRight(sb.String(), "\n"))
}

// PrintTeamProfile outputs a team's aggregate skill profile: member count
// and the strongest aggregate dimensions by label.
func (p *Printer) PrintTeamProfile(lex *lexicon.Lexicon, profile *recommend.TeamProfile) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("members: %d\n", len(profile.Members)))

	type dim struct {
		label string
		value float64
	}
	var dims []dim
	for i, v := range profile.Aggregate {
		if v > 0 {
			dims = append(dims, dim{lex.Label(i), v})
		}
	}
	sort.Slice(dims, func(i, j int) bool {
		if dims[i].value != dims[j].value {
			return dims[i].value > dims[j].value
		}
		return dims[i].label < dims[j].label
	})

	shown := dims
	if len(shown) > maxSkillsToShow {
		shown = shown[:maxSkillsToShow]
	}
	for _, d := range shown {
		sb.WriteString(fmt.Sprintf("%-24s %.2f\n", d.label, d.value))
	}
	if len(dims) > maxSkillsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more", len(dims)-maxSkillsToShow))
	}

	p.printBox(fmt.Sprintf("Group %d profile", profile.ID),
		strings.TrimRight(sb.String(), "\n"))
}

// PrintRecommendations outputs the ranked list for one team.
func (p *Printer) PrintRecommendations(groupID int64, recs []types.Recommendation) {
	var sb strings.Builder

	if len(recs) == 0 {
		sb.WriteString("(no eligible projects)")
	}
	for _, rec := range recs {
		title := rec.ProjectTitle
		if len(title) > 26 {
			title = title[:23] + "..."
		}
		sb.WriteString(fmt.Sprintf("%d. %-26s %.4f (m %.4f / c %.4f)\n",
			rec.Rank, title, rec.FinalScore, rec.MatchScore, rec.ComplementarityScore))
	}

	p.printBox(fmt.Sprintf("Recommendations for group %d", groupID),
		strings.TrimRight(sb.String(), "\n"))
}
