// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/abdulmukhitx/resume-matcher/internal/types"
)

const (
	// maxSkillsToShow bounds skill lists in formatted output
	maxSkillsToShow = 10
)

// Printer handles formatted output for verbose mode.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// PrintProfile outputs a human-readable summary of a resume profile.
func (p *Printer) PrintProfile(profile *types.ResumeProfile) {
	if profile == nil {
		return
	}

	fmt.Fprintf(p.out, "Profession:     %s\n", profile.Profession)
	fmt.Fprintf(p.out, "Level:          %s (%d years)\n", profile.Level, profile.YearsOfExperience)
	if profile.Specialization != "" {
		fmt.Fprintf(p.out, "Specialization: %s\n", profile.Specialization)
	}
	fmt.Fprintf(p.out, "Confidence:     %.2f\n", profile.Confidence)
	fmt.Fprintf(p.out, "Skills:         %s\n", joinCapped(profile.Skills, maxSkillsToShow))
}

// PrintMatches outputs the ranked match list, one block per job.
func (p *Printer) PrintMatches(results []*types.MatchResult) {
	if len(results) == 0 {
		fmt.Fprintln(p.out, "No matches above the minimum score.")
		return
	}

	for i, r := range results {
		title := r.JobTitle
		if r.Company != "" {
			title = fmt.Sprintf("%s (%s)", r.JobTitle, r.Company)
		}
		fmt.Fprintf(p.out, "%2d. %-50s %5.1f%%\n", i+1, truncate(title, 50), r.MatchScore)
		fmt.Fprintf(p.out, "    core %.0f | stack %.0f | experience %.0f | specialization %.0f\n",
			r.Breakdown.CoreSkills, r.Breakdown.TechStack, r.Breakdown.Experience, r.Breakdown.Specialization)
		if len(r.MatchingSkills) > 0 {
			fmt.Fprintf(p.out, "    matched: %s\n", joinCapped(r.MatchingSkills, maxSkillsToShow))
		}
		if len(r.MissingSkills) > 0 {
			fmt.Fprintf(p.out, "    missing: %s\n", joinCapped(r.MissingSkills, maxSkillsToShow))
		}
	}
}

// PrintQueries outputs generated search queries in order.
func (p *Printer) PrintQueries(queries []string) {
	for i, q := range queries {
		fmt.Fprintf(p.out, "%2d. %s\n", i+1, q)
	}
}

func joinCapped(items []string, max int) string {
	if len(items) <= max {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s ... and %d more", strings.Join(items[:max], ", "), len(items)-max)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
