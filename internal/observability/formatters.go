// Package observability provides formatted output utilities for the CLI
// commands' verbose mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/textsmith/internal/bullets"
	"github.com/jonathan/textsmith/internal/story"
	"github.com/jonathan/textsmith/internal/summarize"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// wrapWidth is where long content lines wrap inside a box
	wrapWidth = boxWidth - 4
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
		for _, wrapped := range wrapLine(line, wrapWidth) {
			fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, wrapped)
		}
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSummary outputs a summarization result with its statistics.
func (p *Printer) PrintSummary(result *summarize.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(result.Summary)
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Original:   %d words\n", result.OriginalWords))
	sb.WriteString(fmt.Sprintf("Summary:    %d words\n", result.SummaryWords))
	sb.WriteString(fmt.Sprintf("Time:       %.2fs", result.ProcessingSeconds))

	p.printBox("Summary", sb.String())
}

// PrintStory outputs the prompt and the generated narrative.
func (p *Printer) PrintStory(prompt, narrative string) {
	p.printBox("Prompt", prompt)
	p.printBox("Story", narrative)
}

// PrintBullets outputs generated bullets grouped by skill.
func (p *Printer) PrintBullets(result *bullets.Result) {
	if result == nil {
		return
	}

	var sb strings.Builder
	for i, sk := range result.Skills {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(sk.Skill)
		sb.WriteString("\n")
		for _, bullet := range sk.Bullets {
			sb.WriteString(fmt.Sprintf("  • %s\n", bullet))
		}
	}

	p.printBox("Resume Bullets", strings.TrimRight(sb.String(), "\n"))
}

// PrintStorySuggestions lists guided story starters.
func (p *Printer) PrintStorySuggestions(suggestions []story.Suggestion) {
	var sb strings.Builder
	for i, s := range suggestions {
		sb.WriteString(fmt.Sprintf("%d. %s: %s in %s must %s\n", i+1, s.Genre, s.Character, s.Setting, s.Conflict))
	}
	p.printBox("Story Suggestions", strings.TrimRight(sb.String(), "\n"))
}

// PrintSkillSuggestions lists common skills grouped by industry.
func (p *Printer) PrintSkillSuggestions(suggestions []bullets.IndustrySkills) {
	var sb strings.Builder
	for i, is := range suggestions {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(is.Industry)
		sb.WriteString("\n")
		for _, skill := range is.Skills {
			sb.WriteString(fmt.Sprintf("  • %s\n", skill))
		}
	}
	p.printBox("Skill Suggestions", strings.TrimRight(sb.String(), "\n"))
}

// wrapLine wraps a line at word boundaries to fit width.
func wrapLine(line string, width int) []string {
	if len(line) <= width {
		return []string{line}
	}

	var out []string
	var current strings.Builder
	for _, word := range strings.Fields(line) {
		if current.Len() > 0 && current.Len()+len(word)+1 > width {
			out = append(out, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		// A single word longer than width is hard-cut
		for len(word) > width {
			out = append(out, word[:width])
			word = word[width:]
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		out = append(out, current.String())
	}
	if len(out) == 0 {
		out = []string{""}
	}
	return out
}
