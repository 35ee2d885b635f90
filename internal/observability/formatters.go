// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/sponsor-match/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintPopulations outputs a summary of the two entity lists being matched.
func (p *Printer) PrintPopulations(ngos []types.Organization, corporates []types.Sponsor) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("NGOs:       %d\n", len(ngos)))
	for i, org := range ngos {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(ngos)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  %s (%s)\n", org.Name, org.ID))
	}

	sb.WriteString(fmt.Sprintf("Corporates: %d\n", len(corporates)))
	for i, sp := range corporates {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(corporates)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  %s (%s)\n", sp.Name, sp.ID))
	}

	p.printBox("POPULATIONS", sb.String())
}

// PrintMatches outputs a human-readable summary of the matched pairs.
func (p *Printer) PrintMatches(pairs []types.MatchPair) {
	if len(pairs) == 0 {
		p.printBox("MATCHES", "No pairs matched.")
		return
	}

	var sb strings.Builder
	total := 0.0
	for i, pair := range pairs {
		total += pair.MatchScore
		if i == maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(pairs)-maxItemsToShow))
		}
		if i >= maxItemsToShow {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s ↔ %s  %.4f\n", pair.NGOName, pair.CorporateName, pair.MatchScore))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Pairs:       %d\n", len(pairs)))
	sb.WriteString(fmt.Sprintf("Total score: %.4f\n", total))

	p.printBox("MATCHES", sb.String())
}
