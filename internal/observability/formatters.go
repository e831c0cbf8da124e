// Package observability provides formatted output utilities for the CLI's
// pretty mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-cards/internal/cards"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxEntriesToShow is the default number of entries to display in lists
	maxEntriesToShow = 8
)

// Printer handles formatted output for pretty mode
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

// PrintCards outputs a human-readable rendering of classified cards.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintCards(built []cards.Card) {
	if len(built) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO DISPLAYABLE CONTENT")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	for _, card := range built {
		title := fmt.Sprintf("%s  [%s, %s]", card.Title, card.Kind, card.Width)
		p.printBox(title, strings.TrimSuffix(p.cardBody(card), "\n"))
	}
}

// cardBody renders one card's fields, items, and entries.
func (p *Printer) cardBody(card cards.Card) string {
	var sb strings.Builder

	for _, field := range card.Fields {
		if field.Label != "" {
			sb.WriteString(fmt.Sprintf("%s: %s\n", field.Label, field.Value))
		} else {
			sb.WriteString(field.Value + "\n")
		}
	}

	for i, item := range card.Items {
		if item.Title != "" {
			sb.WriteString(item.Title)
			if item.Subtitle != "" {
				sb.WriteString(" — " + item.Subtitle)
			}
			sb.WriteString("\n")
		} else if item.Subtitle != "" {
			sb.WriteString(item.Subtitle + "\n")
		}
		if item.Date != "" {
			sb.WriteString("  " + item.Date + "\n")
		}
		if item.Summary != "" {
			sb.WriteString("  " + item.Summary + "\n")
		}
		for _, field := range item.Fields {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", field.Label, field.Value))
		}
		for _, list := range item.Lists {
			sb.WriteString("  " + list.Label + ":\n")
			writeEntries(&sb, "    ", list.Entries)
		}
		if i < len(card.Items)-1 {
			sb.WriteString("\n")
		}
	}

	writeEntries(&sb, "", card.Entries)

	if sb.Len() == 0 {
		sb.WriteString("(empty)\n")
	}
	return sb.String()
}

// writeEntries writes bulleted entries, eliding past the display cap.
func writeEntries(sb *strings.Builder, indent string, entries []string) {
	count := min(len(entries), maxEntriesToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("%s• %s\n", indent, entries[i]))
	}
	if len(entries) > maxEntriesToShow {
		sb.WriteString(fmt.Sprintf("%s... and %d more\n", indent, len(entries)-maxEntriesToShow))
	}
}
