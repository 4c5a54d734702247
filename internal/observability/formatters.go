// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/wanjiru/huduma-guide/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
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

// PrintProfile outputs a human-readable summary of a resolved profile.
func (p *Printer) PrintProfile(profile *types.ServiceProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Service:  %s\n", profile.ServiceName))
	sb.WriteString(fmt.Sprintf("County:   %s\n", profile.County))
	sb.WriteString(fmt.Sprintf("Office:   %s\n", profile.Location.Office))
	sb.WriteString(fmt.Sprintf("Address:  %s\n", profile.Location.Address))
	sb.WriteString(fmt.Sprintf("Cost:     %s\n", profile.Cost.Amount))
	sb.WriteString(fmt.Sprintf("Time:     %s\n", profile.ProcessingTime.Standard))
	sb.WriteString("\n")

	if len(profile.RequiredDocuments.Items) > 0 {
		sb.WriteString("Required Documents:\n")
		count := min(len(profile.RequiredDocuments.Items), maxItemsToShow)
		for i := 0; i < count; i++ {
			doc := profile.RequiredDocuments.Items[i]
			sb.WriteString(fmt.Sprintf("  • %s", doc.Name))
			if !doc.Required {
				sb.WriteString(" (optional)")
			}
			sb.WriteString("\n")
		}
		if len(profile.RequiredDocuments.Items) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.RequiredDocuments.Items)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(profile.ProcessSteps.Steps) > 0 {
		sb.WriteString("Steps:\n")
		count := min(len(profile.ProcessSteps.Steps), 3)
		for i := 0; i < count; i++ {
			step := profile.ProcessSteps.Steps[i]
			sb.WriteString(fmt.Sprintf("  %d. %s\n", step.Step, step.Title))
		}
		if len(profile.ProcessSteps.Steps) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.ProcessSteps.Steps)-3))
		}
	}

	p.printBox("SERVICE PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintVerdict outputs the eligibility verdict with its conditions.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintVerdict(verdict *types.EligibilityVerdict) {
	if verdict == nil {
		return
	}

	if verdict.Status == types.StatusEligible && len(verdict.Conditions) == 1 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ELIGIBLE")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Status: %s\n\n", statusLabel(verdict.Status)))

	for i, c := range verdict.Conditions {
		if len(c) > 45 {
			c = c[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", c))
		if i < len(verdict.Conditions)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("ELIGIBILITY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExplanation outputs the decision explanation.
func (p *Printer) PrintExplanation(explanation *types.DecisionExplanation) {
	if explanation == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Rule:   %s\n", explanation.Rule))
	sb.WriteString(fmt.Sprintf("Source: %s\n", explanation.Source))
	sb.WriteString("\n")
	for _, factor := range explanation.Factors {
		sb.WriteString(fmt.Sprintf("  • %s\n", factor))
	}

	p.printBox("DECISION EXPLANATION", strings.TrimSuffix(sb.String(), "\n"))
}

func statusLabel(status types.EligibilityStatus) string {
	switch status {
	case types.StatusEligible:
		return "Eligible"
	case types.StatusConditionallyEligible:
		return "Conditionally eligible"
	case types.StatusNotEligible:
		return "Not eligible"
	default:
		return string(status)
	}
}
