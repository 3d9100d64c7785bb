package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/groundtrack/runcheck/internal/domain"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	faintStyle  = lipgloss.NewStyle().Foreground(faint)
	passStyle   = lipgloss.NewStyle().Bold(true).Foreground(success)
	failStyle   = lipgloss.NewStyle().Bold(true).Foreground(danger)
	bulletStyle = lipgloss.NewStyle().Foreground(danger)
	pathStyle   = lipgloss.NewStyle().Foreground(fg)
	reasonStyle = lipgloss.NewStyle().Foreground(dim)
	hintStyle   = lipgloss.NewStyle().Foreground(dim).Italic(true)
)

// RenderReport renders a validation report as a styled TUI string.
func RenderReport(report *domain.Report) string {
	var b strings.Builder

	// Header
	status := passStyle.Render("PASS")
	if !report.Valid() {
		status = failStyle.Render(fmt.Sprintf("FAIL  %d violation(s)", len(report.Violations)))
	}
	header := titleStyle.Render("runcheck") + "  " + status
	sub := dimStyle.Render(report.ConfigFile)
	if report.CommitHash != "" {
		sub += "\n" + faintStyle.Render("commit "+shortHash(report.CommitHash))
	}
	b.WriteString(boxStyle.Render(header + "\n" + sub))
	b.WriteString("\n")

	for _, viol := range report.Violations {
		b.WriteString(renderViolation(viol))
	}

	if !report.Valid() {
		b.WriteString("\n")
		b.WriteString("  " + hintStyle.Render("Fix the run configuration and re-run before submitting the job."))
		b.WriteString("\n")
	}

	return b.String()
}

func renderViolation(viol domain.Violation) string {
	line := fmt.Sprintf("  %s %s  %s",
		bulletStyle.Render("●"),
		pathStyle.Render(viol.Path),
		reasonStyle.Render(viol.Reason),
	)

	switch {
	case len(viol.Allowed) > 0:
		line += "\n    " + faintStyle.Render(fmt.Sprintf("allowed: %s  got: %s",
			strings.Join(viol.Allowed, ", "), viol.Actual))
	case viol.Expected != "":
		line += "\n    " + faintStyle.Render(fmt.Sprintf("expected: %s  got: %s",
			viol.Expected, viol.Actual))
	}
	if viol.Hint != "" {
		line += "\n    " + hintStyle.Render(viol.Hint)
	}

	return line + "\n"
}

// RenderSchema renders a schema tree as an indented listing.
func RenderSchema(schema domain.SchemaNode) string {
	var b strings.Builder
	schema.Walk(func(path string, node *domain.SchemaNode) {
		depth := strings.Count(path, ".") + strings.Count(path, "[")
		indent := strings.Repeat("  ", depth)

		label := node.Name
		if strings.HasSuffix(path, "[]") {
			label = "[]"
		}

		detail := string(node.Kind)
		if node.Required {
			detail += ", required"
		}
		if len(node.AllowedValues) > 0 {
			detail += ", one of " + strings.Join(node.AllowedValues, "|")
		}
		if node.MinItems > 0 {
			detail += fmt.Sprintf(", min %d", node.MinItems)
		}

		b.WriteString(fmt.Sprintf("%s%s  %s\n",
			indent,
			titleStyle.Render(label),
			dimStyle.Render("("+detail+")"),
		))
	})
	return b.String()
}

func shortHash(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
