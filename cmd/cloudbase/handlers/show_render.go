package handlers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abcbcafe/cloud-base/internal/assembly"
)

var (
	showColorGreen = lipgloss.Color("#22c55e")
	showColorRed   = lipgloss.Color("#ef4444")
	showColorBlue  = lipgloss.Color("#3b82f6")
	showColorDim   = lipgloss.Color("#6b7280")
	showColorWhite = lipgloss.Color("#f9fafb")
)

var (
	showTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(showColorWhite)

	showSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(showColorBlue)

	showDimStyle = lipgloss.NewStyle().
			Foreground(showColorDim)

	showGreenStyle = lipgloss.NewStyle().
			Foreground(showColorGreen)

	showRedStyle = lipgloss.NewStyle().
			Foreground(showColorRed)
)

// renderSummary produces a lipgloss-styled resource summary string.
func renderSummary(s assembly.Summary) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(showTitleStyle.Render(fmt.Sprintf("  cloudbase stack: %s", s.Stack)))
	b.WriteString("\n")
	b.WriteString(showDimStyle.Render("  " + strings.Repeat("═", 30)))
	b.WriteString("\n")
	if s.Description != "" {
		b.WriteString(showDimStyle.Render("  " + s.Description))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString("  Termination protection: ")
	b.WriteString(protectionLabel(s.TerminationProtection, true))
	b.WriteString("\n\n")

	b.WriteString(showSectionStyle.Render("  Resources"))
	b.WriteString("\n")
	b.WriteString(showDimStyle.Render("  " + strings.Repeat("─", 50)))
	b.WriteString("\n")
	b.WriteString(showDimStyle.Render(fmt.Sprintf("  %-42s %6s", "Type", "Count")))
	b.WriteString("\n")
	for _, rc := range s.Resources {
		fmt.Fprintf(&b, "  %-42s %6d\n", rc.Type, rc.Count)
	}
	b.WriteString(showDimStyle.Render("  " + strings.Repeat("─", 50)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %-42s %6d\n", "Total", s.Total)

	return b.String()
}

// renderPlainSummary renders the summary without styling for pipes and files.
func renderPlainSummary(s assembly.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Stack: %s\n", s.Stack)
	fmt.Fprintf(&b, "Termination protection: %s\n", protectionLabel(s.TerminationProtection, false))
	for _, rc := range s.Resources {
		fmt.Fprintf(&b, "%-42s %6d\n", rc.Type, rc.Count)
	}
	fmt.Fprintf(&b, "%-42s %6d\n", "Total", s.Total)

	return b.String()
}

func protectionLabel(enabled, styled bool) string {
	label := "disabled"
	style := showRedStyle
	if enabled {
		label = "enabled"
		style = showGreenStyle
	}
	if !styled {
		return label
	}
	return style.Render(label)
}
