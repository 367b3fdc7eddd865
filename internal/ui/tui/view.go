package tui

import (
	"fmt"
	"strings"
	"time"
)

// maxResourceRows caps the declared resources listed below the phases.
const maxResourceRows = 8

func renderView(m Model) string {
	var b strings.Builder

	renderHeader(&b, m)
	renderProgressBar(&b, m)
	renderPhases(&b, m)
	renderResources(&b, m)
	if len(m.Warnings) > 0 {
		renderWarnings(&b, m)
	}
	renderFooter(&b, m)

	return b.String()
}

func renderHeader(b *strings.Builder, m Model) {
	title := fmt.Sprintf("cloudbase: %s", m.StackName)
	if m.Region != "" {
		title += fmt.Sprintf(" (%s)", m.Region)
	}
	b.WriteString(headingStyle.Render(title))

	status := " "
	switch {
	case m.Err != nil:
		status += failedStyle.Render(fmt.Sprintf("Error: %v", m.Err))
	case m.Done:
		status += synthesizedStyle.Render("Synthesized")
	default:
		status += declaringStyle.Render(currentSpinner(m.SpinnerFrame) + " Declaring")
	}
	b.WriteString(status)
	b.WriteString("\n")
}

func renderProgressBar(b *strings.Builder, m Model) {
	progress := calculateProgress(m)
	barWidth := 40
	if m.Width > 0 && m.Width < 80 {
		barWidth = m.Width - 30
		if barWidth < 10 {
			barWidth = 10
		}
	}
	filled := int(float64(barWidth) * progress)
	if filled > barWidth {
		filled = barWidth
	}

	fill := declaredStyle
	if m.Done {
		fill = synthesizedStyle
	}
	bar := fill.Render(strings.Repeat(barFilled, filled)) +
		mutedStyle.Render(strings.Repeat(barEmpty, barWidth-filled))

	fmt.Fprintf(b, "  %s %d%%\n", bar, int(progress*100))
}

func renderPhases(b *strings.Builder, m Model) {
	b.WriteString(sectionStyle.Render("  Phases"))
	b.WriteString("\n")

	for _, phase := range m.Phases {
		icon, style := stateOf(phase).mark(m.SpinnerFrame)

		extra := ""
		if phase.Resources > 0 {
			extra = mutedStyle.Render(fmt.Sprintf("%d declared", phase.Resources))
		}
		if phase.Err != nil {
			extra = failedStyle.Render(phase.Err.Error())
		}
		fmt.Fprintf(b, "    %s %-20s %s\n", style.Render(icon), style.Render(phase.Name), extra)
	}
}

func renderResources(b *strings.Builder, m Model) {
	if len(m.Resources) == 0 {
		return
	}

	b.WriteString(sectionStyle.Render("  Resources"))
	b.WriteString("\n")

	start := 0
	if len(m.Resources) > maxResourceRows {
		start = len(m.Resources) - maxResourceRows
		fmt.Fprintf(b, "    %s\n", mutedStyle.Render(fmt.Sprintf("... %d earlier", start)))
	}
	for _, r := range m.Resources[start:] {
		fmt.Fprintf(b, "    %s %-16s %s\n", declaredStyle.Render(markDeclared), r.ID, mutedStyle.Render(r.Type))
	}
}

func renderWarnings(b *strings.Builder, m Model) {
	b.WriteString(sectionStyle.Render("  Warnings"))
	b.WriteString("\n")

	for _, w := range m.Warnings {
		fmt.Fprintf(b, "    %s [%s] %s\n", warningStyle.Render(markWarning), w.Field, mutedStyle.Render(w.Message))
	}
}

func renderFooter(b *strings.Builder, m Model) {
	parts := []string{fmt.Sprintf("elapsed: %s", formatDuration(time.Since(m.StartTime)))}
	if m.Dir != "" {
		parts = append(parts, fmt.Sprintf("assembly: %s", m.Dir))
	}
	b.WriteString(footerStyle.Render(fmt.Sprintf("  %s  |  q: quit", strings.Join(parts, "  |  "))))
	b.WriteString("\n")
}

func currentSpinner(frame int) string {
	if frame < 0 {
		frame = -frame
	}
	return spinnerFrames[frame%len(spinnerFrames)]
}

// calculateProgress weights every phase equally. Synthesis itself counts as
// one more step.
func calculateProgress(m Model) float64 {
	if m.Done {
		return 1.0
	}
	if len(m.Phases) == 0 {
		return 0
	}

	done := 0
	for _, p := range m.Phases {
		if p.Done {
			done++
		}
	}
	return float64(done) / float64(len(m.Phases)+1)
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}
