package tui

import "github.com/charmbracelet/lipgloss"

// Palette keyed to the states a synth run moves through.
var (
	colorDeclared    = lipgloss.AdaptiveColor{Light: "#0f766e", Dark: "#2dd4bf"}
	colorSynthesized = lipgloss.AdaptiveColor{Light: "#6d28d9", Dark: "#a78bfa"}
	colorWarning     = lipgloss.AdaptiveColor{Light: "#b45309", Dark: "#ff9900"}
	colorFailed      = lipgloss.AdaptiveColor{Light: "#be123c", Dark: "#fb7185"}
	colorHeading     = lipgloss.AdaptiveColor{Light: "#232f3e", Dark: "#e2e8f0"}
	colorMuted       = lipgloss.AdaptiveColor{Light: "#64748b", Dark: "#94a3b8"}
)

var (
	headingStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorHeading)
	sectionStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorHeading).Underline(true).MarginTop(1)
	declaredStyle    = lipgloss.NewStyle().Foreground(colorDeclared)
	declaringStyle   = lipgloss.NewStyle().Foreground(colorDeclared).Bold(true)
	synthesizedStyle = lipgloss.NewStyle().Foreground(colorSynthesized).Bold(true)
	warningStyle     = lipgloss.NewStyle().Foreground(colorWarning)
	failedStyle      = lipgloss.NewStyle().Foreground(colorFailed)
	mutedStyle       = lipgloss.NewStyle().Foreground(colorMuted)
	footerStyle      = mutedStyle.MarginTop(1)
)

const (
	markPending  = "[ ]"
	markDeclared = "[+]"
	markWarning  = "[!]"
	markFailed   = "[x]"

	barFilled = "■"
	barEmpty  = "·"
)

var spinnerFrames = []string{"[-]", "[\\]", "[|]", "[/]"}

// phaseState is where a declaring phase stands.
type phaseState int

const (
	statePending phaseState = iota
	stateDeclaring
	stateDeclared
	stateFailed
)

func stateOf(p Phase) phaseState {
	switch {
	case p.Err != nil:
		return stateFailed
	case p.Done:
		return stateDeclared
	case p.Active:
		return stateDeclaring
	default:
		return statePending
	}
}

// mark returns the phase marker and the style its row is drawn in.
func (s phaseState) mark(frame int) (string, lipgloss.Style) {
	switch s {
	case stateFailed:
		return markFailed, failedStyle
	case stateDeclared:
		return markDeclared, declaredStyle
	case stateDeclaring:
		return currentSpinner(frame), declaringStyle
	default:
		return markPending, mutedStyle
	}
}
