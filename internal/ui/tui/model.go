package tui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrInterrupted is returned when the user quits before synthesis finished.
var ErrInterrupted = errors.New("synthesis interrupted")

// Phase is a provisioning phase for display.
type Phase struct {
	Name      string
	Done      bool
	Active    bool
	Err       error
	Resources int
}

// Resource is a declared construct.
type Resource struct {
	Phase string
	Type  string
	ID    string
}

// Model is the Bubble Tea model for the synthesis view.
type Model struct {
	// Stack info
	StackName string
	Region    string

	Phases    []Phase
	Resources []Resource
	Warnings  []WarningMsg

	StartTime time.Time

	// Animation
	SpinnerFrame int

	// UI state
	Width  int
	Height int
	Dir    string
	Err    error
	Done   bool
}

// NewSynthModel creates a model tracking the given phases in execution order.
func NewSynthModel(stackName, region string, phases []string) Model {
	m := Model{
		StackName: stackName,
		Region:    region,
		StartTime: time.Now(),
		Phases:    make([]Phase, len(phases)),
	}
	for i, name := range phases {
		m.Phases[i] = Phase{Name: name}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if !m.Done && m.Err == nil {
				m.Err = ErrInterrupted
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case PhaseMsg:
		m.updatePhase(msg)

	case ResourceMsg:
		m.Resources = append(m.Resources, Resource(msg))
		if i := m.phaseIndex(msg.Phase); i >= 0 {
			m.Phases[i].Resources++
		}

	case WarningMsg:
		m.Warnings = append(m.Warnings, msg)

	case TickMsg:
		m.SpinnerFrame++
		return m, tickCmd()

	case ErrMsg:
		m.Err = msg.Err
		return m, tea.Quit

	case DoneMsg:
		m.Done = true
		m.Dir = msg.Dir
		for i := range m.Phases {
			if m.Phases[i].Err == nil {
				m.Phases[i].Done = true
				m.Phases[i].Active = false
			}
		}
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) phaseIndex(name string) int {
	for i, phase := range m.Phases {
		if phase.Name == name {
			return i
		}
	}
	return -1
}

func (m *Model) updatePhase(msg PhaseMsg) {
	idx := m.phaseIndex(msg.Phase)
	if idx < 0 {
		return
	}

	// Phases run in order
	for i := 0; i < idx; i++ {
		if m.Phases[i].Err == nil {
			m.Phases[i].Done = true
		}
		m.Phases[i].Active = false
	}

	switch {
	case msg.Err != nil:
		m.Phases[idx].Err = msg.Err
		m.Phases[idx].Active = false
	case msg.Done:
		m.Phases[idx].Done = true
		m.Phases[idx].Active = false
	default:
		m.Phases[idx].Active = true
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}
