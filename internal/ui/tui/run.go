package tui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abcbcafe/cloud-base/internal/provisioning"
)

// SynthFunc synthesizes the stack reporting to obs and returns the cloud
// assembly directory.
type SynthFunc func(obs provisioning.Observer) (string, error)

// RunSynthTUI runs synth in the background and renders its progress on
// stderr until it finishes or the user quits.
func RunSynthTUI(ctx context.Context, synth SynthFunc, stackName, region string, phases []string) error {
	m := NewSynthModel(stackName, region, phases)

	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithOutput(os.Stderr))

	go func() {
		dir, err := synth(NewObserver(p.Send))
		if err != nil {
			p.Send(ErrMsg{Err: err})
			return
		}
		p.Send(DoneMsg{Dir: dir})
	}()

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	fm := finalModel.(Model)
	if fm.Err != nil {
		return fm.Err
	}
	return nil
}
