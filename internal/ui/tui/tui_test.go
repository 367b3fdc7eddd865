package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abcbcafe/cloud-base/internal/provisioning"
)

var testPhases = []string{"validation", "infrastructure", "storage/primary", "compute", "storage/secondary"}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{250 * time.Millisecond, "250ms"},
		{30 * time.Second, "30s"},
		{90 * time.Second, "1m30s"},
		{3661 * time.Second, "1h1m"},
	}
	for _, tt := range tests {
		got := formatDuration(tt.d)
		if got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestCalculateProgress(t *testing.T) {
	m := NewSynthModel("General", "", testPhases)
	if p := calculateProgress(m); p != 0 {
		t.Errorf("expected 0, got %v", p)
	}

	m.Phases[0].Done = true
	m.Phases[1].Done = true
	expected := 2.0 / 6.0
	if p := calculateProgress(m); p < expected-0.01 || p > expected+0.01 {
		t.Errorf("expected ~%v, got %v", expected, p)
	}

	m.Done = true
	if p := calculateProgress(m); p != 1.0 {
		t.Errorf("expected 1.0, got %v", p)
	}
}

func TestModelUpdatePhase(t *testing.T) {
	m := NewSynthModel("General", "", testPhases)

	m, _ = update(t, m, PhaseMsg{Phase: "validation"})
	if !m.Phases[0].Active {
		t.Error("expected validation to be active")
	}

	m, _ = update(t, m, PhaseMsg{Phase: "validation", Done: true})
	if !m.Phases[0].Done || m.Phases[0].Active {
		t.Error("expected validation to be done and inactive")
	}

	// Starting a later phase completes the earlier ones
	m, _ = update(t, m, PhaseMsg{Phase: "compute"})
	if !m.Phases[1].Done || !m.Phases[2].Done {
		t.Error("expected infrastructure and storage/primary to be done")
	}
	if !m.Phases[3].Active {
		t.Error("expected compute to be active")
	}

	boom := errors.New("boom")
	m, cmd := update(t, m, PhaseMsg{Phase: "compute", Err: boom})
	if !errors.Is(m.Phases[3].Err, boom) {
		t.Errorf("expected compute error, got %v", m.Phases[3].Err)
	}
	if cmd != nil {
		t.Error("a failed phase alone must not quit")
	}

	// Unknown phases are ignored
	m, _ = update(t, m, PhaseMsg{Phase: "unknown", Done: true})
	if m.Phases[4].Done {
		t.Error("unknown phase must not change state")
	}
}

func TestModelResourcesAndWarnings(t *testing.T) {
	m := NewSynthModel("General", "", testPhases)

	m, _ = update(t, m, ResourceMsg{Phase: "infrastructure", Type: "VPC", ID: "GeneralVpc"})
	m, _ = update(t, m, ResourceMsg{Phase: "infrastructure", Type: "LogGroup", ID: "GeneralFargateLogGroup"})
	m, _ = update(t, m, WarningMsg{Field: "role", Message: "role is not attached"})

	if len(m.Resources) != 2 {
		t.Fatalf("expected 2 resources, got %d", len(m.Resources))
	}
	if m.Phases[1].Resources != 2 {
		t.Errorf("expected 2 resources on infrastructure, got %d", m.Phases[1].Resources)
	}
	if len(m.Warnings) != 1 {
		t.Errorf("expected 1 warning, got %d", len(m.Warnings))
	}
}

func TestModelDone(t *testing.T) {
	m := NewSynthModel("General", "", testPhases)

	m, cmd := update(t, m, DoneMsg{Dir: "/tmp/cdk.out"})
	if !m.Done || m.Dir != "/tmp/cdk.out" {
		t.Errorf("expected done with dir, got done=%v dir=%q", m.Done, m.Dir)
	}
	for _, p := range m.Phases {
		if !p.Done {
			t.Errorf("expected phase %s to be done", p.Name)
		}
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestModelErr(t *testing.T) {
	m := NewSynthModel("General", "", testPhases)
	boom := errors.New("boom")

	m, cmd := update(t, m, ErrMsg{Err: boom})
	if !errors.Is(m.Err, boom) {
		t.Errorf("expected boom, got %v", m.Err)
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewSynthModel("General", "", testPhases)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if !errors.Is(m.Err, ErrInterrupted) {
		t.Errorf("expected ErrInterrupted, got %v", m.Err)
	}
	if cmd == nil {
		t.Error("expected quit command")
	}

	done := NewSynthModel("General", "", testPhases)
	done.Done = true
	done, _ = update(t, done, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if done.Err != nil {
		t.Errorf("quitting after completion must not set an error, got %v", done.Err)
	}
}

func TestModelTick(t *testing.T) {
	m := NewSynthModel("General", "", testPhases)
	m, cmd := update(t, m, TickMsg{})
	if m.SpinnerFrame != 1 {
		t.Errorf("expected frame 1, got %d", m.SpinnerFrame)
	}
	if cmd == nil {
		t.Error("expected next tick")
	}
}

func TestRenderView(t *testing.T) {
	m := NewSynthModel("General", "eu-central-1", testPhases)
	m.Phases[0].Done = true
	m.Phases[1].Active = true
	m.Phases[1].Resources = 1
	m.Resources = []Resource{{Phase: "infrastructure", Type: "VPC", ID: "GeneralVpc"}}
	m.Warnings = []WarningMsg{{Field: "role", Message: "role is not attached"}}

	view := m.View()
	for _, want := range []string{
		"cloudbase: General (eu-central-1)",
		"Phases",
		"storage/secondary",
		"1 declared",
		"GeneralVpc",
		"Warnings",
		"[role] ",
		"q: quit",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestRenderView_Done(t *testing.T) {
	m := NewSynthModel("General", "", testPhases)
	m, _ = update(t, m, DoneMsg{Dir: "/tmp/cdk.out"})

	view := m.View()
	if !strings.Contains(view, "Synthesized") {
		t.Error("expected done status")
	}
	if !strings.Contains(view, "assembly: /tmp/cdk.out") {
		t.Error("expected assembly directory in footer")
	}
}

func TestRenderResources_Truncates(t *testing.T) {
	m := NewSynthModel("General", "", testPhases)
	for i := 0; i < maxResourceRows+3; i++ {
		m.Resources = append(m.Resources, Resource{Type: "T", ID: "R"})
	}

	var b strings.Builder
	renderResources(&b, m)
	if !strings.Contains(b.String(), "... 3 earlier") {
		t.Errorf("expected truncation marker, got %q", b.String())
	}
}

func TestObserver_TranslatesEvents(t *testing.T) {
	var msgs []tea.Msg
	obs := NewObserver(func(msg tea.Msg) { msgs = append(msgs, msg) })

	var o provisioning.Observer = obs
	o = o.WithFields(map[string]string{"stack": "General"})
	o.Printf("ignored %d", 1)

	provisioning.LogPhaseStart(o, "infrastructure (2/5)")
	provisioning.LogResourceDeclared(o, "infrastructure", "VPC", "GeneralVpc")
	provisioning.LogPhaseComplete(o, "infrastructure (2/5)", time.Second)
	provisioning.LogPhaseFailed(o, "compute (4/5)", errors.New("boom"))
	provisioning.LogValidationWarning(o, "role", "role is not attached")
	provisioning.LogResourceUpdated(o, "infrastructure", "SecurityGroup", "efsSg", "ingress added")

	want := []tea.Msg{
		PhaseMsg{Phase: "infrastructure"},
		ResourceMsg{Phase: "infrastructure", Type: "VPC", ID: "GeneralVpc"},
		PhaseMsg{Phase: "infrastructure", Done: true},
	}
	if len(msgs) != 5 {
		t.Fatalf("expected 5 messages, got %d: %#v", len(msgs), msgs)
	}
	for i, w := range want {
		if msgs[i] != w {
			t.Errorf("message %d = %#v, want %#v", i, msgs[i], w)
		}
	}

	failed, ok := msgs[3].(PhaseMsg)
	if !ok || failed.Phase != "compute" || failed.Err == nil || failed.Err.Error() != "boom" {
		t.Errorf("unexpected failure message %#v", msgs[3])
	}
	if msgs[4] != (WarningMsg{Field: "role", Message: "role is not attached"}) {
		t.Errorf("unexpected warning message %#v", msgs[4])
	}
}

func TestPhaseStateMarks(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{Phase{Name: "pending"}, markPending},
		{Phase{Name: "active", Active: true}, spinnerFrames[1]},
		{Phase{Name: "done", Done: true}, markDeclared},
		{Phase{Name: "failed", Done: true, Err: errors.New("boom")}, markFailed},
	}
	for _, tt := range tests {
		got, _ := stateOf(tt.phase).mark(1)
		if got != tt.want {
			t.Errorf("%s: mark = %q, want %q", tt.phase.Name, got, tt.want)
		}
	}
}

func TestRenderView_StateMarks(t *testing.T) {
	m := NewSynthModel("General", "", testPhases)
	m.Phases[0].Done = true
	m.Resources = []Resource{{Phase: "infrastructure", Type: "VPC", ID: "GeneralVpc"}}
	m.Warnings = []WarningMsg{{Field: "role", Message: "role is not attached"}}

	view := m.View()
	for _, want := range []string{
		markDeclared + " " + m.Phases[0].Name,
		markPending + " " + m.Phases[1].Name,
		markDeclared + " GeneralVpc",
		markWarning + " [role]",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	for _, old := range []string{"[OK]", "[!!]", "[??]"} {
		if strings.Contains(view, old) {
			t.Errorf("view contains stale mark %q", old)
		}
	}
}
