package orchestration

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"

	"github.com/abcbcafe/cloud-base/internal/config"
	"github.com/abcbcafe/cloud-base/internal/provisioning"
	"github.com/abcbcafe/cloud-base/internal/provisioning/compute"
	"github.com/abcbcafe/cloud-base/internal/provisioning/infrastructure"
	"github.com/abcbcafe/cloud-base/internal/provisioning/storage"
)

// Result describes a finished synthesis.
type Result struct {
	// Dir is the cloud assembly directory.
	Dir string

	// StackName is the name of the synthesized stack.
	StackName string

	// State holds the declared constructs.
	State *provisioning.State

	// Duration covers declaration and synthesis.
	Duration time.Duration
}

// Synthesizer declares the base stack and synthesizes it.
type Synthesizer struct {
	config   *config.Config
	outDir   string
	observer provisioning.Observer
}

// NewSynthesizer creates a synthesizer for cfg. An empty outDir lets the
// library pick a temporary directory.
func NewSynthesizer(cfg *config.Config, outDir string) *Synthesizer {
	return &Synthesizer{
		config: cfg,
		outDir: outDir,
	}
}

// WithObserver replaces the logger-backed observer derived from the context.
func (s *Synthesizer) WithObserver(obs provisioning.Observer) *Synthesizer {
	s.observer = obs
	return s
}

// Phases returns the provisioning phases in execution order.
func Phases() []provisioning.Phase {
	return []provisioning.Phase{
		provisioning.NewValidationPhase(),
		infrastructure.NewProvisioner(),
		storage.NewProvisioner(storage.Primary),
		compute.NewProvisioner(),
		storage.NewProvisioner(storage.Secondary),
	}
}

// PhaseNames returns the names of Phases in execution order.
func PhaseNames() []string {
	phases := Phases()
	names := make([]string, len(phases))
	for i, p := range phases {
		names[i] = p.Name()
	}
	return names
}

// Synthesize builds the application, runs every phase and writes the cloud
// assembly. Panics raised by the construct library are returned as errors.
func (s *Synthesizer) Synthesize(ctx context.Context) (*Result, error) {
	start := time.Now()

	var (
		pCtx *provisioning.Context
		dir  string
	)
	err := provisioning.Guard(func() error {
		app := awscdk.NewApp(s.appProps())
		stack := awscdk.NewStack(app, jsii.String(s.config.Stack.Name), s.stackProps())

		pCtx = provisioning.NewContext(ctx, s.config, stack)
		if s.observer != nil {
			pCtx.Observer = s.observer
		}
		pCtx.Observer = pCtx.Observer.WithFields(map[string]string{"stack": s.config.Stack.Name})

		if err := provisioning.NewPipeline(Phases()...).Run(pCtx); err != nil {
			return err
		}

		pCtx.Observer.Printf("Synthesizing cloud assembly...")
		assembly := app.Synth(nil)
		dir = *assembly.Directory()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize stack %s: %w", s.config.Stack.Name, err)
	}

	return &Result{
		Dir:       dir,
		StackName: s.config.Stack.Name,
		State:     pCtx.State,
		Duration:  time.Since(start),
	}, nil
}

func (s *Synthesizer) appProps() *awscdk.AppProps {
	if s.outDir == "" {
		return nil
	}
	return &awscdk.AppProps{Outdir: jsii.String(s.outDir)}
}

func (s *Synthesizer) stackProps() *awscdk.StackProps {
	sc := s.config.Stack
	props := &awscdk.StackProps{
		TerminationProtection: jsii.Bool(sc.TerminationProtection),
	}
	if !sc.IsEnvironmentAgnostic() {
		env := &awscdk.Environment{}
		if sc.Account != "" {
			env.Account = jsii.String(sc.Account)
		}
		if sc.Region != "" {
			env.Region = jsii.String(sc.Region)
		}
		props.Env = env
	}
	if sc.Description != "" {
		props.Description = jsii.String(sc.Description)
	}
	if len(sc.Tags) > 0 {
		tags := make(map[string]*string, len(sc.Tags))
		for k, v := range sc.Tags {
			tags[k] = jsii.String(v)
		}
		props.Tags = &tags
	}
	return props
}
