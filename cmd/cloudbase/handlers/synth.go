// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command definitions
// in the commands package. Handlers are framework-agnostic and can be tested
// independently of the CLI framework.
package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/abcbcafe/cloud-base/internal/assembly"
	"github.com/abcbcafe/cloud-base/internal/config"
	"github.com/abcbcafe/cloud-base/internal/logging"
	"github.com/abcbcafe/cloud-base/internal/orchestration"
	"github.com/abcbcafe/cloud-base/internal/provisioning"
	"github.com/abcbcafe/cloud-base/internal/ui/tui"
)

// Synthesizer interface for testing - matches orchestration.Synthesizer.
type Synthesizer interface {
	Synthesize(ctx context.Context) (*orchestration.Result, error)
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadConfig resolves the configuration (explicit path, discovered file or defaults).
	loadConfig = config.LoadOrDefault

	// newSynthesizer creates the stack synthesizer. A nil observer keeps the
	// logger-backed default.
	newSynthesizer = func(cfg *config.Config, outDir string, obs provisioning.Observer) Synthesizer {
		s := orchestration.NewSynthesizer(cfg, outDir)
		if obs != nil {
			s.WithObserver(obs)
		}
		return s
	}

	// runSynthTUI renders synthesis progress in the terminal.
	runSynthTUI = tui.RunSynthTUI

	// inspectAssembly summarizes a stack of a synthesized assembly.
	inspectAssembly = assembly.Inspect

	// writeMetrics writes Prometheus textfile metrics.
	writeMetrics = assembly.WriteMetrics
)

// SynthOptions holds the flags of the synth command.
type SynthOptions struct {
	ConfigPath  string
	OutDir      string
	MetricsFile string

	// TUI renders phase progress on stderr while synthesizing.
	TUI bool
}

// Synth declares the base stack, synthesizes it and prints the cloud
// assembly directory on stdout.
func Synth(ctx context.Context, opts SynthOptions) error {
	synth := synthesize
	if opts.TUI {
		synth = synthesizeWithTUI
	}
	result, err := synth(ctx, opts.ConfigPath, opts.OutDir)
	if err != nil {
		return err
	}

	if opts.MetricsFile != "" {
		summary, _, err := inspectAssembly(result.Dir, result.StackName)
		if err != nil {
			return fmt.Errorf("failed to inspect cloud assembly: %w", err)
		}
		if err := writeMetrics(opts.MetricsFile, summary, result.Duration); err != nil {
			return err
		}
		logging.FromContext(ctx).V(1).Info("wrote metrics", "path", opts.MetricsFile)
	}

	fmt.Println(result.Dir)
	return nil
}

// synthesize loads the configuration and runs the synthesizer. An empty
// outDir falls back to output.dir from the configuration.
func synthesize(ctx context.Context, configPath, outDir string) (*orchestration.Result, error) {
	cfg, outDir, err := resolveSynth(configPath, outDir)
	if err != nil {
		return nil, err
	}

	log := logging.FromContext(ctx)
	log.V(1).Info("synthesizing stack", "stack", cfg.Stack.Name, "outdir", outDir)

	result, err := newSynthesizer(cfg, outDir, nil).Synthesize(ctx)
	if err != nil {
		return nil, err
	}

	log.V(1).Info("synthesized stack", "stack", result.StackName, "dir", result.Dir, "duration", result.Duration.String())
	return result, nil
}

// synthesizeWithTUI is synthesize with the progress view attached.
func synthesizeWithTUI(ctx context.Context, configPath, outDir string) (*orchestration.Result, error) {
	cfg, outDir, err := resolveSynth(configPath, outDir)
	if err != nil {
		return nil, err
	}

	var result *orchestration.Result
	err = runSynthTUI(ctx, func(obs provisioning.Observer) (string, error) {
		res, err := newSynthesizer(cfg, outDir, obs).Synthesize(ctx)
		if err != nil {
			return "", err
		}
		result = res
		return res.Dir, nil
	}, cfg.Stack.Name, cfg.Stack.Region, orchestration.PhaseNames())
	if err != nil {
		return nil, err
	}
	return result, nil
}

func resolveSynth(configPath, outDir string) (*config.Config, string, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}
	if outDir == "" {
		outDir = cfg.Output.Dir
	}
	return cfg, outDir, nil
}

func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
