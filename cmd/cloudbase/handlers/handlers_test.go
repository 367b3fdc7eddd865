package handlers

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abcbcafe/cloud-base/internal/config"
	"github.com/abcbcafe/cloud-base/internal/orchestration"
	"github.com/abcbcafe/cloud-base/internal/provisioning"
)

// captureOutput redirects os.Stdout while f runs.
func captureOutput(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	f()

	_ = w.Close()
	os.Stdout = old
	return <-done
}

// fakeSynthesizer writes a minimal cloud assembly to its directory.
type fakeSynthesizer struct {
	cfg    *config.Config
	outDir string
	err    error
}

func (f *fakeSynthesizer) Synthesize(_ context.Context) (*orchestration.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	dir := f.outDir
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "cloudbase-fake")
	}
	if err := writeAssembly(dir, f.cfg.Stack.Name); err != nil {
		return nil, err
	}
	return &orchestration.Result{
		Dir:       dir,
		StackName: f.cfg.Stack.Name,
		Duration:  250 * time.Millisecond,
	}, nil
}

func writeAssembly(dir, stack string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	manifest := `{"version":"38.0.1","artifacts":{"` + stack + `":{"type":"aws:cloudformation:stack",` +
		`"properties":{"templateFile":"` + stack + `.template.json","terminationProtection":true}}}}`
	template := `{"Resources":{` +
		`"Vpc":{"Type":"AWS::EC2::VPC"},` +
		`"FsA":{"Type":"AWS::EFS::FileSystem"},` +
		`"FsB":{"Type":"AWS::EFS::FileSystem"}}}`
	if err := os.WriteFile(filepath.Join(dir, "manifest.json"), []byte(manifest), 0600); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, stack+".template.json"), []byte(template), 0600)
}

// saveAndRestoreFactories saves and restores the package factory variables.
func saveAndRestoreFactories(t *testing.T) {
	t.Helper()
	origLoadConfig := loadConfig
	origNewSynthesizer := newSynthesizer
	origRunSynthTUI := runSynthTUI
	origInspectAssembly := inspectAssembly
	origWriteMetrics := writeMetrics
	origMakeTempDir := makeTempDir
	origStyledOutput := styledOutput
	origNewObjectStore := newObjectStore
	origGetenv := getenv

	t.Cleanup(func() {
		loadConfig = origLoadConfig
		newSynthesizer = origNewSynthesizer
		runSynthTUI = origRunSynthTUI
		inspectAssembly = origInspectAssembly
		writeMetrics = origWriteMetrics
		makeTempDir = origMakeTempDir
		styledOutput = origStyledOutput
		newObjectStore = origNewObjectStore
		getenv = origGetenv
	})
}

// useFakes installs a default config loader and a fake synthesizer.
func useFakes(t *testing.T) *[]string {
	t.Helper()
	saveAndRestoreFactories(t)

	var outDirs []string
	loadConfig = func(string) (*config.Config, error) { return config.Default(), nil }
	newSynthesizer = func(cfg *config.Config, outDir string, _ provisioning.Observer) Synthesizer {
		outDirs = append(outDirs, outDir)
		return &fakeSynthesizer{cfg: cfg, outDir: outDir}
	}
	styledOutput = func() bool { return false }
	return &outDirs
}

func TestUseFakes_WritesReadableAssembly(t *testing.T) {
	useFakes(t)
	dir := t.TempDir()

	res, err := newSynthesizer(config.Default(), dir, nil).Synthesize(context.Background())
	require.NoError(t, err)

	summary, _, err := inspectAssembly(res.Dir, res.StackName)
	require.NoError(t, err)
	require.Equal(t, 2, summary.Count("AWS::EFS::FileSystem"))
}
