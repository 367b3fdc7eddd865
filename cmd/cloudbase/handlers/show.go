package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/abcbcafe/cloud-base/internal/assembly"
)

// Output formats of the show command.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

var (
	// makeTempDir creates the scratch directory show synthesizes into.
	makeTempDir = os.MkdirTemp

	// styledOutput decides whether the table is rendered with colors.
	styledOutput = isInteractiveTTY
)

// ShowOptions holds the flags of the show command.
type ShowOptions struct {
	ConfigPath string
	Output     string
	Template   bool
}

// Show synthesizes the stack into a scratch directory and prints a resource
// summary, or the whole template as YAML.
func Show(ctx context.Context, opts ShowOptions) error {
	switch opts.Output {
	case "", OutputTable, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("unknown output format %q (expected %s, %s or %s)", opts.Output, OutputTable, OutputJSON, OutputYAML)
	}

	dir, err := makeTempDir("", "cloudbase-show-")
	if err != nil {
		return fmt.Errorf("failed to create scratch directory: %w", err)
	}
	defer os.RemoveAll(dir)

	result, err := synthesize(ctx, opts.ConfigPath, dir)
	if err != nil {
		return err
	}

	summary, tmpl, err := inspectAssembly(result.Dir, result.StackName)
	if err != nil {
		return fmt.Errorf("failed to inspect cloud assembly: %w", err)
	}

	if opts.Template {
		out, err := tmpl.YAML()
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	}

	return printSummary(summary, opts.Output)
}

func printSummary(summary assembly.Summary, output string) error {
	switch output {
	case OutputJSON:
		out, err := summary.JSON()
		if err != nil {
			return err
		}
		fmt.Print(string(out))
	case OutputYAML:
		out, err := summary.YAML()
		if err != nil {
			return err
		}
		fmt.Print(string(out))
	default:
		if styledOutput() {
			fmt.Print(renderSummary(summary))
		} else {
			fmt.Print(renderPlainSummary(summary))
		}
	}
	return nil
}
