// Package logging builds the logr.Logger used by the CLI and carries it
// through context.Context.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// Options configures a CLI logger.
type Options struct {
	// Verbosity is the highest V-level that is emitted.
	Verbosity int

	// Timestamps prefixes every line with the current time.
	Timestamps bool
}

// New returns a logger writing one line per entry to w.
func New(w io.Writer, opts Options) logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(w, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(w, args)
	}, funcr.Options{
		Verbosity:    opts.Verbosity,
		LogTimestamp: opts.Timestamps,
	})
}

// NewStderr returns a logger writing to standard error.
func NewStderr(verbosity int) logr.Logger {
	return New(os.Stderr, Options{Verbosity: verbosity})
}

// IntoContext stores a logger in ctx.
func IntoContext(ctx context.Context, log logr.Logger) context.Context {
	return logr.NewContext(ctx, log)
}

// FromContext returns the logger stored in ctx, or a discarding logger.
func FromContext(ctx context.Context) logr.Logger {
	if ctx == nil {
		return logr.Discard()
	}
	return logr.FromContextOrDiscard(ctx)
}
