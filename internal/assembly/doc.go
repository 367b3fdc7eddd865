// Package assembly reads a synthesized cloud assembly: the manifest, the
// stack templates it references and a per-type resource summary that can be
// rendered as JSON or YAML or exported as Prometheus textfile metrics.
package assembly
