package naming

import (
	"path"
	"strings"
	"time"
)

// ReleaseLayout formats the release segment of a key.
const ReleaseLayout = "20060102T150405Z"

// Release returns the release segment for t.
func Release(t time.Time) string {
	return t.UTC().Format(ReleaseLayout)
}

// AssemblyPrefix returns the key prefix of one published assembly.
func AssemblyPrefix(prefix, stack, release string) string {
	return join(prefix, stack, release)
}

// ObjectKey returns the key of an assembly file. file is slash separated and
// relative to the assembly directory.
func ObjectKey(assemblyPrefix, file string) string {
	return join(assemblyPrefix, file)
}

// LatestKey returns the key of the pointer object that names the most
// recent release of stack.
func LatestKey(prefix, stack string) string {
	return join(prefix, stack, "LATEST")
}

func join(parts ...string) string {
	clean := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(p, "/")
		if p != "" {
			clean = append(clean, p)
		}
	}
	return path.Join(clean...)
}
