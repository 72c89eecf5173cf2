// Package source provides the collector's only access to host state: a
// narrow read-only capability for pseudo-files and external tools. Both
// operations report absence instead of failing, which is what lets every
// probe degrade gracefully on hosts where a source does not exist.
package source

import (
	"context"
	"os"
	"os/exec"
)

// Source reads the raw inputs the probes parse. Implementations must be
// safe for concurrent use.
type Source interface {
	// ReadText returns the full text content of the file at path, or
	// ok=false on any failure (missing file, permission denied, I/O error).
	ReadText(path string) (string, bool)

	// Run executes a command and returns its standard output, or ok=false
	// if the binary is missing, cannot start, or exits non-zero.
	Run(ctx context.Context, name string, args ...string) (string, bool)
}

// OS returns the Source backed by the real filesystem and command execution.
func OS() Source {
	return osSource{}
}

type osSource struct{}

func (osSource) ReadText(path string) (string, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (osSource) Run(ctx context.Context, name string, args ...string) (string, bool) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", false
	}
	return string(out), true
}
