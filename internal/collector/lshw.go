package collector

import (
	"context"
	"fmt"

	"github.com/go-tangra/hardinfo/internal/hardware"
)

// Lshw produces the full hardware tree from one invocation of
// `lshw -json`. The command needs root to see everything; with UseSudo
// set it runs under `sudo -n` so an unattended host fails fast instead
// of hanging on a password prompt.
type Lshw struct {
	Path    string
	UseSudo bool

	runner *Runner
}

// NewLshw returns a collector using the given runner. An empty path
// defaults to "lshw" resolved from PATH.
func NewLshw(runner *Runner, path string, useSudo bool) *Lshw {
	if path == "" {
		path = "lshw"
	}
	return &Lshw{Path: path, UseSudo: useSudo, runner: runner}
}

// Document runs the command and returns the raw UTF-8 JSON document with
// any leading banner lines stripped.
func (l *Lshw) Document(ctx context.Context) ([]byte, error) {
	var out []byte
	var err error
	if l.UseSudo {
		out, err = l.runner.Run(ctx, "sudo", "-n", l.Path, "-json")
	} else {
		out, err = l.runner.Run(ctx, l.Path, "-json")
	}
	if err != nil {
		return nil, err
	}

	doc := StripBanner(out)
	if len(doc) == 0 {
		return nil, fmt.Errorf("%s produced no document", l.Path)
	}
	return doc, nil
}

// Collect runs the command and materializes the typed tree. The raw
// document is returned alongside so callers can retain it verbatim.
func (l *Lshw) Collect(ctx context.Context) (*hardware.Node, []byte, error) {
	doc, err := l.Document(ctx)
	if err != nil {
		return nil, nil, err
	}

	root, err := hardware.MaterializeDocument(doc)
	if err != nil {
		return nil, doc, fmt.Errorf("materialize lshw output: %w", err)
	}
	return root, doc, nil
}
