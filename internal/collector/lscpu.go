package collector

import (
	"context"
	"fmt"

	"github.com/go-tangra/hardinfo/internal/hardware"
)

// Lscpu collects CPU topology from `lscpu --json --extended`.
type Lscpu struct {
	Path string

	runner *Runner
}

// NewLscpu returns a collector using the given runner. An empty path
// defaults to "lscpu" resolved from PATH.
func NewLscpu(runner *Runner, path string) *Lscpu {
	if path == "" {
		path = "lscpu"
	}
	return &Lscpu{Path: path, runner: runner}
}

// Document runs the command and returns the raw JSON document.
func (l *Lscpu) Document(ctx context.Context) ([]byte, error) {
	out, err := l.runner.Run(ctx, l.Path, "--json", "--extended")
	if err != nil {
		return nil, err
	}

	doc := StripBanner(out)
	if len(doc) == 0 {
		return nil, fmt.Errorf("%s produced no document", l.Path)
	}
	return doc, nil
}

// Collect runs the command and decodes the document into the generic
// ground-truth mapping ("cpus" array of per-logical-CPU rows).
func (l *Lscpu) Collect(ctx context.Context) (map[string]any, []byte, error) {
	doc, err := l.Document(ctx)
	if err != nil {
		return nil, nil, err
	}

	m, err := hardware.Decode(doc)
	if err != nil {
		return nil, doc, fmt.Errorf("decode lscpu output: %w", err)
	}
	return m, doc, nil
}
