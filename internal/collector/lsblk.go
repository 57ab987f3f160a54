package collector

import (
	"context"
	"fmt"

	"github.com/go-tangra/hardinfo/internal/hardware"
)

// lsblkArgs matches the invocation the tool has always used: every
// device, zone info, every output column, full device paths.
var lsblkArgs = []string{"--json", "--all", "--zoned", "--output-all", "--paths"}

// Lsblk collects the block-device document from `lsblk --json`.
type Lsblk struct {
	Path string

	runner *Runner
}

// NewLsblk returns a collector using the given runner. An empty path
// defaults to "lsblk" resolved from PATH.
func NewLsblk(runner *Runner, path string) *Lsblk {
	if path == "" {
		path = "lsblk"
	}
	return &Lsblk{Path: path, runner: runner}
}

// Document runs the command and returns the raw JSON document.
func (l *Lsblk) Document(ctx context.Context) ([]byte, error) {
	out, err := l.runner.Run(ctx, l.Path, lsblkArgs...)
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
// ground-truth mapping. lsblk output is flat-rooted ("blockdevices"
// array), so it stays a mapping rather than a typed tree.
func (l *Lsblk) Collect(ctx context.Context) (map[string]any, []byte, error) {
	doc, err := l.Document(ctx)
	if err != nil {
		return nil, nil, err
	}

	m, err := hardware.Decode(doc)
	if err != nil {
		return nil, doc, fmt.Errorf("decode lsblk output: %w", err)
	}
	return m, doc, nil
}
