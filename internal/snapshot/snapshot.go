package snapshot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/go-tangra/hardinfo/internal/collector"
	"github.com/go-tangra/hardinfo/internal/hardware"
)

// Snapshot is one complete hardware inventory run: the raw document as
// ground truth, the materialized tree, and the integrity outcome. A
// changed device state means a new snapshot, never an update in place.
type Snapshot struct {
	ID          string    `json:"id"`
	Hostname    string    `json:"hostname"`
	CollectedAt time.Time `json:"collected_at"`

	Raw  []byte         `json:"-"`
	Root *hardware.Node `json:"-"`

	IntegrityErrors int                        `json:"integrity_errors"`
	Reports         map[string]hardware.Report `json:"reports,omitempty"`
}

// Take runs the lshw collector and materializes the result into a new
// snapshot. Integrity mismatches are recorded, logged, and never fatal.
func Take(ctx context.Context, lshw *collector.Lshw) (*Snapshot, error) {
	root, raw, err := lshw.Collect(ctx)
	if err != nil {
		return nil, err
	}
	return build(root, raw)
}

// FromDocument materializes a snapshot from an already-collected raw
// document, e.g. one loaded from disk.
func FromDocument(raw []byte) (*Snapshot, error) {
	doc := collector.StripBanner(raw)
	root, err := hardware.MaterializeDocument(doc)
	if err != nil {
		return nil, err
	}
	return build(root, doc)
}

func build(root *hardware.Node, raw []byte) (*Snapshot, error) {
	hostname, _ := os.Hostname()

	s := &Snapshot{
		ID:          uuid.New().String(),
		Hostname:    hostname,
		CollectedAt: time.Now().UTC(),
		Raw:         raw,
		Root:        root,
	}

	s.IntegrityErrors, s.Reports = hardware.CheckTree(root)
	if s.IntegrityErrors > 0 {
		log.WithFields(log.Fields{
			"snapshot": s.ID,
			"errors":   s.IntegrityErrors,
		}).Warn("snapshot has integrity mismatches")
	}

	return s, nil
}

// Save writes the raw document verbatim into dir under a timestamped name
// and returns the full path. The file holds exactly the collector output,
// so it can be reloaded (or diffed) byte for byte.
func (s *Snapshot) Save(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	name := fmt.Sprintf("lshw-%s-%s.json", s.CollectedAt.Format("20060102T150405Z"), s.ID[:8])
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, s.Raw, 0o644); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}
	return path, nil
}

// Load reads a saved raw document and materializes it into a snapshot.
// The snapshot gets a fresh id; the collection time is taken from the
// file's modification time.
func Load(path string) (*Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	s, err := FromDocument(raw)
	if err != nil {
		return nil, err
	}

	if fi, err := os.Stat(path); err == nil {
		s.CollectedAt = fi.ModTime().UTC()
	}
	return s, nil
}
