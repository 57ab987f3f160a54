package collector

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// ErrCollectorTimeout marks a command that was killed because it exceeded
// the per-run deadline. Privilege-elevation prompts can block forever on
// an unattended host, so every invocation runs under a timeout.
var ErrCollectorTimeout = errors.New("collector timeout")

// DefaultTimeout bounds one command invocation when the caller does not
// set its own.
const DefaultTimeout = 30 * time.Second

// RunRecord is one entry of the runner's in-memory log: the full command
// line and what came of running it.
type RunRecord struct {
	Command     []string      `json:"command"`
	StartedAt   time.Time     `json:"started_at"`
	Duration    time.Duration `json:"duration"`
	OutputBytes int           `json:"output_bytes"`
	Err         string        `json:"err,omitempty"`
}

// Runner executes external hardware-detection commands with a timeout and
// keeps a log of every run. The zero value is not usable; use NewRunner.
type Runner struct {
	timeout time.Duration

	mu  sync.Mutex
	log []RunRecord
}

// NewRunner returns a Runner with the given per-invocation timeout.
// A non-positive timeout falls back to DefaultTimeout.
func NewRunner(timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{timeout: timeout}
}

// Run executes name with args and returns its stdout. Stderr is captured
// separately and logged when non-empty rather than mixed into the output.
// A deadline overrun is reported as ErrCollectorTimeout.
func (r *Runner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	started := time.Now()
	err := classifyRunError(cmd.Run(), runCtx.Err(), name, r.timeout)
	duration := time.Since(started)

	if stderr.Len() > 0 {
		log.WithField("command", name).Debug(stderr.String())
	}

	r.record(cmd.Args, started, duration, stdout.Len(), err)
	return stdout.Bytes(), err
}

// classifyRunError wraps a command failure, attributing it to the
// deadline when the context expired. A run that completed cleanly is
// never rewritten as a timeout, even if the deadline passed while the
// exit status was being collected.
func classifyRunError(runErr, ctxErr error, name string, timeout time.Duration) error {
	if runErr == nil {
		return nil
	}
	if errors.Is(ctxErr, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s after %s", ErrCollectorTimeout, name, timeout)
	}
	return fmt.Errorf("run %s: %w", name, runErr)
}

func (r *Runner) record(command []string, started time.Time, duration time.Duration, size int, err error) {
	rec := RunRecord{
		Command:     append([]string(nil), command...),
		StartedAt:   started,
		Duration:    duration,
		OutputBytes: size,
	}
	if err != nil {
		rec.Err = err.Error()
	}

	r.mu.Lock()
	r.log = append(r.log, rec)
	r.mu.Unlock()
}

// Log returns a copy of the run log in invocation order.
func (r *Runner) Log() []RunRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RunRecord, len(r.log))
	copy(out, r.log)
	return out
}

// StripBanner drops any leading warning or banner lines the command wrote
// before its JSON document. A banner line may itself contain braces (usage
// text like "[-json]"), so the scan is per line: the document begins at the
// first line whose first non-space byte is '{' or '['. Input without such a
// line is returned unchanged.
func StripBanner(data []byte) []byte {
	for offset := 0; offset < len(data); {
		line := data[offset:]
		if i := bytes.IndexByte(line, '\n'); i >= 0 {
			line = line[:i+1]
		}
		trimmed := bytes.TrimLeft(line, " \t")
		if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
			return data[offset+len(line)-len(trimmed):]
		}
		offset += len(line)
	}
	return data
}
