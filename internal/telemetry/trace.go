// Package telemetry records per-tick game statuses as CSV for offline
// analysis of a session.
package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/gocarina/gocsv"

	"github.com/vovakirdan/runaway/internal/games/runaway"
)

// TickRecord is one CSV row of the trace.
type TickRecord struct {
	Tick           uint64  `csv:"tick"`
	Score          int     `csv:"score"`
	ElapsedSeconds float64 `csv:"elapsed_seconds"`
	Caught         int     `csv:"caught"`
	Penalties      int     `csv:"penalties"`
	Won            bool    `csv:"won"`
}

// NewTickRecord converts a published status into a trace row.
func NewTickRecord(s runaway.Status, won bool) TickRecord {
	return TickRecord{
		Tick:           s.Tick,
		Score:          s.Score,
		ElapsedSeconds: s.ElapsedSeconds(),
		Caught:         s.Caught,
		Penalties:      s.Penalties,
		Won:            won,
	}
}

// TraceWriter is a runaway.Display that appends every status to a CSV
// stream. The winning tick is written twice: once as a regular status and
// once with won=true.
//
// Display methods cannot fail, so the first write error is kept and
// reported by Err and Close; later rows are dropped.
type TraceWriter struct {
	mu            sync.Mutex
	w             io.Writer
	closer        io.Closer
	headerWritten bool
	rows          int
	err           error
}

// NewTraceWriter creates a trace writing to w.
func NewTraceWriter(w io.Writer) *TraceWriter {
	return &TraceWriter{w: w}
}

// CreateTraceFile creates (or truncates) path and returns a trace writing
// to it. Returns nil if path is empty (tracing disabled).
func CreateTraceFile(path string) (*TraceWriter, error) {
	if path == "" {
		return nil, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("telemetry: creating trace directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("telemetry: creating %s: %w", path, err)
	}

	t := NewTraceWriter(f)
	t.closer = f
	return t, nil
}

// ShowStatus records a per-tick status.
func (t *TraceWriter) ShowStatus(s runaway.Status) {
	t.write(NewTickRecord(s, false))
}

// ShowWin records the final status of a won session.
func (t *TraceWriter) ShowWin(s runaway.Status) {
	t.write(NewTickRecord(s, true))
}

func (t *TraceWriter) write(rec TickRecord) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.err != nil {
		return
	}

	records := []TickRecord{rec}
	var err error
	if !t.headerWritten {
		err = gocsv.Marshal(records, t.w)
		t.headerWritten = err == nil
	} else {
		err = gocsv.MarshalWithoutHeaders(records, t.w)
	}
	if err != nil {
		t.err = fmt.Errorf("telemetry: writing trace: %w", err)
		return
	}
	t.rows++
}

// Rows returns the number of records written so far.
func (t *TraceWriter) Rows() int {
	if t == nil {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rows
}

// Err returns the first write error, if any.
func (t *TraceWriter) Err() error {
	if t == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Close closes the underlying file, if the trace owns one, and returns
// the first error seen.
func (t *TraceWriter) Close() error {
	if t == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closer != nil {
		if err := t.closer.Close(); err != nil && t.err == nil {
			t.err = fmt.Errorf("telemetry: closing trace: %w", err)
		}
		t.closer = nil
	}
	return t.err
}

// Multi fans statuses out to several displays. Nil entries are skipped.
type Multi []runaway.Display

// ShowStatus forwards to every display.
func (m Multi) ShowStatus(s runaway.Status) {
	for _, d := range m {
		if d != nil {
			d.ShowStatus(s)
		}
	}
}

// ShowWin forwards to every display.
func (m Multi) ShowWin(s runaway.Status) {
	for _, d := range m {
		if d != nil {
			d.ShowWin(s)
		}
	}
}
