package telemetry

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/runaway/internal/games/runaway"
)

func TestTraceWriterWritesHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTraceWriter(&buf)

	tw.ShowStatus(runaway.Status{Tick: 0})
	tw.ShowStatus(runaway.Status{Tick: 1, Score: 1, Elapsed: 100 * time.Millisecond, Caught: 1})
	tw.ShowStatus(runaway.Status{Tick: 2, Score: 0, Elapsed: 200 * time.Millisecond, Penalties: 1})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4, "expected header + 3 rows:\n%s", buf.String())
	assert.Equal(t, "tick,score,elapsed_seconds,caught,penalties,won", lines[0])
	assert.Equal(t, 3, tw.Rows())
}

func TestTraceWriterRecordsWin(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTraceWriter(&buf)

	final := runaway.Status{Tick: 42, Score: 10, Elapsed: 4250 * time.Millisecond, Caught: 1}
	tw.ShowStatus(final)
	tw.ShowWin(final)

	var records []TickRecord
	require.NoError(t, gocsv.UnmarshalBytes(buf.Bytes(), &records), "reading trace back")
	require.Len(t, records, 2)

	want := TickRecord{Tick: 42, Score: 10, ElapsedSeconds: 4.3, Caught: 1, Won: true}
	assert.Equal(t, want, records[1])
	assert.False(t, records[0].Won, "status record should not be marked as won")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestTraceWriterKeepsFirstError(t *testing.T) {
	tw := NewTraceWriter(failingWriter{})

	tw.ShowStatus(runaway.Status{Tick: 1})
	tw.ShowStatus(runaway.Status{Tick: 2})

	require.Error(t, tw.Err())
	assert.Contains(t, tw.Err().Error(), "disk full", "error should wrap the cause")
	assert.Zero(t, tw.Rows())
	assert.Error(t, tw.Close(), "Close should report the write error")
}

func TestCreateTraceFile(t *testing.T) {
	tw, err := CreateTraceFile("")
	require.NoError(t, err)
	require.Nil(t, tw, "empty path should disable tracing")
	// A nil trace is a valid no-op display.
	tw.ShowStatus(runaway.Status{})
	require.NoError(t, tw.Close())

	path := filepath.Join(t.TempDir(), "traces", "session.csv")
	tw, err = CreateTraceFile(path)
	require.NoError(t, err)
	tw.ShowStatus(runaway.Status{Tick: 1, Score: 1})
	require.NoError(t, tw.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "tick,score,"), "unexpected trace contents:\n%s", data)
}

type countingDisplay struct {
	statuses, wins int
}

func (c *countingDisplay) ShowStatus(runaway.Status) { c.statuses++ }
func (c *countingDisplay) ShowWin(runaway.Status) { c.wins++ }

func TestMultiForwardsToAll(t *testing.T) {
	a, b := &countingDisplay{}, &countingDisplay{}
	m := Multi{a, nil, b}

	m.ShowStatus(runaway.Status{})
	m.ShowStatus(runaway.Status{})
	m.ShowWin(runaway.Status{})

	for i, c := range []*countingDisplay{a, b} {
		assert.Equal(t, 2, c.statuses, "display %d statuses", i)
		assert.Equal(t, 1, c.wins, "display %d wins", i)
	}
}
