package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterSink_BlockFormat(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	s := NewWriterSink(&sb)
	require.NoError(t, s.WriteBlock("Puzzle 1", "AB\nCD\n"))

	assert.Equal(t, "Puzzle 1:\nAB\nCD\n\n", sb.String())
	assert.NoError(t, s.Close())
}

func TestWriterSink_ConcurrentBlocksDoNotInterleave(t *testing.T) {
	t.Parallel()

	var sb strings.Builder
	s := NewWriterSink(&sb)

	const writers = 16
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			body := strings.Repeat(fmt.Sprintf("%c", 'A'+n), 20) + "\n"
			assert.NoError(t, s.WriteBlock(fmt.Sprintf("Puzzle %d", n), body))
		}(i)
	}
	wg.Wait()

	// Every block must appear as one contiguous unit.
	out := sb.String()
	for i := 0; i < writers; i++ {
		body := strings.Repeat(fmt.Sprintf("%c", 'A'+i), 20)
		assert.Contains(t, out, fmt.Sprintf("Puzzle %d:\n%s\n\n", i, body))
	}
	assert.Equal(t, writers, strings.Count(out, "\n\n"), "exactly one blank line per block")
}

func TestFileSink_TruncatesOnOpen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content"), 0o644))

	s, err := NewFileSink(path)
	require.NoError(t, err)
	require.NoError(t, s.WriteBlock("Puzzle 1", "XY\n"))
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Puzzle 1:\nXY\n\n", string(data))
}

func TestManager_SharesSinkPerPath(t *testing.T) {
	t.Parallel()

	var stdout strings.Builder
	m := NewManager(&stdout)

	path := filepath.Join(t.TempDir(), "shared.txt")
	a, err := m.For(path)
	require.NoError(t, err)
	b, err := m.For(path)
	require.NoError(t, err)
	assert.Same(t, a, b, "batches writing to one file share one sink")

	std, err := m.For("")
	require.NoError(t, err)
	require.NoError(t, std.WriteBlock("Puzzle 1", "Z\n"))
	assert.Equal(t, "Puzzle 1:\nZ\n\n", stdout.String())

	require.NoError(t, m.Close())
}
