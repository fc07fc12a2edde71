package sink

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Sink receives finished puzzle blocks. Implementations must serialize
// concurrent WriteBlock calls so each block lands as one contiguous unit.
type Sink interface {
	// WriteBlock appends `<label>:\n<body>\n`. The body is expected to end
	// with a newline of its own, so a blank line terminates the block.
	WriteBlock(label, body string) error
	Close() error
}

// WriterSink wraps an io.Writer with a mutex. Closing it is a no-op; the
// underlying writer's lifetime belongs to the caller.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink returns a sink writing blocks to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// WriteBlock implements the Sink interface.
func (s *WriterSink) WriteBlock(label, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintf(s.w, "%s:\n%s\n", label, body); err != nil {
		return fmt.Errorf("sink: write block %q: %w", label, err)
	}
	return nil
}

// Close implements the Sink interface.
func (s *WriterSink) Close() error { return nil }

// FileSink writes blocks to a file. The file is truncated when the sink is
// opened, matching a fresh run overwriting a previous one.
type FileSink struct {
	WriterSink
	f *os.File
}

// NewFileSink creates (or truncates) path and returns a sink over it.
func NewFileSink(path string) (*FileSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("sink: open %s: %w", path, err)
	}
	s := &FileSink{f: f}
	s.w = f
	return s, nil
}

// Close flushes and closes the underlying file.
func (s *FileSink) Close() error {
	if err := s.f.Close(); err != nil {
		return fmt.Errorf("sink: close %s: %w", s.f.Name(), err)
	}
	return nil
}
