package sink

import (
	"errors"
	"io"
	"sync"
)

// Manager hands out sinks by destination path, opening each file exactly
// once so batches sharing an output file also share its write lock.
type Manager struct {
	mu     sync.Mutex
	stdout Sink
	files  map[string]*FileSink
}

// NewManager returns a manager whose empty-path sink targets stdout.
func NewManager(stdout io.Writer) *Manager {
	return &Manager{
		stdout: NewWriterSink(stdout),
		files:  make(map[string]*FileSink),
	}
}

// For returns the sink for path, opening the file on first use. The empty
// path means stdout.
func (m *Manager) For(path string) (Sink, error) {
	if path == "" {
		return m.stdout, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.files[path]; ok {
		return s, nil
	}
	s, err := NewFileSink(path)
	if err != nil {
		return nil, err
	}
	m.files[path] = s
	return s, nil
}

// Close closes every opened file sink, reporting all failures.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	for _, s := range m.files {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	m.files = make(map[string]*FileSink)
	return errors.Join(errs...)
}
