// Package sink persists rendered icon lists.
package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Sink stores data under name, replacing anything already stored there.
type Sink interface {
	Write(ctx context.Context, name string, data []byte) error
}

// LocalSink writes files relative to Dir, or the working directory when Dir
// is empty. Writes truncate in place and are not atomic.
type LocalSink struct {
	Dir string
}

func (s *LocalSink) Write(_ context.Context, name string, data []byte) error {
	path := name
	if s.Dir != "" && !filepath.IsAbs(name) {
		path = filepath.Join(s.Dir, name)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// MemorySink records writes in memory.
type MemorySink struct {
	Files  map[string][]byte
	Writes int
	Err    error
}

func (m *MemorySink) Write(_ context.Context, name string, data []byte) error {
	if m.Err != nil {
		return fmt.Errorf("write %s: %w", name, m.Err)
	}
	if m.Files == nil {
		m.Files = make(map[string][]byte)
	}
	m.Files[name] = append([]byte(nil), data...)
	m.Writes++
	return nil
}
