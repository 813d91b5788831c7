// Package buflog provides an in-memory sink for zerolog's JSON output, so
// that log entries can be rendered inside the TUI instead of corrupting the
// terminal.
package buflog

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Entry is a single log entry.
type Entry = map[string]interface{}

// Global is the program-wide in-memory log sink.
var Global = Sink{
	mtx:     sync.Mutex{},
	entries: []Entry{},
}

// Sink is a simple in-memory log writer and reader.
type Sink struct {
	mtx     sync.Mutex
	entries []Entry
}

// Write appends a JSON-formatted log entry to the sink.
func (s *Sink) Write(p []byte) (int, error) {
	entry := Entry{}
	err := json.Unmarshal(p, &entry)
	if err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry (err:%s) (input:'%s')", err.Error(), string(p))
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.entries = append(s.entries, entry)
	return len(p), nil
}

// Get returns the retained log entries.
func (s *Sink) Get() []Entry {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.entries
}

// Reader allows reading access to a log.
type Reader interface {
	Get() []Entry
}
