// Package history keeps a bounded per-user record of past translations,
// newest first. It is purely observational: nothing else reads it.
package history

import (
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

const snippetLimit = 80

// Record is one remembered translation.
type Record struct {
	Timestamp time.Time
	Snippet   string
	Source    string
	Targets   []string
}

// History stores recent translations per user with a fixed depth. The
// oldest record falls off once the depth is exceeded.
type History struct {
	mu      sync.Mutex
	enabled bool
	limit   int
	records map[int64][]Record
}

// New creates a History holding up to limit records per user.
func New(enabled bool, limit int) *History {
	return &History{
		enabled: enabled,
		limit:   limit,
		records: make(map[int64][]Record),
	}
}

// Enabled reports whether records are being kept.
func (h *History) Enabled() bool {
	return h.enabled
}

// Add remembers one translation. Long input is shortened to a snippet.
func (h *History) Add(userID int64, inputText, source string, targets []string) {
	if !h.enabled || h.limit <= 0 {
		return
	}

	snippet := strings.ReplaceAll(strings.TrimSpace(inputText), "\n", " ")
	if utf8.RuneCountInString(snippet) > snippetLimit {
		snippet = string([]rune(snippet)[:snippetLimit-3]) + "..."
	}

	record := Record{
		Timestamp: time.Now().UTC(),
		Snippet:   snippet,
		Source:    source,
		Targets:   append([]string(nil), targets...),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	records := append([]Record{record}, h.records[userID]...)
	if len(records) > h.limit {
		records = records[:h.limit]
	}
	h.records[userID] = records
}

// Latest returns up to limit records for the user, newest first.
func (h *History) Latest(userID int64, limit int) []Record {
	if !h.enabled {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	records := h.records[userID]
	if limit > len(records) {
		limit = len(records)
	}
	return append([]Record(nil), records[:limit]...)
}
