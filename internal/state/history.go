package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Entry is one recorded search: what the user typed, what it translated to,
// and the pass-through arguments. Results are never recorded.
type Entry struct {
	Pattern string   `json:"pattern"`
	Regex   string   `json:"regex"`
	Args    []string `json:"args,omitempty"`
	When    string   `json:"when"`
}

// maxEntries bounds the journal; the oldest entries are dropped first.
const maxEntries = 100

// History is a bounded journal of recent searches persisted as JSON under
// the config dir.
type History struct {
	path    string
	mu      sync.RWMutex
	entries []Entry
}

func NewHistory(configDir string) (*History, error) {
	h := &History{path: filepath.Join(configDir, "history.json")}
	if err := h.load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return h, nil
}

func (h *History) load() error {
	data, err := os.ReadFile(h.path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, &h.entries)
}

func (h *History) save() error {
	data, err := json.MarshalIndent(h.entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(h.path, data, 0o644)
}

// Append records an entry, trimming the journal to maxEntries, and saves.
func (h *History) Append(e Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, e)
	if n := len(h.entries); n > maxEntries {
		h.entries = append([]Entry(nil), h.entries[n-maxEntries:]...)
	}
	return h.save()
}

// Entries returns the journal oldest-first.
func (h *History) Entries() []Entry {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]Entry(nil), h.entries...)
}
