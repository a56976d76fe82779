package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	cacheDirName    = "slyboard"
	historyFileName = "history.json"
)

// historyDatabase is the current on-disk shape: a single JSON document with
// tagged entries.
type historyDatabase struct {
	History []Entry `json:"history"`
}

// legacyDatabase is the pre-provenance shape: bare strings, text only.
type legacyDatabase struct {
	History []string `json:"history"`
}

// DefaultPath resolves the platform cache location of the history file.
func DefaultPath() (string, error) {
	cache, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache directory: %w", err)
	}
	return filepath.Join(cache, cacheDirName, historyFileName), nil
}

// LoadHistory reads and decodes the history file at path, most recent first,
// dropping empty entries and truncating to limit. A missing file is an empty
// history; an unreadable or unparseable file is an error — corruption is
// surfaced, never silently discarded.
func LoadHistory(path string, limit int) ([]Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read clipboard history %s: %w", path, err)
	}

	decoded, err := decodeHistory(raw)
	if err != nil {
		return nil, fmt.Errorf("parse clipboard history %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(decoded))
	for _, entry := range decoded {
		if entry.IsEmpty() {
			continue
		}
		entries = append(entries, entry)
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// decodeHistory tries the current tagged shape first and falls back to the
// legacy plain-string shape only when the current one does not structurally
// match. The order makes the two-shape decode deterministic.
func decodeHistory(raw []byte) ([]Entry, error) {
	var current historyDatabase
	currentErr := json.Unmarshal(raw, &current)
	if currentErr == nil {
		return current.History, nil
	}

	var legacy legacyDatabase
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return nil, currentErr
	}
	entries := make([]Entry, 0, len(legacy.History))
	for _, value := range legacy.History {
		entries = append(entries, NewText(value))
	}
	return entries, nil
}

// SaveHistory rewrites the whole history file, creating parent directories
// as needed. The write goes to a temp file first and is renamed into place
// so readers never observe a partial document.
func SaveHistory(path string, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}

	if parent := filepath.Dir(path); parent != "" {
		if err := os.MkdirAll(parent, 0o700); err != nil {
			return fmt.Errorf("create clipboard history directory %s: %w", parent, err)
		}
	}

	raw, err := json.MarshalIndent(historyDatabase{History: entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("serialize clipboard history: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("write clipboard history %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace clipboard history %s: %w", path, err)
	}
	return nil
}
