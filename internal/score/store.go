// internal/score/store.go
package score

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
)

// Entry is one persisted high-score record.
type Entry struct {
	PlayerName string `json:"playerName"`
	Score      int    `json:"score"`
	Timestamp  int64  `json:"timestamp"` // epoch milliseconds
}

// Store persists high scores as a flat JSON blob. Missing or corrupt data
// degrades to an empty list, never a fatal error.
type Store struct {
	path       string
	maxEntries int
}

func NewStore(path string, maxEntries int) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("score: store path must not be empty")
	}
	if maxEntries <= 0 {
		return nil, fmt.Errorf("score: max entries must be positive, got %d", maxEntries)
	}
	return &Store{path: path, maxEntries: maxEntries}, nil
}

// Load reads the persisted list, sorted descending by score. I/O and
// decode failures are logged and reported as an empty list.
func (s *Store) Load() []Entry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("score: failed to read %s: %v", s.path, err)
		}
		return nil
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("score: corrupt high score data in %s: %v", s.path, err)
		return nil
	}
	sortEntries(entries)
	if len(entries) > s.maxEntries {
		entries = entries[:s.maxEntries]
	}
	return entries
}

// Submit validates and inserts a record, keeping the list sorted
// descending and capped. The write failure is returned so the caller can
// log it; the in-memory result is still correct.
func (s *Store) Submit(name string, points int, timestamp int64) error {
	if name == "" {
		return fmt.Errorf("score: player name must not be empty")
	}
	if points < 0 {
		return fmt.Errorf("score: submitted score must not be negative, got %d", points)
	}
	entries := append(s.Load(), Entry{PlayerName: name, Score: points, Timestamp: timestamp})
	sortEntries(entries)
	if len(entries) > s.maxEntries {
		entries = entries[:s.maxEntries]
	}
	return s.write(entries)
}

// IsHighScore reports whether points would enter the persisted table.
func (s *Store) IsHighScore(points int) bool {
	if points <= 0 {
		return false
	}
	entries := s.Load()
	if len(entries) < s.maxEntries {
		return true
	}
	return points > entries[len(entries)-1].Score
}

func (s *Store) write(entries []Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("score: failed to encode high scores: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("score: failed to write %s: %w", s.path, err)
	}
	return nil
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
}
