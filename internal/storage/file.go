package storage

import (
	"fmt"
	"sync"
	"time"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// scoresObject is the gdata object holding one property per difficulty.
const scoresObject = "scores"

// fileEntry is the on-disk form of a ScoreEntry.
type fileEntry struct {
	Score     int       `yaml:"score"`
	Won       bool      `yaml:"won"`
	LivesLeft int       `yaml:"lives_left"`
	CreatedAt time.Time `yaml:"created_at"`
}

// FileStore keeps scores as YAML lists in the platform's application data
// directory. Entries are appended and only removed by ClearScores.
type FileStore struct {
	mu      sync.Mutex
	manager *gdata.Manager
}

// OpenFile opens the data directory for appName.
func OpenFile(appName string) (*FileStore, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open data dir for %s: %w", appName, err)
	}
	return &FileStore{manager: manager}, nil
}

// load reads the entries of a difficulty. IDs are 1-based positions.
func (f *FileStore) load(difficulty string) ([]ScoreEntry, error) {
	if !f.manager.ObjectPropExists(scoresObject, difficulty) {
		return nil, nil
	}

	data, err := f.manager.LoadObjectProp(scoresObject, difficulty)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read %s scores: %w", difficulty, err)
	}

	var raw []fileEntry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("storage: cannot parse %s scores: %w", difficulty, err)
	}

	entries := make([]ScoreEntry, len(raw))
	for i, r := range raw {
		entries[i] = ScoreEntry{
			ID:         int64(i + 1),
			Difficulty: difficulty,
			Score:      r.Score,
			Won:        r.Won,
			LivesLeft:  r.LivesLeft,
			CreatedAt:  r.CreatedAt,
		}
	}
	return entries, nil
}

func (f *FileStore) store(difficulty string, entries []ScoreEntry) error {
	raw := make([]fileEntry, len(entries))
	for i, e := range entries {
		raw[i] = fileEntry{Score: e.Score, Won: e.Won, LivesLeft: e.LivesLeft, CreatedAt: e.CreatedAt}
	}

	data, err := yaml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("storage: cannot encode %s scores: %w", difficulty, err)
	}
	if err := f.manager.SaveObjectProp(scoresObject, difficulty, data); err != nil {
		return fmt.Errorf("storage: cannot save %s scores: %w", difficulty, err)
	}
	return nil
}

// SaveScore appends a finished game.
func (f *FileStore) SaveScore(e ScoreEntry) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load(e.Difficulty)
	if err != nil {
		return 0, err
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	e.CreatedAt = e.CreatedAt.UTC().Truncate(time.Second)

	entries = append(entries, e)
	if err := f.store(e.Difficulty, entries); err != nil {
		return 0, err
	}
	return int64(len(entries)), nil
}

// HighScore returns the best score for the difficulty, 0 if none.
func (f *FileStore) HighScore(difficulty string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load(difficulty)
	if err != nil {
		return 0, err
	}
	high := 0
	for _, e := range entries {
		high = max(high, e.Score)
	}
	return high, nil
}

// TopScores returns up to limit entries, best first.
func (f *FileStore) TopScores(difficulty string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load(difficulty)
	if err != nil {
		return nil, err
	}
	sortBest(entries)
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// History returns every score in the order played.
func (f *FileStore) History(difficulty string) ([]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load(difficulty)
	if err != nil {
		return nil, err
	}
	scores := make([]int, len(entries))
	for i, e := range entries {
		scores[i] = e.Score
	}
	return scores, nil
}

// Stats aggregates a difficulty.
func (f *FileStore) Stats(difficulty string) (*Stats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load(difficulty)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Difficulty: difficulty, Games: len(entries)}
	total := 0
	for _, e := range entries {
		total += e.Score
		stats.HighScore = max(stats.HighScore, e.Score)
		if e.Won {
			stats.Wins++
		}
	}
	if len(entries) > 0 {
		stats.AvgScore = float64(total) / float64(len(entries))
		stats.LastPlayed = entries[len(entries)-1].CreatedAt
	}
	return stats, nil
}

// ClearScores deletes every entry for the difficulty.
func (f *FileStore) ClearScores(difficulty string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.manager.ObjectPropExists(scoresObject, difficulty) {
		return nil
	}
	return f.store(difficulty, nil)
}

// Close is a no-op; every write is flushed immediately.
func (f *FileStore) Close() error {
	return nil
}
