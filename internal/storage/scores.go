// Package storage persists finished-game scores per difficulty.
// Store uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies; FileStore keeps YAML lists in the platform data directory.
package storage

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// ErrUnknownBackend is returned by OpenLog for an unsupported store kind.
var ErrUnknownBackend = errors.New("storage: unknown backend")

// Backend kinds accepted by OpenLog.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// ScoreEntry is one finished game.
type ScoreEntry struct {
	ID         int64
	Difficulty string
	Score      int
	Won        bool
	LivesLeft  int
	CreatedAt  time.Time
}

// Stats aggregates the finished games of one difficulty.
type Stats struct {
	Difficulty string
	Games      int
	Wins       int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

// ScoreLog is an append-only record of finished games.
type ScoreLog interface {
	// SaveScore appends an entry and returns its ID.
	SaveScore(e ScoreEntry) (int64, error)

	// HighScore returns the best score for a difficulty, 0 if none.
	HighScore(difficulty string) (int, error)

	// TopScores returns up to limit entries, best first.
	TopScores(difficulty string, limit int) ([]ScoreEntry, error)

	// History returns every score for a difficulty in the order played.
	History(difficulty string) ([]int, error)

	// Stats aggregates a difficulty.
	Stats(difficulty string) (*Stats, error)

	// ClearScores deletes every entry for a difficulty.
	ClearScores(difficulty string) error

	Close() error
}

var (
	_ ScoreLog = (*Store)(nil)
	_ ScoreLog = (*FileStore)(nil)
)

// OpenLog opens the score log of the given kind. dbPath is only used by
// the SQLite backend; the file backend lives under appName's data dir.
func OpenLog(kind, dbPath, appName string) (ScoreLog, error) {
	switch kind {
	case BackendSQLite, "":
		return Open(dbPath)
	case BackendFile:
		return OpenFile(appName)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, kind)
	}
}

// sortBest orders entries best score first, earlier games first on ties.
func sortBest(entries []ScoreEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].ID < entries[j].ID
	})
}
