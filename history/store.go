package history

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/agrzeslak/bohelper"
)

const schema = `CREATE TABLE IF NOT EXISTS search (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at TEXT NOT NULL,
	haystack TEXT NOT NULL,
	needle TEXT NOT NULL,
	offsets TEXT NOT NULL
)`

// Store persists searches in a sqlite database. It implements
// bohelper.HistoryPort.
type Store struct {
	db *sql.DB
}

// Open opens the history database at path, bootstrapping the schema when
// needed.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Record appends one search.
func (s *Store) Record(search bohelper.Search) error {
	_, err := s.db.Exec("INSERT INTO search (created_at, haystack, needle, offsets) VALUES (?, ?, ?, ?)",
		search.When.UTC().Format(time.RFC3339), search.Haystack, search.Needle, joinOffsets(search.Offsets))
	if err != nil {
		return fmt.Errorf("failed to record search: %w", err)
	}
	return nil
}

// Recent returns up to limit searches, newest first.
func (s *Store) Recent(limit int) ([]bohelper.Search, error) {
	rows, err := s.db.Query("SELECT created_at, haystack, needle, offsets FROM search ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var searches []bohelper.Search
	for rows.Next() {
		var created, haystack, needle, offsets string
		if err := rows.Scan(&created, &haystack, &needle, &offsets); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		when, err := time.Parse(time.RFC3339, created)
		if err != nil {
			return nil, fmt.Errorf("failed to parse history timestamp: %w", err)
		}
		parsed, err := splitOffsets(offsets)
		if err != nil {
			return nil, err
		}
		searches = append(searches, bohelper.Search{When: when, Haystack: haystack, Needle: needle, Offsets: parsed})
	}
	return searches, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}

func joinOffsets(offsets []int) string {
	parts := make([]string, len(offsets))
	for i, o := range offsets {
		parts[i] = strconv.Itoa(o)
	}
	return strings.Join(parts, ",")
}

func splitOffsets(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	offsets := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("corrupt offsets column %q: %w", s, err)
		}
		offsets[i] = v
	}
	return offsets, nil
}
