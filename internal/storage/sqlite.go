// Package storage provides SQLite-based persistence for game recordings.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/chicken-run/internal/core"
	"github.com/vovakirdan/chicken-run/internal/replay"
)

// ErrNotFound is returned when a recording id does not exist.
var ErrNotFound = errors.New("storage: recording not found")

// Store manages the SQLite database connection for recording persistence.
type Store struct {
	db *sql.DB
}

// RecordingInfo summarizes a stored recording without its events.
type RecordingInfo struct {
	ID        int64
	Seed      int64
	Backend   string
	Player    string
	Frames    int
	Events    int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS recordings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			backend TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			frames INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS recording_events (
			recording_id INTEGER NOT NULL REFERENCES recordings(id) ON DELETE CASCADE,
			frame INTEGER NOT NULL,
			seq INTEGER NOT NULL,
			kind TEXT NOT NULL,
			key TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (recording_id, frame, seq)
		);
		CREATE INDEX IF NOT EXISTS idx_recordings_created ON recordings(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRecording stores a recording and all of its events in one transaction.
// Returns the ID of the inserted record.
func (s *Store) SaveRecording(rec replay.Recording) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	//nolint:errcheck // Rollback after Commit is a no-op
	defer tx.Rollback()

	result, err := tx.Exec(
		"INSERT INTO recordings (seed, backend, player, frames) VALUES (?, ?, ?, ?)",
		rec.Seed, rec.Backend, rec.Player, len(rec.Frames),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save recording: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO recording_events (recording_id, frame, seq, kind, key) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prepare event insert: %w", err)
	}
	defer stmt.Close()

	for frame, events := range rec.Frames {
		for seq, ev := range events {
			key := ""
			if ev.Kind == core.EventKeyDown {
				key = ev.Key.String()
			}
			if _, err := stmt.Exec(id, frame, seq, ev.Kind.String(), key); err != nil {
				return 0, fmt.Errorf("storage: cannot save event: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit recording: %w", err)
	}
	return id, nil
}

// Recording loads a recording with all of its events.
// Returns nil if no recording has the given ID.
func (s *Store) Recording(id int64) (*replay.Recording, error) {
	rec := replay.Recording{ID: id}
	var frames int
	var createdAt any

	err := s.db.QueryRow(
		"SELECT seed, backend, player, frames, created_at FROM recordings WHERE id = ?",
		id,
	).Scan(&rec.Seed, &rec.Backend, &rec.Player, &frames, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recording: %w", err)
	}
	rec.CreatedAt = parseTime(createdAt)
	rec.Frames = make([][]core.Event, frames)

	rows, err := s.db.Query(
		`SELECT frame, kind, key
		 FROM recording_events
		 WHERE recording_id = ?
		 ORDER BY frame, seq`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var frame int
		var kind, key string
		if err := rows.Scan(&frame, &kind, &key); err != nil {
			return nil, fmt.Errorf("storage: cannot scan event: %w", err)
		}
		if frame < 0 || frame >= frames {
			return nil, fmt.Errorf("storage: event frame %d outside recording of %d frames", frame, frames)
		}

		ev := core.QuitEvent()
		if kind != core.EventQuit.String() {
			ev = core.KeyDownEvent(core.ParseKey(key))
		}
		rec.Frames[frame] = append(rec.Frames[frame], ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return &rec, nil
}

// RecentRecordings lists the most recent recordings, newest first.
func (s *Store) RecentRecordings(limit int) ([]RecordingInfo, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT r.id, r.seed, r.backend, r.player, r.frames, r.created_at,
		        (SELECT COUNT(*) FROM recording_events e WHERE e.recording_id = r.id)
		 FROM recordings r
		 ORDER BY r.created_at DESC, r.id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recordings: %w", err)
	}
	defer rows.Close()

	var infos []RecordingInfo
	for rows.Next() {
		var info RecordingInfo
		var createdAt any
		if err := rows.Scan(&info.ID, &info.Seed, &info.Backend, &info.Player,
			&info.Frames, &createdAt, &info.Events); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.CreatedAt = parseTime(createdAt)
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return infos, nil
}

// DeleteRecording removes a recording and its events.
// Returns ErrNotFound if no recording has the given id.
func (s *Store) DeleteRecording(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	//nolint:errcheck // Rollback after Commit is a no-op
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM recording_events WHERE recording_id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete events: %w", err)
	}
	res, err := tx.Exec("DELETE FROM recordings WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete recording: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete recording: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}

// parseTime handles datetime columns returned as either time.Time or string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
