package tournament

import (
	"database/sql"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// New creates a new TournamentStore.
func New(db *sql.DB) TournamentStore {
	return &store{
		db: db,
	}
}

// Upsert inserts a new tournament or updates an existing one. It is "dumb"
// and does not change the processing status of an existing entry unless the
// content hash changed, in which case the entry is re-processed from NEW.
func (s *store) Upsert(t *Tournament) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	courseBlob, err := msgpack.Marshal(t.Course)
	if err != nil {
		return err
	}
	roundsBlob, err := msgpack.Marshal(t.Rounds)
	if err != nil {
		return err
	}

	stmt, err := s.db.Prepare(`
		INSERT INTO tournaments (file, content_hash, name, date, location, round_info, course_blob, rounds_blob, imported_at, processing_status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(file) DO UPDATE SET
			content_hash = excluded.content_hash,
			name = excluded.name,
			date = excluded.date,
			location = excluded.location,
			round_info = excluded.round_info,
			course_blob = excluded.course_blob,
			rounds_blob = excluded.rounds_blob,
			imported_at = excluded.imported_at,
			processing_status = CASE
				WHEN tournaments.content_hash != excluded.content_hash THEN excluded.processing_status
				ELSE tournaments.processing_status
			END;
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.Exec(
		t.File, t.ContentHash,
		t.Details.Name, t.Details.Date, t.Details.Location,
		t.RoundInfo, courseBlob, roundsBlob,
		t.ImportedAt, StatusNew,
	)
	return err
}

// UpdateProcessingStatus transitions a tournament to a new state.
func (s *store) UpdateProcessingStatus(file string, status ProcessingStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("UPDATE tournaments SET processing_status = ? WHERE file = ?", status, file)
	return err
}

// GetForProcessing retrieves all tournaments that are not yet in a completed
// state.
func (s *store) GetForProcessing() ([]*Tournament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(selectColumns+" FROM tournaments WHERE processing_status != ?", StatusCompleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collect(rows)
}

// Get returns the cached tournament for a file, or nil when none is cached.
func (s *store) Get(file string) (*Tournament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(selectColumns+" FROM tournaments WHERE file = ?", file)
	t, err := scanTournament(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return t, err
}

// GetContentHash returns the cached content hash for a file without decoding
// the record blobs.
func (s *store) GetContentHash(file string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var hash string
	err := s.db.QueryRow("SELECT content_hash FROM tournaments WHERE file = ?", file).Scan(&hash)
	if err != nil {
		return "", false
	}
	return hash, true
}

// List returns all cached tournaments, newest file first.
func (s *store) List() ([]*Tournament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(selectColumns + " FROM tournaments ORDER BY file DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collect(rows)
}

// Clear drops every cached tournament.
func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM tournaments"); err != nil {
		log.Error("Failed to clear tournament cache", "error", err)
	}
}

// ClearFile drops a single cached tournament.
func (s *store) ClearFile(file string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM tournaments WHERE file = ?", file); err != nil {
		log.Error("Failed to clear cached tournament", "error", err, "file", file)
	}
}

const selectColumns = "SELECT file, content_hash, name, date, location, round_info, course_blob, rounds_blob, imported_at, processing_status"

func collect(rows *sql.Rows) ([]*Tournament, error) {
	var tournaments []*Tournament
	for rows.Next() {
		t, err := scanTournament(rows)
		if err != nil {
			log.Error("Failed to scan tournament row", "error", err)
			continue
		}
		tournaments = append(tournaments, t)
	}
	return tournaments, rows.Err()
}

// scanTournament is a helper function to scan a single tournament row.
func scanTournament(scanner interface{ Scan(...any) error }) (*Tournament, error) {
	var t Tournament
	var courseBlob, roundsBlob []byte

	err := scanner.Scan(
		&t.File, &t.ContentHash,
		&t.Details.Name, &t.Details.Date, &t.Details.Location,
		&t.RoundInfo, &courseBlob, &roundsBlob,
		&t.ImportedAt, &t.ProcessingStatus,
	)
	if err != nil {
		return nil, err
	}

	if len(courseBlob) > 0 {
		if err := msgpack.Unmarshal(courseBlob, &t.Course); err != nil {
			log.Error("Failed to unmarshal course_blob", "error", err, "file", t.File)
		}
	}
	if len(roundsBlob) > 0 {
		if err := msgpack.Unmarshal(roundsBlob, &t.Rounds); err != nil {
			log.Error("Failed to unmarshal rounds_blob", "error", err, "file", t.File)
		}
	}

	return &t, nil
}
