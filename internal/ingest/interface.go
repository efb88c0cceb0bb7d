package ingest

import (
	"github.com/tvalik/scoreline/internal/library"
	"github.com/tvalik/scoreline/internal/notifier"
	"github.com/tvalik/scoreline/internal/tournament"
)

// Store defines the database operations required by the ingestor.
type Store interface {
	Upsert(t *tournament.Tournament) error
	UpdateProcessingStatus(file string, status tournament.ProcessingStatus) error
	GetForProcessing() ([]*tournament.Tournament, error)
	GetContentHash(file string) (string, bool)
}

// Library defines the file operations required by the ingestor.
type Library interface {
	library.TournamentLibrary
}

// Notifier defines the notification operations required by the ingestor.
// This is now an alias for the main notifier interface for decoupling.
type Notifier interface {
	notifier.Notifier
}
