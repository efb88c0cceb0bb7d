package tournament

import (
	"database/sql"
	"sync"

	"github.com/tvalik/scoreline/internal/scorecard"
)

// store handles all database operations for cached tournaments.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// ProcessingStatus defines the internal processing state of an imported
// tournament.
type ProcessingStatus string

const (
	StatusNew       ProcessingStatus = "NEW"
	StatusAnnounced ProcessingStatus = "ANNOUNCED"
	StatusNotified  ProcessingStatus = "NOTIFIED"
	StatusCompleted ProcessingStatus = "COMPLETED"
)

// Tournament is one cached parse result, keyed by the export file it came
// from. The content hash makes the cache transparent: a changed file is
// re-parsed, an unchanged one never is, and either way the records are a
// pure function of the file content.
type Tournament struct {
	File             string                    `json:"file"`
	ContentHash      string                    `json:"content_hash"`
	Details          scorecard.Details         `json:"details"`
	RoundInfo        string                    `json:"round_info"`
	Course           []scorecard.Hole          `json:"course"`
	Rounds           [][]scorecard.RoundRecord `json:"rounds"`
	ImportedAt       int64                     `json:"imported_at"`
	ProcessingStatus ProcessingStatus          `json:"processing_status"`
}
