package tournament

// TournamentStore defines the interface for the parse-result cache.
type TournamentStore interface {
	Upsert(t *Tournament) error
	UpdateProcessingStatus(file string, status ProcessingStatus) error
	GetForProcessing() ([]*Tournament, error)
	// Get returns the cached tournament for a file, or nil when none is
	// cached.
	Get(file string) (*Tournament, error)
	// GetContentHash returns the cached content hash for a file and whether
	// an entry exists, without decoding the record blobs.
	GetContentHash(file string) (string, bool)
	List() ([]*Tournament, error)
	Clear()
	ClearFile(file string)
}
