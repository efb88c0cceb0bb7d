package library

// TournamentLibrary is the catalog of tournament export files on disk,
// together with their human-readable display names.
type TournamentLibrary interface {
	// ListFiles returns the export files in the data directory, newest
	// first (file names start with the year).
	ListFiles() ([]string, error)
	// DisplayName resolves a file to its mapped display name, falling back
	// to the raw file name.
	DisplayName(file string) string
	// Read loads an export file and returns its lines along with the
	// SHA-256 hex digest of the raw content.
	Read(file string) ([]string, string, error)
}
