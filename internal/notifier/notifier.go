package notifier

import (
	"github.com/tvalik/scoreline/internal/standings"
	"github.com/tvalik/scoreline/internal/tournament"
)

// Notifier defines a high-level interface for sending notifications about business events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For freshly imported tournaments; the rows are the final standings of
	// the last round.
	SendImportNotification(t *tournament.Tournament, final []standings.Row, dryRun bool) (string, error)
	// For on-demand standings requests.
	SendStandings(displayName string, rows []standings.Row, dryRun bool) error
}
