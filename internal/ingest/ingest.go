package ingest

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/tvalik/scoreline/internal/metrics"
	"github.com/tvalik/scoreline/internal/pubsub"
	"github.com/tvalik/scoreline/internal/scorecard"
	"github.com/tvalik/scoreline/internal/standings"
	"github.com/tvalik/scoreline/internal/tournament"
)

// New creates a new Ingestor.
func New(library Library, store Store, notifier Notifier, metrics metrics.Metrics, pubsub pubsub.PubSubClient) *Ingestor {
	return &Ingestor{
		library:  library,
		store:    store,
		pubsub:   pubsub,
		notifier: notifier,
		metrics:  metrics,
	}
}

// IngestAll scans the data directory and parses every export whose content
// changed since the last run. Unchanged files are skipped via their content
// hash without re-parsing.
func (ing *Ingestor) IngestAll(dryRun bool) {
	log.Info("Starting tournament ingest...")
	ing.metrics.IncIngestRuns()
	startTime := time.Now()

	files, err := ing.library.ListFiles()
	if err != nil {
		log.Error("Failed to list tournament files", "error", err)
		return
	}

	if len(files) == 0 {
		log.Info("No tournament files found.")
		return
	}

	log.Info("Found tournament files", "count", len(files))
	for _, file := range files {
		ing.ingestFile(file, dryRun)
	}

	duration := time.Since(startTime)
	ing.metrics.ObserveIngestDuration(duration.Seconds())
	log.Info("Tournament ingest finished.", "duration_ms", duration.Milliseconds())
}

func (ing *Ingestor) ingestFile(file string, dryRun bool) {
	lines, hash, err := ing.library.Read(file)
	if err != nil {
		log.Error("Failed to read tournament file", "error", err, "file", file)
		return
	}

	if cached, ok := ing.store.GetContentHash(file); ok && cached == hash {
		log.Debug("File unchanged, skipping parse", "file", file)
		return
	}

	report, err := scorecard.Parse(lines)
	if err != nil {
		ing.metrics.IncParseFailures()
		log.Error("Failed to parse tournament file", "error", err, "file", file)
		return
	}
	ing.metrics.IncTournamentsParsed()

	t := &tournament.Tournament{
		File:             file,
		ContentHash:      hash,
		Details:          report.Details,
		RoundInfo:        report.RoundInfo,
		Course:           report.Course,
		Rounds:           report.Rounds,
		ImportedAt:       time.Now().Unix(),
		ProcessingStatus: tournament.StatusNew,
	}

	if dryRun {
		log.Info("[Dry Run] Would upsert tournament", "file", file, "name", t.Details.Name, "rounds", len(t.Rounds))
		return
	}

	if err := ing.store.Upsert(t); err != nil {
		log.Error("Failed to upsert tournament", "error", err, "file", file)
		return
	}
	log.Info("Ingested tournament", "file", file, "name", t.Details.Name, "rounds", len(t.Rounds))
}

// ProcessTournaments fetches tournaments that need processing and advances
// them through the state machine.
func (ing *Ingestor) ProcessTournaments(dryRun bool) {
	log.Info("Starting tournament processing...")
	tournaments, err := ing.store.GetForProcessing()
	if err != nil {
		log.Error("Failed to get tournaments for processing", "error", err)
		return
	}

	if len(tournaments) == 0 {
		log.Info("No tournaments to process.")
		return
	}

	log.Info("Found tournaments to process", "count", len(tournaments))
	for _, t := range tournaments {
		ing.processTournament(t, dryRun)
	}
	log.Info("Tournament processing finished.")
}

func (ing *Ingestor) processTournament(t *tournament.Tournament, dryRun bool) {
	log.Info("Processing tournament", "file", t.File, "initial_status", t.ProcessingStatus)
	for {
		currentState := t.ProcessingStatus
		log.Debug("Evaluating tournament state", "file", t.File, "status", currentState)

		switch currentState {
		case tournament.StatusNew:
			log.Info("Tournament is new. Announcing import.", "file", t.File)
			if !dryRun {
				ing.pubsub.SendMessage(string(pubsub.EventTournamentImported), t)
			}
			ing.updateStatus(t, tournament.StatusAnnounced, dryRun)

		case tournament.StatusAnnounced:
			log.Info("Tournament announced. Sending notification with final standings.", "file", t.File)
			final := ing.FinalStandings(t)
			if _, err := ing.notifier.SendImportNotification(t, final, dryRun); err != nil {
				// Leave the status untouched so the next run retries.
				log.Error("Failed to send import notification", "error", err, "file", t.File)
				return
			}
			ing.updateStatus(t, tournament.StatusNotified, dryRun)

		case tournament.StatusNotified:
			log.Info("Tournament notified. Marking as complete.", "file", t.File)
			ing.updateStatus(t, tournament.StatusCompleted, dryRun)

		case tournament.StatusCompleted:
			log.Debug("Tournament is complete. No further processing needed.", "file", t.File)
			return // End of the line for this tournament

		default:
			log.Warn("Unknown processing status", "status", currentState, "file", t.File)
			return // Exit if status is unknown
		}

		// If the status hasn't changed, we're done with this tournament for now.
		if t.ProcessingStatus == currentState {
			log.Debug("Tournament state did not change. Finished processing for now.", "file", t.File, "status", currentState)
			break
		}
	}
	log.Info("Finished processing tournament", "file", t.File, "final_status", t.ProcessingStatus)
}

// FinalStandings computes the full-round standings of the latest round.
func (ing *Ingestor) FinalStandings(t *tournament.Tournament) []standings.Row {
	if len(t.Rounds) == 0 {
		return nil
	}
	lastRound := t.Rounds[len(t.Rounds)-1]
	rows := standings.Compute(lastRound, scorecard.Pars(t.Course), scorecard.HoleCount)
	ing.metrics.IncStandingsComputed()
	return rows
}

func (ing *Ingestor) updateStatus(t *tournament.Tournament, newStatus tournament.ProcessingStatus, dryRun bool) {
	if dryRun {
		log.Info("[Dry Run] Would update tournament status", "file", t.File, "from", t.ProcessingStatus, "to", newStatus)
		t.ProcessingStatus = newStatus // Update in-memory for the loop
		return
	}

	err := ing.store.UpdateProcessingStatus(t.File, newStatus)
	if err != nil {
		log.Error("Failed to update processing status", "error", err, "file", t.File)
	} else {
		log.Debug("Successfully updated status", "file", t.File, "from", t.ProcessingStatus, "to", newStatus)
		t.ProcessingStatus = newStatus // Keep the in-memory object in sync
	}
}
