package http

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/tvalik/scoreline/internal/library"
	"github.com/tvalik/scoreline/internal/pubsub"
	"github.com/tvalik/scoreline/internal/scorecard"
	"github.com/tvalik/scoreline/internal/standings"
	"github.com/tvalik/scoreline/internal/tournament"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isDryRun := isDryRunFromContext(r)
		file := r.URL.Query().Get("file")
		if file != "" {
			log.Info("Received request to clear a specific tournament", "file", file)
			s.Store.ClearFile(file)
			w.WriteHeader(http.StatusOK)
			fmt.Fprintf(w, "Cleared tournament %s from store!", file)
			log.Info("Successfully cleared tournament from store", "file", file)
		} else {
			log.Info("Received request to clear entire store")
			s.Store.Clear()
			w.WriteHeader(http.StatusOK)
			fmt.Fprint(w, "Store cleared!")
			log.Info("Store cleared successfully")
		}
		if !isDryRun {
			s.pubsub.SendMessage(string(pubsub.EventCacheCleared), file)
		}
	}
}

func (s *Server) IngestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		isDryRun := isDryRunFromContext(r)
		s.MetricsStore.Increment("ingest_requests")

		s.Ingestor.IngestAll(isDryRun)
		s.Ingestor.ProcessTournaments(isDryRun)

		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Ingest completed.")
	}
}

// StatsHandler serves the persistent request counters. Unlike /metrics these
// survive restarts.
func (s *Server) StatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := s.MetricsStore.GetAll()
		if err != nil {
			http.Error(w, "Failed to get stats", http.StatusInternalServerError)
			log.Error("Failed to get stats from store", "error", err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			log.Error("Failed to encode stats to JSON", "error", err)
		}
	}
}

// tournamentListing is the JSON shape of one entry of the library listing.
type tournamentListing struct {
	File        string `json:"file"`
	DisplayName string `json:"display_name"`
	Year        string `json:"year"`
}

func (s *Server) ListTournamentsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		files, err := s.Library.ListFiles()
		if err != nil {
			http.Error(w, "Failed to list tournaments", http.StatusInternalServerError)
			log.Error("Failed to list tournament files", "error", err)
			return
		}

		listings := make([]tournamentListing, 0, len(files))
		for _, file := range files {
			listings = append(listings, tournamentListing{
				File:        file,
				DisplayName: s.Library.DisplayName(file),
				Year:        library.Year(file),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(listings); err != nil {
			log.Error("Failed to encode tournament listing to JSON", "error", err)
		}
	}
}

// loadTournament resolves the "file" query parameter to a tournament, serving
// from the cache when possible and falling back to an on-demand parse. The
// fallback is never written back to the store; the ingest pipeline owns that.
func (s *Server) loadTournament(w http.ResponseWriter, r *http.Request) (*tournament.Tournament, bool) {
	file := r.URL.Query().Get("file")
	if file == "" {
		http.Error(w, "Missing 'file' parameter", http.StatusBadRequest)
		return nil, false
	}

	t, err := s.Store.Get(file)
	if err != nil {
		http.Error(w, "Failed to load tournament", http.StatusInternalServerError)
		log.Error("Failed to load tournament from store", "error", err, "file", file)
		return nil, false
	}
	if t != nil {
		return t, true
	}

	log.Debug("Tournament not cached, parsing on demand", "file", file)
	lines, hash, err := s.Library.Read(file)
	if err != nil {
		http.Error(w, "Tournament not found", http.StatusNotFound)
		log.Warn("Tournament file not readable", "error", err, "file", file)
		return nil, false
	}
	report, err := scorecard.Parse(lines)
	if err != nil {
		http.Error(w, "Failed to parse tournament", http.StatusUnprocessableEntity)
		log.Error("Failed to parse tournament file", "error", err, "file", file)
		return nil, false
	}

	return &tournament.Tournament{
		File:        file,
		ContentHash: hash,
		Details:     report.Details,
		RoundInfo:   report.RoundInfo,
		Course:      report.Course,
		Rounds:      report.Rounds,
	}, true
}

func (s *Server) TournamentDetailsHandler() http.HandlerFunc {
	type detailsResponse struct {
		File        string            `json:"file"`
		DisplayName string            `json:"display_name"`
		Details     scorecard.Details `json:"details"`
		RoundInfo   string            `json:"round_info"`
		Rounds      int               `json:"rounds"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := s.loadTournament(w, r)
		if !ok {
			return
		}

		resp := detailsResponse{
			File:        t.File,
			DisplayName: s.Library.DisplayName(t.File),
			Details:     t.Details,
			RoundInfo:   t.RoundInfo,
			Rounds:      len(t.Rounds),
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.Error("Failed to encode tournament details to JSON", "error", err)
		}
	}
}

func (s *Server) CourseHandler() http.HandlerFunc {
	type courseResponse struct {
		Holes       []scorecard.Hole `json:"holes"`
		TotalLength int              `json:"total_length"`
		TotalPar    int              `json:"total_par"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := s.loadTournament(w, r)
		if !ok {
			return
		}

		resp := courseResponse{Holes: t.Course}
		for _, hole := range t.Course {
			resp.TotalLength += hole.Length
			resp.TotalPar += hole.Par
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			log.Error("Failed to encode course to JSON", "error", err)
		}
	}
}

func (s *Server) CourseCSVHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := s.loadTournament(w, r)
		if !ok {
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		cw := csv.NewWriter(w)
		cw.Write([]string{"Hole", "Distance", "Par"})
		totalLength, totalPar := 0, 0
		for _, hole := range t.Course {
			cw.Write([]string{strconv.Itoa(hole.Number), strconv.Itoa(hole.Length), strconv.Itoa(hole.Par)})
			totalLength += hole.Length
			totalPar += hole.Par
		}
		cw.Write([]string{"TOTAL", strconv.Itoa(totalLength), strconv.Itoa(totalPar)})
		cw.Flush()
		if err := cw.Error(); err != nil {
			log.Error("Failed to write course CSV", "error", err)
		}
	}
}

// standingsForRequest resolves the tournament, round and hole cutoff from the
// request and computes the standings. The round defaults to the latest one
// and the cutoff to the full round.
func (s *Server) standingsForRequest(w http.ResponseWriter, r *http.Request) ([]standings.Row, *tournament.Tournament, bool) {
	t, ok := s.loadTournament(w, r)
	if !ok {
		return nil, nil, false
	}
	if len(t.Rounds) == 0 {
		http.Error(w, "Tournament has no rounds", http.StatusNotFound)
		return nil, nil, false
	}

	round := len(t.Rounds)
	if roundStr := r.URL.Query().Get("round"); roundStr != "" {
		parsed, err := strconv.Atoi(roundStr)
		if err != nil || parsed < 1 || parsed > len(t.Rounds) {
			http.Error(w, fmt.Sprintf("Invalid 'round' parameter, expected 1-%d", len(t.Rounds)), http.StatusBadRequest)
			return nil, nil, false
		}
		round = parsed
	}

	hole := scorecard.HoleCount
	if holeStr := r.URL.Query().Get("hole"); holeStr != "" {
		parsed, err := strconv.Atoi(holeStr)
		if err != nil || parsed < 0 || parsed > scorecard.HoleCount {
			http.Error(w, fmt.Sprintf("Invalid 'hole' parameter, expected 0-%d", scorecard.HoleCount), http.StatusBadRequest)
			return nil, nil, false
		}
		hole = parsed
	}

	rows := standings.Compute(t.Rounds[round-1], scorecard.Pars(t.Course), hole)
	s.Metrics.IncStandingsComputed()
	return rows, t, true
}

func (s *Server) StandingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, _, ok := s.standingsForRequest(w, r)
		if !ok {
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rows); err != nil {
			log.Error("Failed to encode standings to JSON", "error", err)
		}
	}
}

func (s *Server) StandingsCSVHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, _, ok := s.standingsForRequest(w, r)
		if !ok {
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		cw := csv.NewWriter(w)
		header := []string{"Place", "Name", "Total", "Rd"}
		for i := 1; i <= scorecard.HoleCount; i++ {
			header = append(header, fmt.Sprintf("H%d", i))
		}
		cw.Write(header)
		for _, row := range rows {
			record := []string{row.Place, row.Name, row.Total, row.Rd}
			record = append(record, row.HoleScores...)
			// Pad short hole sequences so every row has the full width.
			for len(record) < len(header) {
				record = append(record, "")
			}
			cw.Write(record)
		}
		cw.Flush()
		if err := cw.Error(); err != nil {
			log.Error("Failed to write standings CSV", "error", err)
		}
	}
}

func (s *Server) NotifyStandingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, t, ok := s.standingsForRequest(w, r)
		if !ok {
			return
		}

		isDryRun := isDryRunFromContext(r)
		s.MetricsStore.Increment("standings_notifications")
		if err := s.Notifier.SendStandings(s.Library.DisplayName(t.File), rows, isDryRun); err != nil {
			http.Error(w, "Failed to send standings", http.StatusInternalServerError)
			log.Error("Failed to send standings notification", "error", err, "file", t.File)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Standings sent.")
	}
}
