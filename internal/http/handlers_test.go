package http

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tvalik/scoreline/internal/config"
	"github.com/tvalik/scoreline/internal/database"
	"github.com/tvalik/scoreline/internal/ingest"
	"github.com/tvalik/scoreline/internal/library"
	"github.com/tvalik/scoreline/internal/metrics"
	"github.com/tvalik/scoreline/internal/notifier"
	"github.com/tvalik/scoreline/internal/pubsub"
	"github.com/tvalik/scoreline/internal/scorecard"
	"github.com/tvalik/scoreline/internal/standings"
	"github.com/tvalik/scoreline/internal/tournament"
)

// setupTestServer initializes a new server with mock collaborators and an
// in-memory database for the persistent counters.
func setupTestServer(t *testing.T) (*Server, *tournament.MockStore, *library.Mock, *notifier.Mock) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	t.Cleanup(func() {
		dbTeardown()
		db.Close()
	})

	store := tournament.NewMock()
	lib := library.NewMock()
	notif := notifier.NewMock()
	cfg := config.Config{}

	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)
	metricsStore := metrics.New(db)
	metricsHandler := metrics.NewMetricsHandler(reg)
	ps := pubsub.NewMock("TEST")
	ingestor := ingest.New(lib, store, notif, metricsSvc, ps)

	server := NewServer(store, lib, metricsSvc, metricsStore, metricsHandler, cfg, notif, ingestor, ps)
	return server, store, lib, notif
}

// sampleTournament builds a cached tournament with a par-54 course and two
// rounds of three players.
func sampleTournament() *tournament.Tournament {
	course := make([]scorecard.Hole, 0, scorecard.HoleCount)
	for i := 1; i <= scorecard.HoleCount; i++ {
		course = append(course, scorecard.Hole{Number: i, Length: 80 + i, Par: 3})
	}

	pars := make([]string, scorecard.HoleCount)
	for i := range pars {
		pars[i] = "3"
	}
	birdies := append([]string(nil), pars...)
	birdies[0] = "2"
	birdies[1] = "2"

	return &tournament.Tournament{
		File:        "2025_prague.csv",
		ContentHash: "hash-1",
		Details: scorecard.Details{
			Name:     "Prague Open",
			Date:     "23.8.2025",
			Location: "Prague",
		},
		RoundInfo: "Round 2 finished",
		Course:    course,
		Rounds: [][]scorecard.RoundRecord{
			{
				{Place: "1", Name: "Petr Novák", TotalScore: "-2", RoundScore: "-2", HoleScores: birdies},
				{Place: "2", Name: "Jana Malá", TotalScore: "E", RoundScore: "E", HoleScores: pars},
			},
			{
				{Place: "1", Name: "Petr Novák", TotalScore: "-4", RoundScore: "-2", HoleScores: birdies},
				{Place: "2", Name: "Jana Malá", TotalScore: "E", RoundScore: "E", HoleScores: pars},
			},
		},
		ProcessingStatus: tournament.StatusCompleted,
	}
}

func TestHealthCheckHandler(t *testing.T) {
	server, _, _, _ := setupTestServer(t)

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK!", rr.Body.String())
}

func TestClearStoreHandler(t *testing.T) {
	t.Run("clears the entire store", func(t *testing.T) {
		server, store, _, _ := setupTestServer(t)

		req := httptest.NewRequest("GET", "/clear", nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 1, store.ClearCalls)
	})

	t.Run("clears a single file", func(t *testing.T) {
		server, store, _, _ := setupTestServer(t)

		req := httptest.NewRequest("GET", "/clear?file=2025_prague.csv", nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 0, store.ClearCalls)
		assert.Equal(t, []string{"2025_prague.csv"}, store.ClearFileCalls)
	})
}

func TestListTournamentsHandler(t *testing.T) {
	server, _, lib, _ := setupTestServer(t)

	lib.ListFilesFunc = func() ([]string, error) {
		return []string{"2025_prague.csv", "2024_brno.csv"}, nil
	}
	lib.DisplayNameFunc = func(file string) string {
		if file == "2025_prague.csv" {
			return "Prague Open 2025"
		}
		return file
	}

	req := httptest.NewRequest("GET", "/tournaments", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var listings []tournamentListing
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listings))
	require.Len(t, listings, 2)
	assert.Equal(t, "Prague Open 2025", listings[0].DisplayName)
	assert.Equal(t, "2025", listings[0].Year)
	assert.Equal(t, "2024_brno.csv", listings[1].DisplayName)
}

func TestTournamentDetailsHandler(t *testing.T) {
	t.Run("serves cached tournament", func(t *testing.T) {
		server, store, _, _ := setupTestServer(t)
		store.GetFunc = func(file string) (*tournament.Tournament, error) {
			return sampleTournament(), nil
		}

		req := httptest.NewRequest("GET", "/tournaments/details?file=2025_prague.csv", nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var resp struct {
			File      string `json:"file"`
			RoundInfo string `json:"round_info"`
			Rounds    int    `json:"rounds"`
			Details   struct {
				Name string `json:"name"`
			} `json:"details"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "2025_prague.csv", resp.File)
		assert.Equal(t, "Prague Open", resp.Details.Name)
		assert.Equal(t, "Round 2 finished", resp.RoundInfo)
		assert.Equal(t, 2, resp.Rounds)
	})

	t.Run("missing file parameter is a bad request", func(t *testing.T) {
		server, _, _, _ := setupTestServer(t)

		req := httptest.NewRequest("GET", "/tournaments/details", nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("unknown file is a 404", func(t *testing.T) {
		server, _, lib, _ := setupTestServer(t)
		lib.ReadFunc = func(file string) ([]string, string, error) {
			return nil, "", assert.AnError
		}

		req := httptest.NewRequest("GET", "/tournaments/details?file=nope.csv", nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCourseHandler(t *testing.T) {
	server, store, _, _ := setupTestServer(t)
	store.GetFunc = func(file string) (*tournament.Tournament, error) {
		return sampleTournament(), nil
	}

	req := httptest.NewRequest("GET", "/tournaments/course?file=2025_prague.csv", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Holes       []scorecard.Hole `json:"holes"`
		TotalLength int              `json:"total_length"`
		TotalPar    int              `json:"total_par"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Holes, scorecard.HoleCount)
	assert.Equal(t, 54, resp.TotalPar)
	wantLength := 0
	for i := 1; i <= scorecard.HoleCount; i++ {
		wantLength += 80 + i
	}
	assert.Equal(t, wantLength, resp.TotalLength)
}

func TestCourseCSVHandler(t *testing.T) {
	server, store, _, _ := setupTestServer(t)
	store.GetFunc = func(file string) (*tournament.Tournament, error) {
		return sampleTournament(), nil
	}

	req := httptest.NewRequest("GET", "/tournaments/course.csv?file=2025_prague.csv", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))

	records, err := csv.NewReader(strings.NewReader(rr.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1+scorecard.HoleCount+1, "header, 18 holes, total row")
	assert.Equal(t, []string{"Hole", "Distance", "Par"}, records[0])
	assert.Equal(t, []string{"1", "81", "3"}, records[1])
	assert.Equal(t, "TOTAL", records[len(records)-1][0])
	assert.Equal(t, "54", records[len(records)-1][2])
}

func TestStandingsHandler(t *testing.T) {
	t.Run("defaults to the last round, full cutoff", func(t *testing.T) {
		server, store, _, _ := setupTestServer(t)
		store.GetFunc = func(file string) (*tournament.Tournament, error) {
			return sampleTournament(), nil
		}

		req := httptest.NewRequest("GET", "/tournaments/standings?file=2025_prague.csv", nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var rows []standings.Row
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rows))
		require.Len(t, rows, 2)
		assert.Equal(t, "1", rows[0].Place)
		assert.Equal(t, "Petr Novák", rows[0].Name)
		assert.Equal(t, "-4", rows[0].Total)
		assert.Equal(t, "-2", rows[0].Rd)
	})

	t.Run("honors round and hole parameters", func(t *testing.T) {
		server, store, _, _ := setupTestServer(t)
		store.GetFunc = func(file string) (*tournament.Tournament, error) {
			return sampleTournament(), nil
		}

		// Round 1 after a single hole: Petr's birdie on hole 1 counts, the
		// rest of the round does not yet.
		req := httptest.NewRequest("GET", "/tournaments/standings?file=2025_prague.csv&round=1&hole=1", nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var rows []standings.Row
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rows))
		require.Len(t, rows, 2)
		assert.Equal(t, "Petr Novák", rows[0].Name)
		assert.Equal(t, "-1", rows[0].Total)
		assert.Equal(t, "-1", rows[0].Rd)
		require.Len(t, rows[0].HoleScores, 1)
	})

	t.Run("rejects out-of-range parameters", func(t *testing.T) {
		server, store, _, _ := setupTestServer(t)
		store.GetFunc = func(file string) (*tournament.Tournament, error) {
			return sampleTournament(), nil
		}

		for _, query := range []string{"round=3", "round=0", "hole=19", "hole=-1", "round=abc"} {
			req := httptest.NewRequest("GET", "/tournaments/standings?file=2025_prague.csv&"+query, nil)
			rr := httptest.NewRecorder()
			server.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusBadRequest, rr.Code, "query %q should be rejected", query)
		}
	})
}

func TestStandingsCSVHandler(t *testing.T) {
	server, store, _, _ := setupTestServer(t)
	store.GetFunc = func(file string) (*tournament.Tournament, error) {
		return sampleTournament(), nil
	}

	req := httptest.NewRequest("GET", "/tournaments/standings.csv?file=2025_prague.csv", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	records, err := csv.NewReader(strings.NewReader(rr.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header and two players")
	assert.Equal(t, 4+scorecard.HoleCount, len(records[0]))
	assert.Equal(t, "H18", records[0][len(records[0])-1])
	assert.Equal(t, []string{"1", "Petr Novák", "-4", "-2"}, records[1][:4])
}

func TestIngestHandler(t *testing.T) {
	server, store, lib, _ := setupTestServer(t)

	lib.ListFilesFunc = func() ([]string, error) {
		return nil, nil
	}
	store.GetForProcessingFunc = func() ([]*tournament.Tournament, error) {
		return nil, nil
	}

	req := httptest.NewRequest("GET", "/ingest", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Ingest completed.")
}

func TestNotifyStandingsHandler(t *testing.T) {
	server, store, lib, notif := setupTestServer(t)
	store.GetFunc = func(file string) (*tournament.Tournament, error) {
		return sampleTournament(), nil
	}
	lib.DisplayNameFunc = func(file string) string {
		return "Prague Open 2025"
	}

	req := httptest.NewRequest("GET", "/notify-standings?file=2025_prague.csv", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, notif.SendStandingsCalls, 1)
	call := notif.SendStandingsCalls[0]
	assert.Equal(t, "Prague Open 2025", call.DisplayName)
	require.Len(t, call.Rows, 2)
	assert.Equal(t, "Petr Novák", call.Rows[0].Name)
}

func TestMetricsEndpoint(t *testing.T) {
	server, _, _, _ := setupTestServer(t)

	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestStatsHandler(t *testing.T) {
	server, store, lib, _ := setupTestServer(t)

	lib.ListFilesFunc = func() ([]string, error) { return nil, nil }
	store.GetForProcessingFunc = func() ([]*tournament.Tournament, error) { return nil, nil }

	// Two ingest requests, then read the persistent counters back.
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest("GET", "/ingest", nil)
		rr := httptest.NewRecorder()
		server.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
	}

	req := httptest.NewRequest("GET", "/stats", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var stats map[string]int
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats["ingest_requests"])
}

func TestDryRunParameterReachesIngest(t *testing.T) {
	server, store, lib, _ := setupTestServer(t)

	lines := []string{"PRO TOUR", "TIER A", "Prague Open", "23.8.2025", "Prague", "RD 1", "PAR", "SCORE", "Round 1 finished", "Hole", "Distance", "Thru"}
	for i := 1; i <= scorecard.HoleCount; i++ {
		lines = append(lines, strconv.Itoa(i), strconv.Itoa(80+i), "3")
	}
	lines = append(lines, "ALL PLAYERS", "1", "PetrNovák", "-4", "50")
	for i := 0; i < scorecard.HoleCount; i++ {
		lines = append(lines, "3")
	}
	lines = append(lines, "RATING", "1012", "COLOR ACCESSIBILITY")

	lib.ListFilesFunc = func() ([]string, error) {
		return []string{"2025_prague.csv"}, nil
	}
	lib.ReadFunc = func(file string) ([]string, string, error) {
		return lines, "hash-1", nil
	}

	req := httptest.NewRequest("GET", "/ingest?dry_run=true", nil)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, store.UpsertCalls, "Dry run must not write to the store")
}
