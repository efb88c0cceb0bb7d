package standings

import (
	"sort"
	"strconv"

	"github.com/tvalik/scoreline/internal/scorecard"
)

// line is the numeric working form of a standings row before formatting.
type line struct {
	name       string
	total      int
	rd         int
	dnf        bool
	holeScores []string
}

// parseScore resolves a raw score token. "E" (even) is zero; anything else
// must be a signed integer relative to par.
func parseScore(token string) (int, bool) {
	if token == "E" {
		return 0, true
	}
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}
	return v, true
}

// startScore derives a player's cumulative standing before the round began.
// A record whose total or round score cannot be resolved is a DNF for
// ranking purposes.
func startScore(record scorecard.RoundRecord) (int, bool) {
	total, okTotal := parseScore(record.TotalScore)
	round, okRound := parseScore(record.RoundScore)
	if !okTotal || !okRound {
		return 0, false
	}
	return total - round, true
}

// formatScore renders a resolved score for display.
func formatScore(v int) string {
	switch {
	case v == Sentinel:
		return "DNF"
	case v == 0:
		return "E"
	case v > 0:
		return "+" + strconv.Itoa(v)
	default:
		return strconv.Itoa(v)
	}
}

// Compute builds the standings table for one round at a holes-completed
// cutoff in [0, 18]. Cutoff 0 yields the pre-round standings; 18 the final
// ones. The computation is a pure function of the records, pars and cutoff.
func Compute(records []scorecard.RoundRecord, pars []int, holes int) []Row {
	lines := make([]line, 0, len(records))
	for _, record := range records {
		l := line{name: record.Name}

		start, ok := startScore(record)
		switch {
		case !ok:
			l.dnf = true
			l.total = Sentinel
			l.rd = Sentinel
			if holes == 0 {
				l.rd = 0
			}
		case holes == 0:
			l.total = start
			l.rd = 0
		default:
			status := Statuses(record.HoleScores, pars)
			n := holes
			if len(status.Diffs) < n {
				n = len(status.Diffs)
			}
			roundToDate := 0
			for _, diff := range status.Diffs[:n] {
				roundToDate += diff
			}
			l.total = start + roundToDate
			l.rd = roundToDate
		}

		if holes > 0 {
			n := holes
			if len(record.HoleScores) < n {
				n = len(record.HoleScores)
			}
			l.holeScores = record.HoleScores[:n]
		} else {
			l.holeScores = []string{}
		}

		lines = append(lines, l)
	}

	// DNF rows sort last regardless of their numeric total. For a mid-round
	// cutoff, ties on total break on round-to-date, then name, so the order
	// is deterministic; the pre-round table keeps the printed order among
	// equal totals.
	sort.SliceStable(lines, func(i, j int) bool {
		a, b := lines[i], lines[j]
		if a.dnf != b.dnf {
			return b.dnf
		}
		if a.total != b.total {
			return a.total < b.total
		}
		if holes == 0 {
			return false
		}
		if a.rd != b.rd {
			return a.rd < b.rd
		}
		return a.name < b.name
	})

	// Competition ("min") ranking on the total: all players sharing a total
	// share the lowest place in the tie group.
	totalCounts := make(map[int]int, len(lines))
	for _, l := range lines {
		totalCounts[l.total]++
	}

	rows := make([]Row, 0, len(lines))
	for _, l := range lines {
		place := 1
		for total, count := range totalCounts {
			if total < l.total {
				place += count
			}
		}
		placeStr := strconv.Itoa(place)
		if totalCounts[l.total] > 1 {
			placeStr = "T" + placeStr
		}
		rows = append(rows, Row{
			Place:      placeStr,
			Name:       l.name,
			Total:      formatScore(l.total),
			Rd:         formatScore(l.rd),
			HoleScores: l.holeScores,
		})
	}
	return rows
}
