package scorecard

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// Section markers of the fixed report layout. The export carries no field
// delimiters, so everything hangs off these substrings.
const (
	markerTier       = "TIER"
	markerMajor      = "MAJOR"
	markerRoundOne   = "RD 1"
	markerCourse     = "Thru"
	markerPlayers    = "ALL PLAYERS"
	markerEndPlayers = "COLOR ACCESSIBILITY"

	disclaimerPrefix = "CASH LINE"

	// The descriptive round line sits a fixed distance past the "RD 1"
	// marker, after the per-round column headers.
	roundInfoOffset = 3
)

// Clean strips whitespace from every line and drops blank lines and
// disclaimer lines. Order is preserved.
func Clean(lines []string) []string {
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, disclaimerPrefix) {
			continue
		}
		cleaned = append(cleaned, line)
	}
	return cleaned
}

// Locate returns the index of the first line containing marker as a
// substring, or -1 if no line matches.
func Locate(lines []string, marker string) int {
	for i, line := range lines {
		if strings.Contains(line, marker) {
			return i
		}
	}
	return -1
}

// parseDetails reads the tournament name, date and location. Reports either
// carry a "TIER" classification line or are marked "MAJOR"; the three header
// lines follow directly after.
func parseDetails(lines []string) (Details, error) {
	idx := Locate(lines, markerTier)
	if idx == -1 {
		idx = Locate(lines, markerMajor)
	}
	if idx == -1 || idx+3 >= len(lines) {
		return Details{}, &StructureError{Marker: markerTier}
	}
	return Details{
		Name:     lines[idx+1],
		Date:     lines[idx+2],
		Location: lines[idx+3],
	}, nil
}

// parseRoundInfo reads the descriptive round line.
func parseRoundInfo(lines []string) (string, error) {
	idx := Locate(lines, markerRoundOne)
	if idx == -1 || idx+roundInfoOffset >= len(lines) {
		return "", &StructureError{Marker: markerRoundOne}
	}
	return lines[idx+roundInfoOffset], nil
}

// parseCourse reads the 18 (number, length, par) triplets following the
// "Thru" marker. A short or non-numeric tail ends the course early and the
// holes recovered so far are returned; a missing marker is fatal.
func parseCourse(lines []string) ([]Hole, error) {
	idx := Locate(lines, markerCourse)
	if idx == -1 {
		return nil, &StructureError{Marker: markerCourse}
	}

	course := make([]Hole, 0, HoleCount)
	pos := idx + 1
	for len(course) < HoleCount {
		if pos+2 >= len(lines) {
			break
		}
		number, err := strconv.Atoi(lines[pos])
		if err != nil {
			break
		}
		length, err := strconv.Atoi(lines[pos+1])
		if err != nil {
			break
		}
		par, err := strconv.Atoi(lines[pos+2])
		if err != nil {
			break
		}
		course = append(course, Hole{Number: number, Length: length, Par: par})
		pos += 3
	}
	if len(course) < HoleCount {
		log.Warn("Course layout is short, returning recovered holes", "holes", len(course))
	}
	return course, nil
}

// parseRounds walks the report section by section. Each round's records sit
// between an "ALL PLAYERS" marker and a "COLOR ACCESSIBILITY" marker; no
// further start marker means no further rounds, but a section without an end
// marker is a structural failure.
func parseRounds(lines []string) ([][]RoundRecord, error) {
	var rounds [][]RoundRecord
	start := 0
	for start < len(lines) {
		rel := Locate(lines[start:], markerPlayers)
		if rel == -1 {
			break
		}
		start += rel + 1

		endRel := Locate(lines[start:], markerEndPlayers)
		if endRel == -1 {
			return nil, &StructureError{Marker: markerEndPlayers}
		}
		end := start + endRel

		// The opening round of an event has no cumulative total column.
		records := parseRecords(lines[start:end], len(rounds) == 0)
		for i := range records {
			records[i].Name = NormalizeName(records[i].Name)
		}
		rounds = append(rounds, records)

		start = end + 1
	}
	return rounds, nil
}

// Parse reconstructs a full tournament report from the raw export lines.
// Parsing is a pure function of its input: the same lines always yield the
// same report.
func Parse(lines []string) (*Report, error) {
	content := Clean(lines)

	details, err := parseDetails(content)
	if err != nil {
		return nil, err
	}
	roundInfo, err := parseRoundInfo(content)
	if err != nil {
		return nil, err
	}
	course, err := parseCourse(content)
	if err != nil {
		return nil, err
	}
	rounds, err := parseRounds(content)
	if err != nil {
		return nil, err
	}

	return &Report{
		Details:   details,
		RoundInfo: roundInfo,
		Course:    course,
		Rounds:    rounds,
	}, nil
}
