package scorecard

import "fmt"

// HoleCount is the number of holes in a report's course layout. The export
// format is fixed to 18-hole courses.
const HoleCount = 18

// Details holds the tournament header fields, read verbatim from the report.
type Details struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Location string `json:"location"`
}

// Hole is one entry of the course layout.
type Hole struct {
	Number int `json:"number"`
	Length int `json:"length"` // meters
	Par    int `json:"par"`
}

// RoundRecord is one player's line in a round section. Score fields are kept
// as raw tokens ("E", "-7", "F", ...); coercion happens in the standings
// computation so that parsing stays lossless.
type RoundRecord struct {
	Place      string   `json:"place"`
	Name       string   `json:"name"`
	TotalScore string   `json:"total_score"`
	RoundScore string   `json:"round_score"`
	HoleScores []string `json:"hole_scores"`
	Rating     string   `json:"rating"`
}

// Report is the fully parsed form of one tournament export.
type Report struct {
	Details   Details         `json:"details"`
	RoundInfo string          `json:"round_info"`
	Course    []Hole          `json:"course"`
	Rounds    [][]RoundRecord `json:"rounds"`
}

// StructureError reports that a required section marker is missing from the
// report. It is fatal to the parse of the whole report; no partial result is
// returned alongside it.
type StructureError struct {
	Marker string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("scorecard: required section %q not found", e.Marker)
}

// Pars extracts the par sequence from a course layout.
func Pars(course []Hole) []int {
	pars := make([]int, len(course))
	for i, h := range course {
		pars[i] = h.Par
	}
	return pars
}
