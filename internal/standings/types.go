package standings

// Sentinel marks a score that could not be resolved to a number. It is
// unambiguously worse than any real score and renders as "DNF".
const Sentinel = 999

// HoleStatus holds the derived per-hole state of one player's round: the
// score-vs-par differential and its categorical label, in hole order. It is
// recomputed on demand from the parsed record and never stored.
type HoleStatus struct {
	Diffs  []int    `json:"diffs"`
	Labels []string `json:"labels"`
}

// Row is one line of a computed standings table. Score fields are
// display-formatted ("E", "+3", "-7", "DNF").
type Row struct {
	Place      string   `json:"place"`
	Name       string   `json:"name"`
	Total      string   `json:"total"`
	Rd         string   `json:"rd"`
	HoleScores []string `json:"hole_scores"`
}
