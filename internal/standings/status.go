package standings

import (
	"fmt"
	"strconv"
)

// labels maps a score-vs-par differential to its category.
var labels = map[int]string{
	-4: "CONDOR",
	-3: "ALBATROSS",
	-2: "EAGLE",
	-1: "BIRDIE",
	0:  "PAR",
	1:  "BOGEY",
	2:  "DOUBLE BOGEY",
	3:  "TRIPLE BOGEY",
	4:  "QUADRUPLE BOGEY",
	5:  "QUINTUPLE BOGEY",
}

// labelFor categorizes a single hole. An ace shares its differential with an
// eagle (par 3) or albatross (par 4) but is called out explicitly.
func labelFor(diff, par int) string {
	if (diff == -2 && par == 3) || (diff == -3 && par == 4) {
		return "HOLE IN ONE"
	}
	if label, ok := labels[diff]; ok {
		return label
	}
	return fmt.Sprintf("%dx BOGEY", diff)
}

// Statuses derives the per-hole differentials and labels for one player's
// hole score tokens against the course pars. Non-numeric tokens (unfinished
// or forfeited holes) substitute the sentinel so the hole sorts worse than
// any real score. Short inputs are zipped to the shorter length.
func Statuses(holeScores []string, pars []int) HoleStatus {
	n := len(holeScores)
	if len(pars) < n {
		n = len(pars)
	}

	status := HoleStatus{
		Diffs:  make([]int, 0, n),
		Labels: make([]string, 0, n),
	}
	for i := 0; i < n; i++ {
		score, err := strconv.Atoi(holeScores[i])
		if err != nil {
			score = Sentinel
		}
		diff := score - pars[i]
		status.Diffs = append(status.Diffs, diff)
		status.Labels = append(status.Labels, labelFor(diff, pars[i]))
	}
	return status
}
