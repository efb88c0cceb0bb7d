package scorecard

// The round section is a flat token stream with one token per line and no
// schema. Each record is consumed positionally:
//
//	place [movement] name score... strokes h1..h18 ratingLabel rating
//
// where "movement" is an optional purely numeric place-change indicator
// (discarded), the score block is a single token in the opening round (used
// as both total and round score) or a total/round pair in later rounds,
// "strokes" and "ratingLabel" are discarded, and the 18 hole tokens are kept
// verbatim, numeric or not.

// isMovement reports whether a token is a purely numeric place-change
// indicator.
func isMovement(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseRecords consumes one round's token stream record by record. A record
// that runs out of tokens mid-consumption is discarded and parsing of the
// round stops; this lenient termination is intentional and mirrors the
// report's ragged tail behaviour.
func parseRecords(tokens []string, firstRound bool) []RoundRecord {
	var records []RoundRecord
	i := 0
	for i < len(tokens) {
		record, next, ok := consumeRecord(tokens, i, firstRound)
		if !ok {
			break
		}
		records = append(records, record)
		i = next
	}
	return records
}

// consumeRecord reads a single player record starting at token i. It returns
// the record, the index of the next record, and whether the stream held a
// complete record.
func consumeRecord(tokens []string, i int, firstRound bool) (RoundRecord, int, bool) {
	var record RoundRecord

	if i >= len(tokens) {
		return record, i, false
	}
	record.Place = tokens[i]
	i++

	if i < len(tokens) && isMovement(tokens[i]) {
		i++ // movement indicator, not stored
	}

	if i >= len(tokens) {
		return record, i, false
	}
	record.Name = tokens[i]

	if firstRound {
		if i+1 >= len(tokens) {
			return record, i, false
		}
		// The opening round carries a single score column; it doubles as
		// the cumulative total since scoring accumulates from zero.
		record.RoundScore = tokens[i+1]
		record.TotalScore = tokens[i+1]
		i += 3 // name, score, stroke count (discarded)
	} else {
		if i+2 >= len(tokens) {
			return record, i, false
		}
		record.TotalScore = tokens[i+1]
		record.RoundScore = tokens[i+2]
		i += 4 // name, total, round, stroke count (discarded)
	}

	// The rating pair sits directly after the hole tokens; requiring it
	// also guarantees all 18 hole tokens are present.
	if i+HoleCount+1 >= len(tokens) {
		return record, i, false
	}
	record.HoleScores = append([]string(nil), tokens[i:i+HoleCount]...)
	i += HoleCount

	record.Rating = tokens[i+1] // first token of the pair is a label, discarded
	i += 2

	return record, i, true
}
