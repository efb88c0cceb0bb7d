package scorecard

import "regexp"

// Player names arrive as concatenated capitalized words ("PetrNovák"). A word
// boundary is re-inserted wherever a lowercase letter is directly followed by
// an uppercase one. The classes spell out the Czech diacritics the source
// locale uses, since [a-z] alone would split "Jiří Č..." wrong.
var nameBoundary = regexp.MustCompile(`([a-záéíóúýčďěňřšťžů])([A-ZÁÉÍÓÚÝČĎĚŇŘŠŤŽŮ])`)

// NormalizeName re-inserts spaces into a concatenated player name.
func NormalizeName(name string) string {
	return nameBoundary.ReplaceAllString(name, "$1 $2")
}
