package rating

import (
	"regexp"
	"strconv"
)

var standingRegexp = regexp.MustCompile(`([NR]\d)\s*\((\d+)\)`)

// Standing is the player's imported class and rank. Gender is empty when the
// rank fits no configured boundary.
type Standing struct {
	Gender Gender
	Class  string
	Rank   int
	// Ranks between the player and the class minimum / maximum.
	ToUpper int
	ToLower int
}

// DetectStanding reads a classification like "R5 (3426)" and infers the
// gender whose rank range for that class contains the rank. A female match
// wins over a male one.
func DetectStanding(s string, boundaries map[string]map[string][]int) (Standing, bool) {
	m := standingRegexp.FindStringSubmatch(s)
	if m == nil {
		return Standing{}, false
	}
	rank, err := strconv.Atoi(m[2])
	if err != nil {
		return Standing{}, false
	}
	st := Standing{Class: m[1], Rank: rank}
	for _, g := range []Gender{Male, Female} {
		b, ok := boundaries[string(g)][st.Class]
		if !ok || len(b) != 2 || rank < b[0] || rank > b[1] {
			continue
		}
		st.Gender = g
		st.ToUpper = rank - b[0]
		st.ToLower = b[1] - rank
	}
	return st, true
}
