package parser

import (
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/text/cases"

	"github.com/goserg/wettkampfwert/internal/domain"
)

const (
	labelDate       = "DATUM"
	maxLabeledPairs = 12
)

var (
	opponentLabels = mapset.NewSet[string]("GEGNER", "GEGNER/IN", "GEGNERIN", "NAME")
	ratingLabels   = mapset.NewSet[string]("WW", "WW GEGNER", "WW-GEGNER", "WETTKAMPFWERT", "WETTKAMPFWERT GEGNER")
	resultLabels   = mapset.NewSet[string]("S/N", "ENTSCHEID", "SIEG/NIEDERLAGE")
	scoreLabels    = mapset.NewSet[string]("RESULTAT", "SCORE", "SPIELSTAND")

	blockLabels = opponentLabels.Union(ratingLabels).Union(resultLabels).Union(scoreLabels)
)

// labeledBlock reads a "DATUM" block made of label/value line pairs starting
// at lines[at]. The block ends at the next DATUM label, at a bare date line
// (start of a positional block) or after maxLabeledPairs pairs. A label whose
// value line is missing reads as empty. It returns the number of consumed
// lines, or 0 when no record could be built.
func labeledBlock(upper cases.Caser, lines []string, at int) (domain.MatchRecord, int) {
	if at+1 >= len(lines) || upper.String(lines[at]) != labelDate || !dateRegexp.MatchString(lines[at+1]) {
		return domain.MatchRecord{}, 0
	}
	var (
		m         domain.MatchRecord
		hasResult bool
	)
	m.Date, _ = time.Parse(dateLayout, lines[at+1])

	i := at + 2
	for pairs := 1; pairs < maxLabeledPairs && i+1 < len(lines); pairs++ {
		label := upper.String(lines[i])
		if label == labelDate || dateRegexp.MatchString(label) {
			break
		}
		value, step := lines[i+1], 2
		if isBlockHeader(upper, value) {
			value, step = "", 1
		}
		switch {
		case opponentLabels.Contains(label):
			m.OpponentName = value
		case ratingLabels.Contains(label):
			if v, ok := ParseDecimal(value); ok {
				m.OpponentRating, m.HasRating = v, true
				m.RatingText = value
			}
		case resultLabels.Contains(label):
			if c, ok := domain.ParseResultCode(upper.String(value)); ok {
				m.Result, m.Walkover, hasResult = c, c.IsWalkover(), true
			}
		case scoreLabels.Contains(label):
			m.Score = value
		}
		i += step
	}
	if m.OpponentName == "" || !hasResult {
		return domain.MatchRecord{}, 0
	}
	return m, i - at
}

// isBlockHeader reports whether line starts a new pair or a new block rather
// than carrying a value.
func isBlockHeader(upper cases.Caser, line string) bool {
	l := upper.String(line)
	return l == labelDate || dateRegexp.MatchString(l) || blockLabels.Contains(l)
}
