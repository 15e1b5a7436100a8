package rating

import (
	"math"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/goserg/wettkampfwert/internal/domain"
)

const (
	gamesPerExclusion = 6
	maxExclusions     = 4
)

type Calculator struct {
	cfg Config
}

func New(cfg Config) *Calculator {
	return &Calculator{cfg: cfg}
}

type Input struct {
	Matches        []domain.MatchRecord
	StartingRating float64
	// Classification as imported from the player data, e.g. "R5 (3426)".
	// Only used to pick the gender specific threshold table.
	Classification string
}

type Result struct {
	NewRating      float64
	RiskTerm       float64
	Total          float64
	Classification string

	// Excluded losses as positions in the scorable subset of the input.
	ExcludedLossIndices mapset.Set[int]
	// The same losses as positions in Input.Matches.
	ExcludedMatches mapset.Set[int]
	NumExcluded     int

	GamesCounted          int
	DecayFactor           float64
	DecayedStartingRating float64

	Standing Standing
}

type entry struct {
	rating        float64
	listIndex     int
	scorableIndex int
}

// Calculate the rating for a list of matches.
// W0 - starting rating, scaled by the decay factor for the number of games.
// Wins pool as sum(e^Ri), losses as sum(e^-Rj); W0 enters both pools once.
// W = (ln(wins) - ln(losses)) / 2
// R = 1/6 + (ln(wins) + ln(losses)) / 6
// The classification value is W + R.
func (c *Calculator) Calculate(in Input) Result {
	var wins, losses []entry
	n := 0
	for i, m := range in.Matches {
		if !m.Scorable() {
			continue
		}
		e := entry{rating: m.OpponentRating, listIndex: i, scorableIndex: n}
		n++
		if m.Result.IsWinSide() {
			wins = append(wins, e)
		} else {
			losses = append(losses, e)
		}
	}

	res := Result{
		GamesCounted:        len(wins) + len(losses),
		ExcludedLossIndices: mapset.NewSet[int](),
		ExcludedMatches:     mapset.NewSet[int](),
	}
	res.DecayFactor = c.decay(res.GamesCounted)
	res.DecayedStartingRating = in.StartingRating * res.DecayFactor

	res.NumExcluded = res.GamesCounted / gamesPerExclusion
	if res.NumExcluded > maxExclusions {
		res.NumExcluded = maxExclusions
	}
	losses = exclude(losses, res.NumExcluded, res.ExcludedLossIndices, res.ExcludedMatches)

	var expWins, expLosses float64
	for _, e := range wins {
		expWins += math.Exp(e.rating)
	}
	for _, e := range losses {
		expLosses += math.Exp(-e.rating)
	}
	lnWins := math.Log(expWins + math.Exp(res.DecayedStartingRating))
	lnLosses := math.Log(expLosses + math.Exp(-res.DecayedStartingRating))

	res.NewRating = 0.5 * (lnWins - lnLosses)
	res.RiskTerm = 1.0/6 + (lnWins+lnLosses)/6
	res.Total = res.NewRating + res.RiskTerm

	res.Standing, _ = DetectStanding(in.Classification, c.cfg.ClassBoundaries)
	res.Classification = c.classify(res.Total, res.Standing.Gender)
	return res
}

func (c *Calculator) decay(games int) float64 {
	if c.cfg.DecayMax <= 0 {
		return 1
	}
	if games > c.cfg.DecayMax {
		games = c.cfg.DecayMax
	}
	return math.Min(1, c.cfg.DecayBase+(1-c.cfg.DecayBase)*float64(games)/float64(c.cfg.DecayMax))
}

// exclude drops the n losses against the lowest rated opponents and records
// them in the given sets. Ties keep their original order.
func exclude(losses []entry, n int, lossIdx, matchIdx mapset.Set[int]) []entry {
	if n <= 0 || len(losses) == 0 {
		return losses
	}
	sorted := make([]entry, len(losses))
	copy(sorted, losses)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].rating < sorted[j].rating
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	for _, e := range sorted[:n] {
		lossIdx.Add(e.scorableIndex)
		matchIdx.Add(e.listIndex)
	}
	kept := make([]entry, 0, len(losses)-n)
	for _, e := range losses {
		if !lossIdx.Contains(e.scorableIndex) {
			kept = append(kept, e)
		}
	}
	return kept
}

func (c *Calculator) classify(total float64, gender Gender) string {
	table := c.cfg.Thresholds
	if t := c.cfg.GenderThresholds[string(gender)]; gender != "" && len(t) > 0 {
		table = t
	}
	for _, t := range table {
		if t.Value <= total {
			return t.Label
		}
	}
	return c.cfg.FallbackLabel
}

// Rounded returns a copy with every numeric field rounded to three decimals.
func (r Result) Rounded() Result {
	r.NewRating = round3(r.NewRating)
	r.RiskTerm = round3(r.RiskTerm)
	r.Total = round3(r.Total)
	r.DecayFactor = round3(r.DecayFactor)
	r.DecayedStartingRating = round3(r.DecayedStartingRating)
	return r
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
