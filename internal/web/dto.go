package web

import (
	"errors"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"

	"github.com/goserg/wettkampfwert/internal/domain"
	"github.com/goserg/wettkampfwert/internal/rating"
)

var ErrEmptyImport = errors.New("kein Text zum Importieren")

type importRequest struct {
	Text string `json:"text" form:"text"`
}

func (r importRequest) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return ErrEmptyImport
	}
	return nil
}

type importResponse struct {
	Added           int      `json:"added"`
	PlayerName      string   `json:"playerName,omitempty"`
	StartingRating  *float64 `json:"startingRating,omitempty"`
	AmbiguousBlocks []int    `json:"ambiguousBlocks,omitempty"`
}

type matchResponse struct {
	Index        int       `json:"index"`
	ID           uuid.UUID `json:"id"`
	Date         string    `json:"date,omitempty"`
	OpponentName string    `json:"opponentName"`
	Rating       string    `json:"rating"`
	Result       string    `json:"result"`
	Score        string    `json:"score,omitempty"`
	Walkover     bool      `json:"walkover"`
	Win          bool      `json:"win"`
	Excluded     bool      `json:"excluded"`
}

func convertMatches(matches []domain.MatchRecord, excluded mapset.Set[int]) []matchResponse {
	converted := make([]matchResponse, 0, len(matches))
	for i, m := range matches {
		r := matchResponse{
			Index:        i,
			ID:           m.ID,
			OpponentName: m.OpponentName,
			Rating:       m.RatingText,
			Result:       string(m.Result),
			Score:        m.Score,
			Walkover:     m.Walkover,
			Win:          m.Result.IsWinSide(),
			Excluded:     excluded.Contains(i),
		}
		if !m.Date.IsZero() {
			r.Date = formatDate(m.Date)
		}
		converted = append(converted, r)
	}
	return converted
}

type resultResponse struct {
	PlayerName            string  `json:"playerName,omitempty"`
	StartingRating        float64 `json:"startingRating"`
	NewRating             float64 `json:"newRating"`
	RiskTerm              float64 `json:"riskTerm"`
	Total                 float64 `json:"total"`
	Classification        string  `json:"classification"`
	GamesCounted          int     `json:"gamesCounted"`
	DecayFactor           float64 `json:"decayFactor"`
	DecayedStartingRating float64 `json:"decayedStartingRating"`
	NumExcluded           int     `json:"numExcluded"`
	ExcludedMatches       []int   `json:"excludedMatches"`
	ExcludedLossIndices   []int   `json:"excludedLossIndices"`
	Gender                string  `json:"gender,omitempty"`
}

func convertResult(res rating.Result, playerName string, startingRating float64) resultResponse {
	res = res.Rounded()
	return resultResponse{
		PlayerName:            playerName,
		StartingRating:        startingRating,
		NewRating:             res.NewRating,
		RiskTerm:              res.RiskTerm,
		Total:                 res.Total,
		Classification:        res.Classification,
		GamesCounted:          res.GamesCounted,
		DecayFactor:           res.DecayFactor,
		DecayedStartingRating: res.DecayedStartingRating,
		NumExcluded:           res.NumExcluded,
		ExcludedMatches:       sortedInts(res.ExcludedMatches),
		ExcludedLossIndices:   sortedInts(res.ExcludedLossIndices),
		Gender:                string(res.Standing.Gender),
	}
}

func sortedInts(s mapset.Set[int]) []int {
	out := s.ToSlice()
	sort.Ints(out)
	return out
}
