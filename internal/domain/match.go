package domain

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

type ResultCode string

const (
	Win             ResultCode = "S"
	Loss            ResultCode = "N"
	WalkoverFor     ResultCode = "W"
	WalkoverAgainst ResultCode = "Z"
)

func ParseResultCode(s string) (ResultCode, bool) {
	switch c := ResultCode(s); c {
	case Win, Loss, WalkoverFor, WalkoverAgainst:
		return c, true
	}
	return "", false
}

func (c ResultCode) IsWalkover() bool {
	return c == WalkoverFor || c == WalkoverAgainst
}

// IsWinSide reports whether the code counts for the player.
func (c ResultCode) IsWinSide() bool {
	return c == Win || c == WalkoverFor
}

type MatchRecord struct {
	ID             uuid.UUID
	Date           time.Time
	OpponentName   string
	OpponentRating float64
	RatingText     string
	HasRating      bool
	Result         ResultCode
	Walkover       bool
	Score          string
}

// Scorable reports whether the record takes part in the calculation.
// A walkover only counts when a score of at least two characters is attached.
func (m MatchRecord) Scorable() bool {
	switch m.Result {
	case Win, Loss:
		return true
	case WalkoverFor, WalkoverAgainst:
		return utf8.RuneCountInString(m.Score) >= 2
	}
	return false
}
