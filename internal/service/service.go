package service

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/goserg/wettkampfwert/internal/domain"
	"github.com/goserg/wettkampfwert/internal/parser"
	"github.com/goserg/wettkampfwert/internal/rating"
)

var ErrInvalidRating = errors.New("ungültiger Wettkampfwert")

// Session is the mutable state around one imported player: the match list,
// the starting rating and the player data of the last import.
type Session struct {
	parser     *parser.Parser
	calculator *rating.Calculator
	log        *logrus.Entry

	mu             sync.RWMutex
	matches        domain.MatchList
	startingRating float64
	playerName     string
	info           domain.PlayerInfo
}

func New(p *parser.Parser, c *rating.Calculator, startingRating float64, log *logrus.Logger) *Session {
	return &Session{
		parser:         p,
		calculator:     c,
		log:            log.WithField("name", "session"),
		startingRating: startingRating,
		info:           make(domain.PlayerInfo),
	}
}

type ImportSummary struct {
	Added             int
	PlayerName        string
	StartingRating    float64
	StartingRatingSet bool
	AmbiguousBlocks   []parser.Ambiguity
}

// Import parses text and appends the recognized matches. Nothing changes
// when the parser fails.
func (s *Session) Import(text string) (ImportSummary, error) {
	res, err := s.parser.Parse(text)
	if err != nil {
		s.log.WithError(err).Info("import rejected")
		return ImportSummary{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.matches.Append(res.Matches...)
	if res.PlayerName != "" {
		s.playerName = res.PlayerName
	}
	for k, v := range res.Info {
		s.info[k] = v
	}
	if res.HasStartingRating {
		s.startingRating = res.StartingRating
	}
	s.log.WithFields(logrus.Fields{
		"added": len(res.Matches),
		"total": s.matches.Len(),
	}).Info("import done")

	return ImportSummary{
		Added:             len(res.Matches),
		PlayerName:        res.PlayerName,
		StartingRating:    res.StartingRating,
		StartingRatingSet: res.HasStartingRating,
		AmbiguousBlocks:   res.Ambiguities,
	}, nil
}

func (s *Session) Matches() []domain.MatchRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.matches.All()
}

func (s *Session) Remove(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.matches.Remove(i)
}

// Clear drops all matches together with the imported player data.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches.Clear()
	s.playerName = ""
	s.info = make(domain.PlayerInfo)
}

func (s *Session) StartingRating() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.startingRating
}

func (s *Session) SetStartingRating(v float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startingRating = v
}

// SetStartingRatingText accepts "4,871" as well as "4.871".
func (s *Session) SetStartingRatingText(text string) error {
	v, ok := parser.ParseDecimal(text)
	if !ok {
		return ErrInvalidRating
	}
	s.SetStartingRating(v)
	return nil
}

func (s *Session) Player() (string, domain.PlayerInfo) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	info := make(domain.PlayerInfo, len(s.info))
	for k, v := range s.info {
		info[k] = v
	}
	return s.playerName, info
}

// Snapshot is a consistent view of the session: the result is calculated
// over exactly the matches it carries.
type Snapshot struct {
	PlayerName     string
	Info           domain.PlayerInfo
	StartingRating float64
	Matches        []domain.MatchRecord
	Result         rating.Result
}

func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{
		PlayerName:     s.playerName,
		Info:           make(domain.PlayerInfo, len(s.info)),
		StartingRating: s.startingRating,
		Matches:        s.matches.All(),
	}
	for k, v := range s.info {
		snap.Info[k] = v
	}
	snap.Result = s.calculator.Calculate(rating.Input{
		Matches:        snap.Matches,
		StartingRating: snap.StartingRating,
		Classification: snap.Info.Classification(),
	})
	return snap
}

// Calculate runs the calculator over the current match list.
func (s *Session) Calculate() rating.Result {
	return s.Snapshot().Result
}
