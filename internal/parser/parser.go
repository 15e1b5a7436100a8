package parser

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/goserg/wettkampfwert/internal/domain"
)

var ErrNoResults = errors.New("keine gültigen Resultate gefunden, bitte stelle sicher, dass du das komplette Textfeld kopierst")

// Ambiguity marks a block that more than one fixed shape could read.
type Ambiguity struct {
	Line         int
	Chosen       string
	Alternatives []string
}

type Result struct {
	PlayerName        string
	Info              domain.PlayerInfo
	StartingRating    float64
	HasStartingRating bool
	Matches           []domain.MatchRecord
	Ambiguities       []Ambiguity
}

type Parser struct {
	log    *logrus.Entry
	shapes []Shape
	labels []string
}

func New(log *logrus.Logger) *Parser {
	return &Parser{
		log:    log.WithField("name", "parser"),
		shapes: defaultShapes,
		labels: domain.PlayerLabels,
	}
}

// Parse reads one pasted export. It returns ErrNoResults when no match block
// was recognized.
func (p *Parser) Parse(text string) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{}
			err = fmt.Errorf("Fehler beim Parsen: %v", r)
		}
	}()

	lines := splitLines(text)
	res.PlayerName = findPlayerName(lines)
	res.Info = findPlayerInfo(lines, p.labels)
	res.StartingRating, res.HasStartingRating = findStartingRating(lines)
	res.Matches, res.Ambiguities = p.matches(lines)

	log := p.log.WithFields(logrus.Fields{
		"lines":   len(lines),
		"matches": len(res.Matches),
	})
	if len(res.Matches) == 0 {
		log.Debug("no match blocks recognized")
		return Result{}, ErrNoResults
	}
	log.Debug("import parsed")
	return res, nil
}

func (p *Parser) matches(lines []string) ([]domain.MatchRecord, []Ambiguity) {
	var (
		records     []domain.MatchRecord
		ambiguities []Ambiguity
	)
	upper := cases.Upper(language.German)
	for i := 0; i < len(lines); {
		if m, n := labeledBlock(upper, lines, i); n > 0 {
			m.ID = uuid.New()
			records = append(records, m)
			i += n
			continue
		}
		shape, ok, others := p.match(lines, i)
		if !ok {
			i++
			continue
		}
		if len(others) > 0 {
			ambiguities = append(ambiguities, Ambiguity{Line: i, Chosen: shape.Name, Alternatives: others})
			p.log.WithFields(logrus.Fields{
				"line":         i + 1,
				"chosen":       shape.Name,
				"alternatives": others,
			}).Warn("block matches more than one layout")
		}
		m := shape.record(lines, i)
		m.ID = uuid.New()
		records = append(records, m)
		i += shape.Len()
	}
	return records, ambiguities
}

// match returns the first shape that fits at lines[at] along with the names
// of any later shapes that would fit as well.
func (p *Parser) match(lines []string, at int) (Shape, bool, []string) {
	var (
		chosen Shape
		found  bool
		others []string
	)
	for _, s := range p.shapes {
		if !s.matches(lines, at) {
			continue
		}
		if !found {
			chosen, found = s, true
			continue
		}
		others = append(others, s.Name)
	}
	return chosen, found, others
}
