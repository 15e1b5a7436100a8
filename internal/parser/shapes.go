package parser

import (
	"regexp"
	"time"

	"github.com/goserg/wettkampfwert/internal/domain"
)

const dateLayout = "02.01.2006"

type role int

const (
	roleText role = iota
	roleDate
	roleName
	roleRating
	roleScore
	roleResult
)

var (
	dateRegexp  = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)
	scoreRegexp = regexp.MustCompile(`^\d+[:\-]\d+`)
)

func (r role) accepts(line string) bool {
	switch r {
	case roleDate:
		return dateRegexp.MatchString(line)
	case roleRating:
		return decimalRegexp.MatchString(line)
	case roleScore:
		return scoreRegexp.MatchString(line)
	case roleResult:
		_, ok := domain.ParseResultCode(line)
		return ok
	default:
		return line != ""
	}
}

// Shape is a fixed-length block layout: one role per line.
type Shape struct {
	Name  string
	roles []role
}

func (s Shape) Len() int {
	return len(s.roles)
}

func (s Shape) matches(lines []string, at int) bool {
	if at+len(s.roles) > len(lines) {
		return false
	}
	for i, r := range s.roles {
		if !r.accepts(lines[at+i]) {
			return false
		}
	}
	return true
}

func (s Shape) record(lines []string, at int) domain.MatchRecord {
	var m domain.MatchRecord
	for i, r := range s.roles {
		line := lines[at+i]
		switch r {
		case roleDate:
			m.Date, _ = time.Parse(dateLayout, line)
		case roleName:
			m.OpponentName = line
		case roleRating:
			m.RatingText = line
			m.OpponentRating, m.HasRating = ParseDecimal(line)
		case roleScore:
			m.Score = line
		case roleResult:
			m.Result, _ = domain.ParseResultCode(line)
			m.Walkover = m.Result.IsWalkover()
		}
	}
	return m
}

// Shapes are tried in this order; the first one that fits wins.
var defaultShapes = []Shape{
	{
		Name:  "six-line",
		roles: []role{roleDate, roleName, roleRating, roleText, roleScore, roleResult},
	},
	{
		Name:  "seven-line tournament",
		roles: []role{roleDate, roleText, roleName, roleRating, roleText, roleScore, roleResult},
	},
	{
		Name:  "seven-line league",
		roles: []role{roleDate, roleName, roleRating, roleText, roleText, roleScore, roleResult},
	},
	{
		Name:  "eight-line interclub",
		roles: []role{roleDate, roleText, roleText, roleName, roleRating, roleText, roleScore, roleResult},
	},
}
