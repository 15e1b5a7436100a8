package parser

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"

	"github.com/goserg/wettkampfwert/internal/domain"
)

var (
	licenseRegexp        = regexp.MustCompile(`^\(\d{3}\.\d{2}\.\d{3}\.\d\)$`)
	classificationRegexp = regexp.MustCompile(`^[NR]\d(?:\s*\(\d+\))?$`)
)

// Menu entries that sit right above the license line in some exports,
// stored case folded.
var navigationPhrases = foldAll(
	"Favoriten auswählen",
	"Zurück zur Übersicht",
	"Abmelden",
)

func foldAll(phrases ...string) []string {
	fold := cases.Fold()
	out := make([]string, len(phrases))
	for i, p := range phrases {
		out[i] = fold.String(p)
	}
	return out
}

func isNavigation(fold cases.Caser, line string) bool {
	l := fold.String(line)
	for _, p := range navigationPhrases {
		if strings.Contains(l, p) {
			return true
		}
	}
	return false
}

// findPlayerName returns "<name> <license>" for the first name line followed
// by a license number line.
func findPlayerName(lines []string) string {
	fold := cases.Fold()
	for i := 0; i+1 < len(lines); i++ {
		if !licenseRegexp.MatchString(lines[i+1]) {
			continue
		}
		if isNavigation(fold, lines[i]) || licenseRegexp.MatchString(lines[i]) {
			continue
		}
		return lines[i] + " " + lines[i+1]
	}
	return ""
}

func findPlayerInfo(lines []string, labels []string) domain.PlayerInfo {
	info := make(domain.PlayerInfo)
	for _, label := range labels {
		if v, ok := findLabelValue(lines, label); ok {
			info[label] = v
		}
	}
	return info
}

func findLabelValue(lines []string, label string) (string, bool) {
	for i, line := range lines {
		rest, ok := strings.CutPrefix(line, label)
		if !ok {
			continue
		}
		if rest != "" && rest[0] != ':' && rest[0] != ' ' && rest[0] != '\t' {
			continue
		}
		value := strings.TrimSpace(strings.TrimLeft(rest, ": \t"))
		if value == "" && i+1 < len(lines) {
			value = lines[i+1]
		}
		if value == "" {
			continue
		}
		if label == domain.LabelClassification && !classificationRegexp.MatchString(value) {
			continue
		}
		return value, true
	}
	return "", false
}

func findStartingRating(lines []string) (float64, bool) {
	for i, line := range lines {
		if !strings.EqualFold(line, domain.LabelRating) {
			continue
		}
		if i+1 >= len(lines) {
			return 0, false
		}
		return parseLooseDecimal(lines[i+1])
	}
	return 0, false
}
