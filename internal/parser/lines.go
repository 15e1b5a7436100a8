package parser

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var lineBreaks = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	"\u2028", "\n",
	"\u2029", "\n",
	"\u200b", "\n",
	"\u00a0", "\n",
	"\ufeff", "\n",
)

// splitLines turns pasted text into its non-empty trimmed lines.
func splitLines(text string) []string {
	text = lineBreaks.Replace(norm.NFC.String(text))
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

var (
	decimalRegexp      = regexp.MustCompile(`^\d+(?:[.,]\d+)?$`)
	looseDecimalRegexp = regexp.MustCompile(`^[\d.,]+$`)
)

// ParseDecimal parses a rating written with a comma or a dot as decimal separator.
func ParseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !decimalRegexp.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseLooseDecimal accepts any run of digits, dots and commas as long as the
// result is a valid number once commas are read as dots.
func parseLooseDecimal(s string) (float64, bool) {
	if !looseDecimalRegexp.MatchString(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
