package duration

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// durationPattern captures number, prefix and unit. The prefix group is looser
// than the prefix table so unknown prefixes are reported as such instead of as a
// generic mismatch.
var durationPattern = regexp.MustCompile(
	`(?i)^(\d+(?:\.\d+)?)\s*([a-z]{0,2})\s*(seconds?|minutes?|hours?|days?|weeks?|months?|years?)$`)

// Parse converts duration text to seconds. "Instantly" parses as 0.
func Parse(text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if strings.EqualFold(trimmed, Instantly) {
		return 0, nil
	}

	m := durationPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return 0, &ParseError{Input: text, Reason: "does not match <number> [prefix] <unit>"}
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, &ParseError{Input: text, Reason: "number out of range"}
	}

	mult, ok := LookupPrefix(m[2])
	if !ok {
		return 0, &ParseError{Input: text, Reason: "unknown prefix " + strconv.Quote(m[2])}
	}

	perUnit, ok := LookupUnit(m[3])
	if !ok {
		return 0, &ParseError{Input: text, Reason: "unknown unit " + strconv.Quote(m[3])}
	}

	seconds := value * mult * perUnit
	if math.IsInf(seconds, 0) {
		return 0, &ParseError{Input: text, Reason: "duration out of range"}
	}
	return seconds, nil
}

// MustParse is like Parse but panics on error. Intended for constants in tests
// and fixtures.
func MustParse(text string) float64 {
	s, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return s
}
