package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedBracket = errors.New("malformed experience bracket")

// DefaultBrackets are the experience filter options offered to users.
var DefaultBrackets = []string{"0-2", "3-5", "6-10", "10+"}

// Bracket is an inclusive range of years of experience. A nil Max means no upper bound.
type Bracket struct {
	Label string
	Min   int
	Max   *int
}

// ParseBracket understands "6-10", "10+" and a bare "7" (7 or more).
func ParseBracket(label string) (Bracket, error) {
	trimmed := strings.TrimSpace(label)
	bracket := Bracket{Label: label}

	lower, upper, hasUpper := strings.Cut(trimmed, "-")
	lower = strings.TrimSuffix(strings.TrimSpace(lower), "+")

	lowerBound, err := strconv.Atoi(strings.TrimSpace(lower))
	if err != nil || lowerBound < 0 {
		return Bracket{}, fmt.Errorf("%w: %q has no lower bound", ErrMalformedBracket, label)
	}
	bracket.Min = lowerBound

	if hasUpper {
		upperBound, err := strconv.Atoi(strings.TrimSpace(upper))
		if err != nil || upperBound < lowerBound {
			return Bracket{}, fmt.Errorf("%w: %q has an invalid upper bound", ErrMalformedBracket, label)
		}
		bracket.Max = &upperBound
	}

	return bracket, nil
}

func (b Bracket) Contains(years int) bool {
	if years < b.Min {
		return false
	}
	return b.Max == nil || years <= *b.Max
}
