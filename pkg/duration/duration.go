// Package duration converts the human-readable duration labels used across
// the course catalog ("15m", "32h", "10:05", "1:15:30") into minutes.
package duration

import (
	"strconv"
	"strings"
)

type kind int

const (
	kindUnparsed kind = iota
	kindColonic
	kindSuffixed
)

// parsed is the intermediate form of a duration label. Exactly one shape is
// populated depending on kind.
type parsed struct {
	kind    kind
	hours   float64
	minutes float64
	seconds float64
	value   float64
	isHours bool
}

// Minutes returns the number of minutes represented by the given label.
// Malformed or empty input yields 0; callers cannot observe a parse failure.
func Minutes(label string) float64 {
	p := parse(label)

	switch p.kind {
	case kindColonic:
		return p.hours*60 + p.minutes + p.seconds/60
	case kindSuffixed:
		if p.isHours {
			return p.value * 60
		}
		return p.value
	default:
		return 0
	}
}

func parse(label string) parsed {
	label = strings.TrimSpace(label)
	if label == "" {
		return parsed{}
	}

	if strings.Contains(label, ":") {
		return parseColonic(label)
	}

	return parseSuffixed(label)
}

// parseColonic handles MM:SS and HH:MM:SS labels. Any other part count is
// treated as unparsed.
func parseColonic(label string) parsed {
	parts := strings.Split(label, ":")
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			v = 0
		}
		values = append(values, v)
	}

	switch len(values) {
	case 2:
		return parsed{kind: kindColonic, minutes: values[0], seconds: values[1]}
	case 3:
		return parsed{kind: kindColonic, hours: values[0], minutes: values[1], seconds: values[2]}
	default:
		return parsed{}
	}
}

// parseSuffixed handles "15m", "1h", "1.5h" and bare numeric labels. The
// numeric value is whatever digits and dots remain after stripping everything
// else; an "h" anywhere in the label marks the value as hours.
func parseSuffixed(label string) parsed {
	var b strings.Builder
	for _, r := range label {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	value, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return parsed{}
	}

	return parsed{
		kind:    kindSuffixed,
		value:   value,
		isHours: strings.ContainsAny(label, "hH"),
	}
}
