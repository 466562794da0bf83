// Package duration parses and formats the ISO-8601-style duration strings
// flight providers attach to itineraries ("PT5H30M", "PT45M", "PT2H").
package duration

import (
	"fmt"
	"regexp"
	"strconv"
)

var pattern = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?`)

// Minutes converts a duration string to total minutes. Hour and minute
// components are both optional and default to zero; malformed input yields 0.
func Minutes(s string) int {
	h, m, ok := components(s)
	if !ok {
		return 0
	}
	return h*60 + m
}

// Format renders a duration string for display: "5h 30m", "5h", "45m".
// Strings that do not parse are returned unchanged.
func Format(s string) string {
	h, m, ok := components(s)
	if !ok {
		return s
	}
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dm", h, m)
	}
}

func components(s string) (hours, minutes int, ok bool) {
	if s == "" {
		return 0, 0, false
	}
	matches := pattern.FindStringSubmatch(s)
	if matches == nil {
		return 0, 0, false
	}
	if matches[1] != "" {
		hours, _ = strconv.Atoi(matches[1])
	}
	if matches[2] != "" {
		minutes, _ = strconv.Atoi(matches[2])
	}
	return hours, minutes, true
}
