// Package duration provides human-friendly duration parsing.
package duration

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Calendar approximations. Months are always 30 days and years 365 days;
// callers depend on these exact values.
const (
	Day   = 24 * time.Hour
	Week  = 7 * Day
	Month = 30 * Day
	Year  = 365 * Day
)

var unitMultipliers = map[string]time.Duration{
	"d": Day,
	"w": Week,
	"M": Month, // capital M, lowercase m stays minutes
	"y": Year,
}

var humanPattern = regexp.MustCompile(`(\d+)([ywMd])`)

// Parse extends time.ParseDuration with d, w, M and y units. Compound values
// such as "1w3d" or "1d12h" are accepted, and "0" parses to zero.
//
//	Parse("7d")   // 168h
//	Parse("2w")   // 336h
//	Parse("1d6h") // 30h
func Parse(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty duration string")
	}
	if s == "0" {
		return 0, nil
	}

	var total time.Duration
	for _, match := range humanPattern.FindAllStringSubmatch(s, -1) {
		value, err := strconv.ParseInt(match[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration value %q in %q", match[1], s)
		}
		total += time.Duration(value) * unitMultipliers[match[2]]
	}

	rest := strings.TrimSpace(humanPattern.ReplaceAllString(s, ""))
	if rest == "" {
		return total, nil
	}

	d, err := time.ParseDuration(rest)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w (supported units: ns, us, ms, s, m, h, d, w, M, y)", s, err)
	}
	return total + d, nil
}

// Days returns the whole number of days in d, truncated toward zero.
func Days(d time.Duration) int64 {
	return int64(d / Day)
}
