// Package bytesize converts between byte counts and human-friendly sizes.
//
// Both directions use binary (1024-based) multiples under the short names
// B, KB, MB and so on.
package bytesize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Units lists every suffix Format can produce, smallest first.
var Units = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// parseUnits are the suffixes Parse accepts; larger ones cannot fit an int64.
var parseUnits = map[string]int64{
	"B":  1,
	"KB": 1 << 10,
	"MB": 1 << 20,
	"GB": 1 << 30,
	"TB": 1 << 40,
	"PB": 1 << 50,
}

// Format renders n with one decimal digit, scaling by 1024 until the
// magnitude drops below 1024 or the largest unit is reached.
//
//	Format(1023)    // "1023.0B"
//	Format(1536)    // "1.5KB"
//	Format(1 << 20) // "1.0MB"
func Format(n int64) string {
	value := float64(n)
	for _, unit := range Units[:len(Units)-1] {
		if math.Abs(value) < 1024 {
			return fmt.Sprintf("%.1f%s", value, unit)
		}
		value /= 1024
	}
	return fmt.Sprintf("%.1f%s", value, Units[len(Units)-1])
}

// Parse parses a human-friendly byte size string such as "16MB" or "1.5GB".
// Units are case-insensitive; B, KB, MB, GB, TB and PB are supported.
func Parse(s string) (int64, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return 0, fmt.Errorf("empty size string")
	}

	// Longest suffix first so "KB" is not read as "B".
	var unit, valueStr string
	for _, u := range []string{"PB", "TB", "GB", "MB", "KB", "B"} {
		if strings.HasSuffix(s, u) {
			unit = u
			valueStr = strings.TrimSpace(strings.TrimSuffix(s, u))
			break
		}
	}
	if unit == "" {
		return 0, fmt.Errorf("invalid size %q: missing unit (supported: B, KB, MB, GB, TB, PB)", s)
	}
	if valueStr == "" {
		return 0, fmt.Errorf("invalid size %q: missing numeric value", s)
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size value %q in %q: %w", valueStr, s, err)
	}
	if value < 0 {
		return 0, fmt.Errorf("invalid size %q: negative value not allowed", s)
	}

	result := value * float64(parseUnits[unit])
	if result > math.MaxInt64 {
		return 0, fmt.Errorf("size %q exceeds maximum allowed value", s)
	}
	return int64(result), nil
}
