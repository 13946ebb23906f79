package domain

import "strings"

// SanitizeFileComponent makes a database name safe to use as a single local
// path element. Blank or dot-only names collapse to "unknown".
func SanitizeFileComponent(input string) string {
	clean := strings.Trim(strings.TrimSpace(input), ".")
	if clean == "" {
		return "unknown"
	}
	replacer := strings.NewReplacer("/", "_", "\\", "_", ":", "_", " ", "_")
	return replacer.Replace(clean)
}
