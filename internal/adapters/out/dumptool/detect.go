package dumptool

import (
	"strings"

	"github.com/bnema/dbs3/internal/domain"
)

// DetectEngine guesses the database engine from a container image reference.
func DetectEngine(image string) (domain.DBEngine, bool) {
	repo := strings.ToLower(image)
	if i := strings.LastIndex(repo, ":"); i > strings.LastIndex(repo, "/") {
		repo = repo[:i]
	}

	switch {
	case strings.Contains(repo, "postgres"), strings.Contains(repo, "postgis"):
		return domain.DBEnginePostgres, true
	case strings.Contains(repo, "mysql"), strings.Contains(repo, "mariadb"), strings.Contains(repo, "percona"):
		return domain.DBEngineMySQL, true
	default:
		return "", false
	}
}

// VersionFromImage returns the leading dotted-numeric part of the image tag,
// e.g. "16.2" for "postgres:16.2-alpine". It returns "" when the tag has none.
func VersionFromImage(image string) string {
	lastColon := strings.LastIndex(image, ":")
	if lastColon == -1 || lastColon < strings.LastIndex(image, "/") {
		return ""
	}
	tag := strings.TrimSpace(image[lastColon+1:])

	end := 0
	for end < len(tag) && (tag[end] == '.' || (tag[end] >= '0' && tag[end] <= '9')) {
		end++
	}
	return strings.Trim(tag[:end], ".")
}
