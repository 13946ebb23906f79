package backup

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/dbs3/internal/domain"
)

// DateLayout is the date segment embedded in backup keys.
const DateLayout = "2006-01-02"

const (
	keyStem      = "db-backup-"
	keyExtension = ".sql"
)

// BuildPrefix returns the key prefix shared by every backup of a database.
// The trailing dot separates the prefix from the date segment.
func BuildPrefix(directory, databaseName string) string {
	directory = strings.TrimRight(directory, "/")
	if directory == "" {
		return keyStem + databaseName + "."
	}
	return directory + "/" + keyStem + databaseName + "."
}

// BuildKey appends the date and extension to prefix.
func BuildKey(prefix string, date time.Time) string {
	return prefix + date.Format(DateLayout) + keyExtension
}

// ParseDate extracts the date embedded in key. Only the first dot-separated
// segment after the prefix is read, so extra segments are tolerated.
func ParseDate(key, prefix string) (time.Time, error) {
	rest, ok := strings.CutPrefix(key, prefix)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q does not start with %q", domain.ErrMalformedKey, key, prefix)
	}

	segment, _, _ := strings.Cut(rest, ".")
	date, err := time.Parse(DateLayout, segment)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q has no valid date segment", domain.ErrMalformedKey, key)
	}
	return date, nil
}

// FilterDated keeps the objects whose key has a date segment right after
// prefix. Other keys under the prefix belong to another database (such as
// "app.staging" listed under "app.") or are malformed; their keys are
// returned as skipped.
func FilterDated(objects []domain.BackupObject, prefix string) (dated []domain.BackupObject, skipped []string) {
	for _, obj := range objects {
		if _, err := ParseDate(obj.Key, prefix); err != nil {
			skipped = append(skipped, obj.Key)
			continue
		}
		dated = append(dated, obj)
	}
	return dated, skipped
}

// RotationKey names the weekly-overwritten backup used in daily-rotation mode.
func RotationKey(bucket string, weekday time.Weekday) string {
	return bucket + "." + strings.ToLower(weekday.String()) + keyExtension
}
