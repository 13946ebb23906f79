package backup

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/bnema/dbs3/internal/domain"
	"github.com/bnema/dbs3/pkg/bytesize"
	"github.com/bnema/dbs3/pkg/duration"
)

// MostRecent returns the object with the greatest LastModified.
func MostRecent(objects []domain.BackupObject) (domain.BackupObject, error) {
	if len(objects) == 0 {
		return domain.BackupObject{}, domain.ErrNoBackupsFound
	}
	return slices.MaxFunc(objects, func(a, b domain.BackupObject) int {
		return a.LastModified.Compare(b.LastModified)
	}), nil
}

// DescribeForChoice yields display rows newest first. The input is copied
// up front, so the sequence can be ranged over more than once and later
// changes to objects are not observed.
func DescribeForChoice(objects []domain.BackupObject, now time.Time) iter.Seq[domain.BackupRow] {
	sorted := slices.Clone(objects)
	slices.SortStableFunc(sorted, func(a, b domain.BackupObject) int {
		return b.LastModified.Compare(a.LastModified)
	})

	return func(yield func(domain.BackupRow) bool) {
		for _, obj := range sorted {
			row := domain.BackupRow{
				Key:          obj.Key,
				HumanAge:     HumanAge(obj.LastModified, now),
				HumanSize:    HumanSize(obj.SizeBytes),
				LastModified: obj.LastModified,
			}
			if !yield(row) {
				return
			}
		}
	}
}

// HumanAge renders how long ago t was. Months are 30 days and years 365
// days, with no calendar correction. Times in the future read as "0m old".
func HumanAge(t, now time.Time) string {
	age := max(now.Sub(t), 0)
	days := duration.Days(age)

	switch {
	case days == 0 && age < time.Hour:
		return fmt.Sprintf("%dm old", int64(age/time.Minute))
	case days == 0:
		return fmt.Sprintf("%dh old", int64(age/time.Hour))
	case age < duration.Month:
		return fmt.Sprintf("%dd old", days)
	case age < duration.Year:
		return fmt.Sprintf("%dmo old", int64(age/duration.Month))
	default:
		return fmt.Sprintf("%dy old", int64(age/duration.Year))
	}
}

// HumanSize renders n bytes with 1024-based units and one decimal.
func HumanSize(n int64) string {
	return bytesize.Format(n)
}

