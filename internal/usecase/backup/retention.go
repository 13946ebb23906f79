package backup

import (
	"errors"
	"time"

	"github.com/bnema/dbs3/internal/domain"
)

// DefaultRetention applies when no window is configured.
const DefaultRetention = 7 * 24 * time.Hour

// RetentionPolicy decides which backups under Prefix have outlived Window.
type RetentionPolicy struct {
	Prefix string
	Window time.Duration
}

// SelectForDeletion returns the objects whose key date is older than the
// window. Age comes from the date in the key, not LastModified, so a
// re-upload does not reset the clock.
//
// Keys that cannot be parsed are never selected. They are reported through
// the returned error, which joins one ErrMalformedKey per skipped key; the
// deletion set is valid even when the error is non-nil.
func (p RetentionPolicy) SelectForDeletion(objects []domain.BackupObject, now time.Time) ([]domain.BackupObject, error) {
	var (
		expired []domain.BackupObject
		errs    []error
	)

	for _, obj := range objects {
		date, err := ParseDate(obj.Key, p.Prefix)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if now.Sub(date) > p.Window {
			expired = append(expired, obj)
		}
	}

	return expired, errors.Join(errs...)
}
