package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/clubhub/clubhub-api/internal/domain/common/errorz"
)

// translate maps gorm errors onto the domain taxonomy. Requires the
// connection to be opened with TranslateError so driver-level constraint
// violations arrive as gorm sentinels. Errors already carrying a domain kind
// pass through untouched.
func translate(err error, format string, args ...interface{}) error {
	switch {
	case err == nil:
		return nil
	case errorz.KindOf(err) != errorz.KindUnknown:
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errorz.NotFound(format, args...)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errorz.Conflict(format, args...)
	default:
		return errorz.Unavailable(err, format, args...)
	}
}
