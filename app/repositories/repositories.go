// Package repositories owns all database access. Each repository holds the
// *gorm.DB it was constructed with and translates store errors into the
// apperr taxonomy at this boundary, so services never see GORM sentinels.
package repositories

import (
	"errors"

	"github.com/shashiranjanraj/winkel/pkg/apperr"
	"gorm.io/gorm"
)

// translate maps GORM errors onto the application taxonomy. The duplicated
// key translation relies on gorm.Config.TranslateError being enabled, which
// makes the store's unique constraint the authoritative Conflict signal.
func translate(err error, subject string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFound(subject)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.Conflict(subject)
	default:
		return apperr.Internal(err)
	}
}
