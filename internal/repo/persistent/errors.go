package persistent

import (
	"errors"

	"vlog-hub/pkg/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// notFound translates gorm's missing-record error into the domain NotFound
// code and passes every other error through untouched.
func notFound(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NotFound(message)
	}
	return err
}

// checkID reports a malformed id as NotFound. Id columns are uuid typed and
// postgres rejects anything else with a syntax error.
func checkID(id, message string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.NotFound(message)
	}
	return nil
}
