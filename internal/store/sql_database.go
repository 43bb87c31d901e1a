package store

import (
	"database/sql"

	"github.com/MKhiriev/dspace-utils/internal/logger"
)

// DB is a database handle together with the error classifier of its driver.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator decides how a repository reacts to a failed statement.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// classify returns [NonRetryable] when the driver has no classifier.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
