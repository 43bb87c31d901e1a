package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells a repository what to do with a failed statement.
type ErrorClassification int

const (
	// NonRetryable is the default for anything not recognised below.
	NonRetryable ErrorClassification = iota

	// Retryable covers transient failures of a busy or restarting DSpace
	// database.
	Retryable

	// SchemaMismatch means the database is reachable but lacks the DSpace
	// tables or columns the lookup reads. Retrying cannot help.
	SchemaMismatch
)

// PostgresErrorClassifier implements [ErrorClassificator] for the DSpace
// PostgreSQL database.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that do not come from
// the pgx driver are [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a PostgreSQL error code to an [ErrorClassification].
//
// Retryable: connection exceptions (class 08), too_many_connections,
// cannot_connect_now, admin/crash shutdown and serialization_failure.
// SchemaMismatch: undefined_table, undefined_column.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection,
		pgerrcode.TooManyConnections,
		pgerrcode.CannotConnectNow,
		pgerrcode.AdminShutdown,
		pgerrcode.CrashShutdown,
		pgerrcode.SerializationFailure:
		return Retryable
	case pgerrcode.UndefinedTable,
		pgerrcode.UndefinedColumn:
		return SchemaMismatch
	}
	return NonRetryable
}
