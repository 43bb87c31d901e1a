package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPageNumberNotFound is returned when the DSpace database holds no
	// thumbnail page for the handle.
	ErrPageNumberNotFound = errors.New("thumbnail page number not found")

	// ErrInvalidPageNumber is returned when the stored page is not a
	// non-negative integer.
	ErrInvalidPageNumber = errors.New("invalid thumbnail page number")

	// ErrUnexpectedSchema is returned when the DSpace tables queried by the
	// page lookup do not exist.
	ErrUnexpectedSchema = errors.New("database does not look like a DSpace database")

	// ErrJournalDisabled is returned by reads from the no-op journal.
	ErrJournalDisabled = errors.New("operation journal is disabled")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")
)
