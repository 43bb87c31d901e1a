package models

import "time"

// Journal statuses.
const (
	JournalStatusSucceeded = "succeeded"
	JournalStatusFailed    = "failed"
)

// JournalEntry records one mutating operation performed against the
// repository.
type JournalEntry struct {
	ID        int64
	RunID     string
	Operation string
	Handle    string
	Target    string
	Status    string
	Detail    string
	CreatedAt time.Time
}
