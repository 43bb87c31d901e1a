package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/dspace-utils/internal/logger"
	"github.com/MKhiriev/dspace-utils/internal/utils"
	"github.com/MKhiriev/dspace-utils/models"
)

// journalRepository is the SQLite-backed implementation of
// [JournalRepository].
type journalRepository struct {
	db     *DB
	now    func() time.Time
	logger *logger.Logger
}

// NewJournalRepository constructs a [JournalRepository] on an open journal
// database.
func NewJournalRepository(db *DB, logger *logger.Logger) JournalRepository {
	logger.Debug().Msg("creating journal repository")
	return &journalRepository{db: db, now: time.Now, logger: logger}
}

// Record implements [JournalRepository]. The run id is taken from ctx when
// the entry carries none.
func (r *journalRepository) Record(ctx context.Context, entry models.JournalEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.now()
	}
	if entry.RunID == "" {
		entry.RunID, _ = utils.GetRunIDFromContext(ctx)
	}

	query, args, err := buildInsertJournalEntryQuery(entry)
	if err != nil {
		return err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*journalRepository.Record").Msg("error writing journal entry")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// Recent implements [JournalRepository].
func (r *journalRepository) Recent(ctx context.Context, limit uint64) ([]models.JournalEntry, error) {
	query, args, err := buildRecentJournalEntriesQuery(limit)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*journalRepository.Recent").Msg("error reading journal")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.JournalEntry, 0)
	for rows.Next() {
		var e models.JournalEntry
		if err = rows.Scan(&e.ID, &e.RunID, &e.Operation, &e.Handle, &e.Target, &e.Status, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning journal entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entries, nil
}

// nopJournal discards entries when no journal is configured.
type nopJournal struct{}

// NewNopJournal returns a [JournalRepository] that records nothing.
func NewNopJournal() JournalRepository {
	return nopJournal{}
}

func (nopJournal) Record(context.Context, models.JournalEntry) error { return nil }

func (nopJournal) Recent(context.Context, uint64) ([]models.JournalEntry, error) {
	return nil, ErrJournalDisabled
}
