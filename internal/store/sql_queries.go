package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/dspace-utils/models"
)

// ThumbnailPageFieldID is the metadatafieldregistry id of mus.data.thumbpage
// in the DSpace database.
const ThumbnailPageFieldID = 160

var (
	pgBuilder     = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

var journalColumns = []string{"id", "run_id", "operation", "handle", "target", "status", "detail", "created_at"}

// buildThumbnailPageQuery selects the stored page of the item with handle.
func buildThumbnailPageQuery(handle models.Handle) (string, []any, error) {
	query, args, err := pgBuilder.
		Select("m.text_value").
		From("metadatavalue m").
		Join("handle h ON h.resource_id = m.dspace_object_id").
		Where(sq.Eq{"h.handle": handle.String(), "m.metadata_field_id": ThumbnailPageFieldID}).
		OrderBy("m.place").
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertJournalEntryQuery(entry models.JournalEntry) (string, []any, error) {
	query, args, err := sqliteBuilder.
		Insert("journal").
		Columns("run_id", "operation", "handle", "target", "status", "detail", "created_at").
		Values(entry.RunID, entry.Operation, entry.Handle, entry.Target, entry.Status, entry.Detail, entry.CreatedAt.UTC()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildRecentJournalEntriesQuery(limit uint64) (string, []any, error) {
	query, args, err := sqliteBuilder.
		Select(journalColumns...).
		From("journal").
		OrderBy("id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
