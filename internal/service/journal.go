package service

import (
	"context"

	"github.com/MKhiriev/dspace-utils/internal/logger"
	"github.com/MKhiriev/dspace-utils/internal/store"
	"github.com/MKhiriev/dspace-utils/models"
)

// Journal operation names.
const (
	OperationOwningCollection = "owning-collection"
	OperationLicense          = "license"
	OperationThumbnail        = "thumbnail"
	OperationCreateCollection = "create-collection"
	OperationNormalize        = "normalize-metadata"
	OperationMigrateItem      = "migrate-item"
)

// recordOperation appends the outcome of a mutating call to the journal.
// A journal failure is logged and does not change the operation result.
func recordOperation(ctx context.Context, journal store.JournalRepository, log *logger.Logger, operation, handle, target string, opErr error) {
	entry := models.JournalEntry{
		Operation: operation,
		Handle:    handle,
		Target:    target,
		Status:    models.JournalStatusSucceeded,
	}
	if opErr != nil {
		entry.Status = models.JournalStatusFailed
		entry.Detail = opErr.Error()
	}

	if err := journal.Record(context.WithoutCancel(ctx), entry); err != nil {
		log.Warn().Err(err).
			Str("operation", operation).
			Str("handle", handle).
			Msg("error recording journal entry")
	}
}
