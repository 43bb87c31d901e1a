// Package store provides the database access used by the commands: the
// read-only lookup of thumbnail page numbers in the DSpace PostgreSQL
// database and the local SQLite operation journal.
package store

import (
	"context"

	"github.com/MKhiriev/dspace-utils/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ThumbnailPageRepository reads the page of an item's PDF that should be
// rendered as its thumbnail.
type ThumbnailPageRepository interface {
	// FindThumbnailPage returns the zero-based page stored for the item with
	// the given handle. Returns [ErrPageNumberNotFound] when no value exists.
	FindThumbnailPage(ctx context.Context, handle models.Handle) (int, error)
}

// JournalRepository appends entries to the operation journal.
type JournalRepository interface {
	// Record stores one entry. CreatedAt is filled in when zero.
	Record(ctx context.Context, entry models.JournalEntry) error
	// Recent returns the newest entries first, at most limit of them.
	Recent(ctx context.Context, limit uint64) ([]models.JournalEntry, error)
}
