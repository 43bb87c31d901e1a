package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/dspace-utils/internal/config"
	"github.com/MKhiriev/dspace-utils/internal/logger"
)

// Repositories bundles the database-backed repositories of one run together
// with the handles that must be closed at exit.
type Repositories struct {
	// ThumbnailPages is nil unless a PostgreSQL DSN is configured.
	ThumbnailPages ThumbnailPageRepository
	// Journal is never nil; it is a no-op when no journal path is configured.
	Journal JournalRepository

	dbs []*DB
}

// NewRepositories opens the databases named in cfg. Only configured
// databases are opened.
func NewRepositories(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*Repositories, error) {
	repos := &Repositories{Journal: NewNopJournal()}

	if cfg.PostgresDSN != "" {
		db, err := NewConnectPostgres(ctx, cfg.PostgresDSN, log)
		if err != nil {
			return nil, err
		}
		repos.dbs = append(repos.dbs, db)
		repos.ThumbnailPages = NewThumbnailPageRepository(db, log)
	}

	if cfg.JournalPath != "" {
		db, err := NewConnectSQLite(ctx, cfg.JournalPath, log)
		if err != nil {
			return nil, errors.Join(err, repos.Close())
		}
		repos.dbs = append(repos.dbs, db)
		repos.Journal = NewJournalRepository(db, log)
	}

	return repos, nil
}

// Close closes every opened database.
func (r *Repositories) Close() error {
	var errs []error
	for _, db := range r.dbs {
		if err := db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing database: %w", err))
		}
	}
	r.dbs = nil
	return errors.Join(errs...)
}
