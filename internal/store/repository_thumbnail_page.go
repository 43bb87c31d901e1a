package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/dspace-utils/internal/logger"
	"github.com/MKhiriev/dspace-utils/models"
	"github.com/sethvargo/go-retry"
)

// thumbnailPageRepository is the PostgreSQL-backed implementation of
// [ThumbnailPageRepository]. It reads the DSpace metadatavalue and handle
// tables directly and never writes.
type thumbnailPageRepository struct {
	db      *DB
	backoff func() retry.Backoff
	logger  *logger.Logger
}

// NewThumbnailPageRepository constructs a [ThumbnailPageRepository] backed by
// the DSpace database.
func NewThumbnailPageRepository(db *DB, logger *logger.Logger) ThumbnailPageRepository {
	logger.Debug().Msg("creating thumbnail page repository")
	return &thumbnailPageRepository{
		db: db,
		backoff: func() retry.Backoff {
			return retry.WithMaxRetries(2, retry.NewConstant(500*time.Millisecond))
		},
		logger: logger,
	}
}

// FindThumbnailPage implements [ThumbnailPageRepository].
//
// Error handling:
//   - no row -> [ErrPageNumberNotFound].
//   - text that is not a non-negative integer -> [ErrInvalidPageNumber].
//   - missing DSpace table or column -> [ErrUnexpectedSchema].
//   - connection class errors are retried before giving up.
func (r *thumbnailPageRepository) FindThumbnailPage(ctx context.Context, handle models.Handle) (int, error) {
	query, args, err := buildThumbnailPageQuery(handle)
	if err != nil {
		return 0, err
	}

	var text string
	err = retry.Do(ctx, r.backoff(), func(ctx context.Context) error {
		scanErr := r.db.QueryRowContext(ctx, query, args...).Scan(&text)
		if scanErr != nil && r.db.classify(scanErr) == Retryable {
			r.logger.Warn().Err(scanErr).Str("func", "*thumbnailPageRepository.FindThumbnailPage").Msg("retrying page lookup")
			return retry.RetryableError(scanErr)
		}
		return scanErr
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("%w: handle %s", ErrPageNumberNotFound, handle)
		}

		r.logger.Err(err).Str("func", "*thumbnailPageRepository.FindThumbnailPage").Msg("error querying thumbnail page")
		if r.db.classify(err) == SchemaMismatch {
			return 0, fmt.Errorf("%w: %w", ErrUnexpectedSchema, err)
		}
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	page, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || page < 0 {
		return 0, fmt.Errorf("%w: %q for handle %s", ErrInvalidPageNumber, text, handle)
	}

	r.logger.Debug().Str("handle", handle.String()).Int("page", page).Msg("found thumbnail page in database")
	return page, nil
}
