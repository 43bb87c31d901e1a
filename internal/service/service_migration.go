package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/dspace-utils/internal/adapter"
	"github.com/MKhiriev/dspace-utils/internal/logger"
	"github.com/MKhiriev/dspace-utils/internal/store"
	"github.com/MKhiriev/dspace-utils/internal/workers"
	"github.com/MKhiriev/dspace-utils/models"
)

// DefaultMigrationTarget is the live collection items are moved into.
const DefaultMigrationTarget models.Handle = "1/733"

const (
	migrationPageSize = 100
	xmluiPathSegment  = "/xmlui"

	StepNormalize        = "normalize"
	StepThumbnail        = "thumbnail"
	StepOwningCollection = "owning-collection"
)

// MigrationOptions tune a migration run.
type MigrationOptions struct {
	// Target is the collection receiving the items; DefaultMigrationTarget
	// when empty.
	Target models.Handle
	// ContinueOnError records a failed item in the report and goes on with
	// the next one instead of aborting the run.
	ContinueOnError bool
}

// ItemResult is the outcome of one item's migration.
type ItemResult struct {
	Handle     string
	UUID       string
	FailedStep string
	Err        error
}

// MigrationReport lists per-item results in processing order.
type MigrationReport struct {
	Source string
	Target string
	Items  []ItemResult
}

func (r MigrationReport) Succeeded() int {
	n := 0
	for _, item := range r.Items {
		if item.Err == nil {
			n++
		}
	}
	return n
}

func (r MigrationReport) Failed() int {
	return len(r.Items) - r.Succeeded()
}

type migrationService struct {
	adapter          adapter.RepositoryAdapter
	resolver         ResolverService
	thumbnails       ThumbnailService
	owningCollection OwningCollectionService
	journal          store.JournalRepository
	now              func() time.Time

	logger *logger.Logger
}

func NewMigrationService(
	repositoryAdapter adapter.RepositoryAdapter,
	resolver ResolverService,
	thumbnails ThumbnailService,
	owningCollection OwningCollectionService,
	journal store.JournalRepository,
	logger *logger.Logger,
) MigrationService {
	if journal == nil {
		journal = store.NewNopJournal()
	}
	return &migrationService{
		adapter:          repositoryAdapter,
		resolver:         resolver,
		thumbnails:       thumbnails,
		owningCollection: owningCollection,
		journal:          journal,
		now:              time.Now,
		logger:           logger,
	}
}

func (s *migrationService) Migrate(ctx context.Context, sourceHandle models.Handle, opts MigrationOptions) (MigrationReport, error) {
	if opts.Target == "" {
		opts.Target = DefaultMigrationTarget
	}
	report := MigrationReport{Source: sourceHandle.String(), Target: opts.Target.String()}

	source, err := s.resolver.ResolveCollection(ctx, sourceHandle)
	if err != nil {
		return report, err
	}
	target, err := s.resolver.ResolveCollection(ctx, opts.Target)
	if err != nil {
		return report, err
	}

	// Moving items changes the search results, so enumerate everything first.
	items, err := s.listItems(ctx, source)
	if err != nil {
		return report, err
	}
	s.logger.Info().Msgf("migrating %d items from %s to %s", len(items), source.Handle, target.Handle)

	for _, item := range items {
		result := ItemResult{Handle: item.Handle, UUID: item.UUID}

		s.logger.Info().Msgf("Updating item %s.", item.Handle)
		err := s.pipeline(item, target).Run(ctx)
		recordOperation(ctx, s.journal, s.logger, OperationMigrateItem, item.Handle, target.Handle, err)

		if err != nil {
			result.Err = err
			var stepErr *workers.StepError
			if errors.As(err, &stepErr) {
				result.FailedStep = stepErr.Step
			}
			report.Items = append(report.Items, result)

			if !opts.ContinueOnError || ctx.Err() != nil {
				return report, fmt.Errorf("error migrating item %s: %w", item.Handle, err)
			}
			s.logger.Error().Err(err).Str("item", item.Handle).Msg("item migration failed, continuing")
			continue
		}
		report.Items = append(report.Items, result)
	}

	if failed := report.Failed(); failed > 0 {
		return report, fmt.Errorf("%w: %d of %d items failed", ErrMigrationIncomplete, failed, len(report.Items))
	}
	return report, nil
}

// pipeline builds the ordered per-item steps. Later steps see the item as
// stored by the normalize step.
func (s *migrationService) pipeline(item models.Item, target models.Collection) *workers.Workers {
	current := item
	return workers.NewWorkers(
		workers.Step(StepNormalize, func(ctx context.Context) error {
			updated, err := s.adapter.UpdateItem(ctx, NormalizeItemMetadata(current, s.now()))
			recordOperation(ctx, s.journal, s.logger, OperationNormalize, current.Handle, "", err)
			if err != nil {
				return fmt.Errorf("error updating metadata of %s: %w", current.Handle, err)
			}
			current = updated
			return nil
		}),
		workers.Step(StepThumbnail, func(ctx context.Context) error {
			_, err := s.thumbnails.RegenerateItem(ctx, current)
			return err
		}),
		workers.Step(StepOwningCollection, func(ctx context.Context) error {
			s.logger.Info().Msgf("Moving %s to %s.", current.Handle, target.Handle)
			_, err := s.owningCollection.MoveItem(ctx, current, target)
			return err
		}),
	)
}

func (s *migrationService) listItems(ctx context.Context, source models.Collection) ([]models.Item, error) {
	var items []models.Item
	for number := 0; ; number++ {
		batch, page, err := s.adapter.SearchItems(ctx, source.UUID, number, migrationPageSize)
		if err != nil {
			return nil, fmt.Errorf("error searching items of %s: %w", source.Handle, err)
		}
		items = append(items, batch...)
		if len(batch) == 0 || page.Last() {
			return items, nil
		}
	}
}

// NormalizeItemMetadata prepares an item for the live collection: the
// "/xmlui" segment is removed from identifier URIs, provenance notes are
// dropped and the accession and availability dates are set to now. The input
// item is not modified.
func NormalizeItemMetadata(item models.Item, now time.Time) models.Item {
	metadata := item.Metadata.Clone()
	if metadata == nil {
		metadata = models.MetadataMap{}
	}

	uris := metadata.Values(models.FieldIdentifierURI)
	for i := range uris {
		uris[i].Value = strings.ReplaceAll(uris[i].Value, xmluiPathSegment, "")
	}
	metadata.Delete(models.FieldProvenance)

	stamp := models.FormatTimestamp(now)
	metadata.Set(models.FieldDateAccessioned, models.NewMetadataValue(stamp))
	metadata.Set(models.FieldDateAvailable, models.NewMetadataValue(stamp))

	item.Metadata = metadata
	return item
}
