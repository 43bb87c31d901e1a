package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MKhiriev/dspace-utils/internal/adapter"
	"github.com/MKhiriev/dspace-utils/internal/converter"
	"github.com/MKhiriev/dspace-utils/internal/logger"
	"github.com/MKhiriev/dspace-utils/internal/store"
	"github.com/MKhiriev/dspace-utils/models"
)

const (
	ThumbnailMimeType  = "image/jpeg"
	thumbnailExtension = ".jpg"
	fallbackSourceName = "document.pdf"
)

// MetadataPageSource reads the page number from the item's
// mus.data.thumbpage field.
type MetadataPageSource struct{}

func (MetadataPageSource) PageNumber(_ context.Context, item models.Item) (int, error) {
	value, ok := item.Metadata.First(models.FieldThumbnailPage)
	if !ok || strings.TrimSpace(value.Value) == "" {
		return 0, fmt.Errorf("%w: %s has no %s", ErrMissingPageNumber, item.Handle, models.FieldThumbnailPage)
	}
	page, err := strconv.Atoi(strings.TrimSpace(value.Value))
	if err != nil || page < 0 {
		return 0, fmt.Errorf("%w: %s of %s is %q", ErrInvalidPageNumber, models.FieldThumbnailPage, item.Handle, value.Value)
	}
	return page, nil
}

// DatabasePageSource looks the page number up in the DSpace database.
type DatabasePageSource struct {
	Pages store.ThumbnailPageRepository
}

func (d DatabasePageSource) PageNumber(ctx context.Context, item models.Item) (int, error) {
	page, err := d.Pages.FindThumbnailPage(ctx, models.Handle(item.Handle))
	switch {
	case errors.Is(err, store.ErrPageNumberNotFound):
		return 0, fmt.Errorf("%w: %s: %w", ErrMissingPageNumber, item.Handle, err)
	case errors.Is(err, store.ErrInvalidPageNumber):
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidPageNumber, item.Handle, err)
	case err != nil:
		return 0, err
	}
	return page, nil
}

type thumbnailService struct {
	adapter    adapter.RepositoryAdapter
	resolver   ResolverService
	bitstreams BitstreamService
	pages      PageNumberSource
	converter  converter.ImageConverter
	journal    store.JournalRepository
	tempDir    string

	logger *logger.Logger
}

func NewThumbnailService(
	repositoryAdapter adapter.RepositoryAdapter,
	resolver ResolverService,
	bitstreams BitstreamService,
	pages PageNumberSource,
	imageConverter converter.ImageConverter,
	journal store.JournalRepository,
	logger *logger.Logger,
) ThumbnailService {
	if journal == nil {
		journal = store.NewNopJournal()
	}
	return &thumbnailService{
		adapter:    repositoryAdapter,
		resolver:   resolver,
		bitstreams: bitstreams,
		pages:      pages,
		converter:  imageConverter,
		journal:    journal,
		logger:     logger,
	}
}

func (s *thumbnailService) Regenerate(ctx context.Context, itemHandle models.Handle) (models.Bitstream, error) {
	item, err := s.resolver.ResolveItem(ctx, itemHandle)
	if err != nil {
		return models.Bitstream{}, err
	}
	return s.RegenerateItem(ctx, item)
}

func (s *thumbnailService) RegenerateItem(ctx context.Context, item models.Item) (bitstream models.Bitstream, err error) {
	page, err := s.pages.PageNumber(ctx, item)
	if err != nil {
		return models.Bitstream{}, err
	}

	original, err := s.originalBitstream(ctx, item)
	if err != nil {
		return models.Bitstream{}, err
	}

	defer func() {
		recordOperation(ctx, s.journal, s.logger, OperationThumbnail, item.Handle, original.Name, err)
	}()

	scratch, err := os.MkdirTemp(s.tempDir, "dspace-thumbnail-*")
	if err != nil {
		return models.Bitstream{}, fmt.Errorf("error creating scratch directory: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(scratch); rmErr != nil {
			s.logger.Warn().Err(rmErr).Str("dir", scratch).Msg("error removing scratch directory")
		}
	}()

	src := filepath.Join(scratch, scratchName(original.Name))
	if err = s.adapter.DownloadBitstream(ctx, original.UUID, src); err != nil {
		return models.Bitstream{}, fmt.Errorf("error downloading %s of %s: %w", original.Name, item.Handle, err)
	}

	dst := src + thumbnailExtension
	s.logger.Info().Str("item", item.Handle).Msgf("rendering page %d of %s", page, original.Name)
	if err = s.converter.Thumbnail(ctx, src, page, dst); err != nil {
		return models.Bitstream{}, fmt.Errorf("error rendering thumbnail of %s: %w", item.Handle, err)
	}

	name := original.Name + thumbnailExtension
	metadata := models.MetadataMap{}
	metadata.Set(models.FieldTitle, models.NewMetadataValue(name))

	bitstream, err = s.bitstreams.Replace(ctx, item, ReplaceRequest{
		Bundle:   models.BundleThumbnail,
		Name:     name,
		Path:     dst,
		MimeType: ThumbnailMimeType,
		Metadata: metadata,
	})
	if err != nil {
		return models.Bitstream{}, fmt.Errorf("error replacing thumbnail of %s: %w", item.Handle, err)
	}

	return bitstream, nil
}

// originalBitstream returns the first bitstream of the ORIGINAL bundle.
func (s *thumbnailService) originalBitstream(ctx context.Context, item models.Item) (models.Bitstream, error) {
	bundles, err := s.adapter.GetBundles(ctx, item.UUID)
	if err != nil {
		return models.Bitstream{}, fmt.Errorf("error listing bundles of %s: %w", item.Handle, err)
	}

	bundle, ok := models.FindBundle(bundles, models.BundleOriginal)
	if !ok {
		return models.Bitstream{}, fmt.Errorf("%w: %s has no %s bundle", ErrNoOriginalBitstream, item.Handle, models.BundleOriginal)
	}

	bitstreams, err := s.adapter.GetBitstreams(ctx, bundle.UUID)
	if err != nil {
		return models.Bitstream{}, fmt.Errorf("error listing bitstreams of %s: %w", item.Handle, err)
	}
	if len(bitstreams) == 0 {
		return models.Bitstream{}, fmt.Errorf("%w: %s bundle of %s is empty", ErrNoOriginalBitstream, models.BundleOriginal, item.Handle)
	}

	return bitstreams[0], nil
}

// scratchName turns a bitstream name into a safe local file name.
func scratchName(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "." || base == string(filepath.Separator) || base == "" {
		return fallbackSourceName
	}
	return base
}
