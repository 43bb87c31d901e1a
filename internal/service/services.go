package service

import (
	"fmt"

	"github.com/MKhiriev/dspace-utils/internal/adapter"
	"github.com/MKhiriev/dspace-utils/internal/config"
	"github.com/MKhiriev/dspace-utils/internal/converter"
	"github.com/MKhiriev/dspace-utils/internal/logger"
	"github.com/MKhiriev/dspace-utils/internal/store"
)

type Services struct {
	Resolver         ResolverService
	OwningCollection OwningCollectionService
	Bitstreams       BitstreamService
	License          LicenseService
	Thumbnail        ThumbnailService
	Metadata         MetadataService
	Collections      CollectionService
	Migration        MigrationService
}

func NewServices(
	repositoryAdapter adapter.RepositoryAdapter,
	repos *store.Repositories,
	imageConverter converter.ImageConverter,
	cfg config.ClientThumbnail,
	logger *logger.Logger,
) (*Services, error) {
	pages, err := newPageNumberSource(cfg.PageSource, repos)
	if err != nil {
		return nil, err
	}

	resolver := NewResolverService(repositoryAdapter, logger)
	bitstreams := NewBitstreamService(repositoryAdapter, logger)
	owning := NewOwningCollectionService(repositoryAdapter, resolver, repos.Journal, logger)
	thumbnails := NewThumbnailService(repositoryAdapter, resolver, bitstreams, pages, imageConverter, repos.Journal, logger)

	return &Services{
		Resolver:         resolver,
		OwningCollection: owning,
		Bitstreams:       bitstreams,
		License:          NewLicenseService(resolver, bitstreams, repos.Journal, logger),
		Thumbnail:        thumbnails,
		Metadata:         NewMetadataService(resolver, logger),
		Collections:      NewCollectionService(repositoryAdapter, resolver, repos.Journal, logger),
		Migration:        NewMigrationService(repositoryAdapter, resolver, thumbnails, owning, repos.Journal, logger),
	}, nil
}

func newPageNumberSource(source string, repos *store.Repositories) (PageNumberSource, error) {
	switch source {
	case "", config.PageSourceMetadata:
		return MetadataPageSource{}, nil
	case config.PageSourceDatabase:
		if repos.ThumbnailPages == nil {
			return nil, fmt.Errorf("%w: %s page source needs postgres_uri", ErrNoPageSource, source)
		}
		return DatabasePageSource{Pages: repos.ThumbnailPages}, nil
	default:
		return nil, fmt.Errorf("%w: unknown page source %q", ErrNoPageSource, source)
	}
}
