package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/dspace-utils/internal/adapter"
	"github.com/MKhiriev/dspace-utils/internal/logger"
	"github.com/MKhiriev/dspace-utils/internal/store"
	"github.com/MKhiriev/dspace-utils/internal/utils"
	"github.com/MKhiriev/dspace-utils/models"
)

type collectionService struct {
	adapter  adapter.RepositoryAdapter
	resolver ResolverService
	journal  store.JournalRepository

	logger *logger.Logger
}

func NewCollectionService(repositoryAdapter adapter.RepositoryAdapter, resolver ResolverService, journal store.JournalRepository, logger *logger.Logger) CollectionService {
	if journal == nil {
		journal = store.NewNopJournal()
	}
	return &collectionService{adapter: repositoryAdapter, resolver: resolver, journal: journal, logger: logger}
}

func (s *collectionService) Create(ctx context.Context, community, name string) (models.Collection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Collection{}, fmt.Errorf("%w: empty collection name", ErrInvalidIdentifier)
	}

	parent, err := s.findCommunity(ctx, strings.TrimSpace(community))
	if err != nil {
		return models.Collection{}, err
	}

	metadata := models.MetadataMap{}
	metadata.Set(models.FieldTitle, models.NewMetadataValue(name))

	created, err := s.adapter.CreateCollection(ctx, parent.UUID, models.Collection{
		DSpaceObject: models.DSpaceObject{Name: name, Metadata: metadata, Type: models.TypeCollection},
	})
	recordOperation(ctx, s.journal, s.logger, OperationCreateCollection, community, name, err)
	if err != nil {
		return models.Collection{}, fmt.Errorf("error creating collection %q in %s: %w", name, community, err)
	}

	s.logger.Info().
		Str("community", parent.UUID).
		Str("handle", created.Handle).
		Msgf("created collection %s", created.UUID)

	return created, nil
}

// findCommunity accepts a community UUID or handle.
func (s *collectionService) findCommunity(ctx context.Context, community string) (models.Community, error) {
	if utils.IsUUID(community) {
		parent, err := s.adapter.GetCommunity(ctx, community)
		if err != nil {
			return models.Community{}, fmt.Errorf("error reading community %s: %w", community, err)
		}
		return parent, nil
	}

	handle, err := models.ParseHandle(community)
	if err != nil {
		return models.Community{}, fmt.Errorf("%w: %q is neither a handle nor a UUID", ErrInvalidIdentifier, community)
	}
	return s.resolver.ResolveCommunity(ctx, handle)
}
