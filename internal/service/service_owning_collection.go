package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/dspace-utils/internal/adapter"
	"github.com/MKhiriev/dspace-utils/internal/logger"
	"github.com/MKhiriev/dspace-utils/internal/store"
	"github.com/MKhiriev/dspace-utils/models"
)

type owningCollectionService struct {
	adapter  adapter.RepositoryAdapter
	resolver ResolverService
	journal  store.JournalRepository

	logger *logger.Logger
}

func NewOwningCollectionService(repositoryAdapter adapter.RepositoryAdapter, resolver ResolverService, journal store.JournalRepository, logger *logger.Logger) OwningCollectionService {
	if journal == nil {
		journal = store.NewNopJournal()
	}
	return &owningCollectionService{adapter: repositoryAdapter, resolver: resolver, journal: journal, logger: logger}
}

func (s *owningCollectionService) Move(ctx context.Context, itemHandle, targetHandle models.Handle) (models.Collection, error) {
	item, err := s.resolver.ResolveItem(ctx, itemHandle)
	if err != nil {
		return models.Collection{}, err
	}
	target, err := s.resolver.ResolveCollection(ctx, targetHandle)
	if err != nil {
		return models.Collection{}, err
	}

	return s.MoveItem(ctx, item, target)
}

func (s *owningCollectionService) MoveItem(ctx context.Context, item models.Item, target models.Collection) (collection models.Collection, err error) {
	defer func() {
		recordOperation(ctx, s.journal, s.logger, OperationOwningCollection, item.Handle, target.Handle, err)
	}()

	current, err := s.adapter.GetOwningCollection(ctx, item.UUID)
	if err != nil {
		return models.Collection{}, fmt.Errorf("error reading owning collection of %s: %w", item.Handle, err)
	}
	s.logger.Info().
		Str("item", item.Handle).
		Msgf("the current owning collection is %s (%s)", current.Handle, current.UUID)

	if err = s.adapter.SetOwningCollection(ctx, item.UUID, target.UUID); err != nil {
		return models.Collection{}, fmt.Errorf("error moving %s to %s: %w", item.Handle, target.Handle, err)
	}

	updated, err := s.adapter.GetOwningCollection(ctx, item.UUID)
	if err != nil {
		return models.Collection{}, fmt.Errorf("error reading owning collection of %s: %w", item.Handle, err)
	}
	if updated.UUID != target.UUID {
		return updated, fmt.Errorf("%w: %s is owned by %s, want %s", ErrVerificationFailed, item.Handle, updated.UUID, target.UUID)
	}
	s.logger.Info().
		Str("item", item.Handle).
		Msgf("the current owning collection is %s (%s)", updated.Handle, updated.UUID)

	return updated, nil
}
