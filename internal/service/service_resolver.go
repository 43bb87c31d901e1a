package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/dspace-utils/internal/adapter"
	"github.com/MKhiriev/dspace-utils/internal/logger"
	"github.com/MKhiriev/dspace-utils/models"
)

type resolverService struct {
	adapter adapter.RepositoryAdapter

	logger *logger.Logger
}

func NewResolverService(repositoryAdapter adapter.RepositoryAdapter, logger *logger.Logger) ResolverService {
	return &resolverService{adapter: repositoryAdapter, logger: logger}
}

// ParseHandle validates a command-line handle argument. Malformed input
// yields [ErrInvalidIdentifier].
func ParseHandle(s string) (models.Handle, error) {
	handle, err := models.ParseHandle(s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidIdentifier, err)
	}
	return handle, nil
}

func (s *resolverService) Resolve(ctx context.Context, handle models.Handle) (models.Object, error) {
	obj, err := s.adapter.FindHandle(ctx, handle)
	if errors.Is(err, models.ErrUnknownObjectType) {
		return nil, fmt.Errorf("%w: handle %s: %w", ErrUnexpectedObjectType, handle, err)
	}
	if err != nil {
		return nil, fmt.Errorf("error resolving handle %s: %w", handle, err)
	}

	switch obj.(type) {
	case models.Item, models.Collection, models.Community:
	default:
		return nil, fmt.Errorf("%w: handle %s resolved to %T", ErrUnexpectedObjectType, handle, obj)
	}

	return obj, nil
}

func (s *resolverService) ResolveItem(ctx context.Context, handle models.Handle) (models.Item, error) {
	obj, err := s.Resolve(ctx, handle)
	if err != nil {
		return models.Item{}, err
	}
	item, ok := obj.(models.Item)
	if !ok {
		return models.Item{}, mismatch(handle, obj, models.TypeItem)
	}
	return item, nil
}

func (s *resolverService) ResolveCollection(ctx context.Context, handle models.Handle) (models.Collection, error) {
	obj, err := s.Resolve(ctx, handle)
	if err != nil {
		return models.Collection{}, err
	}
	collection, ok := obj.(models.Collection)
	if !ok {
		return models.Collection{}, mismatch(handle, obj, models.TypeCollection)
	}
	return collection, nil
}

func (s *resolverService) ResolveCommunity(ctx context.Context, handle models.Handle) (models.Community, error) {
	obj, err := s.Resolve(ctx, handle)
	if err != nil {
		return models.Community{}, err
	}
	community, ok := obj.(models.Community)
	if !ok {
		return models.Community{}, mismatch(handle, obj, models.TypeCommunity)
	}
	return community, nil
}

func mismatch(handle models.Handle, obj models.Object, want models.ObjectType) error {
	return fmt.Errorf("%w: handle %s is a %s, want %s", ErrUnexpectedObjectType, handle, obj.Base().Type, want)
}
