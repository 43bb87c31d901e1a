package service

import (
	"context"

	"github.com/MKhiriev/dspace-utils/models"
)

// ResolverService maps handles to repository objects.
type ResolverService interface {
	// Resolve returns the item, collection or community that carries handle.
	// An unrecognised object type yields [ErrUnexpectedObjectType].
	Resolve(ctx context.Context, handle models.Handle) (models.Object, error)

	// ResolveItem, ResolveCollection and ResolveCommunity additionally
	// require the object to be of the named kind.
	ResolveItem(ctx context.Context, handle models.Handle) (models.Item, error)
	ResolveCollection(ctx context.Context, handle models.Handle) (models.Collection, error)
	ResolveCommunity(ctx context.Context, handle models.Handle) (models.Community, error)
}

// OwningCollectionService changes the collection that owns an item.
type OwningCollectionService interface {
	// Move resolves both handles and moves the item into the target
	// collection. It returns the owning collection read back after the change.
	Move(ctx context.Context, itemHandle, targetHandle models.Handle) (models.Collection, error)

	// MoveItem is Move for objects that are already resolved.
	MoveItem(ctx context.Context, item models.Item, target models.Collection) (models.Collection, error)
}

// BitstreamService swaps the content of an item bundle.
type BitstreamService interface {
	// Replace deletes every bitstream of the requested bundle and uploads
	// exactly one new bitstream in its place. A missing bundle is created.
	Replace(ctx context.Context, item models.Item, req ReplaceRequest) (models.Bitstream, error)
}

// LicenseService replaces the license of an item.
type LicenseService interface {
	Replace(ctx context.Context, itemHandle models.Handle, licensePath string) (models.Bitstream, error)
}

// ThumbnailService regenerates item thumbnails from a page of the item's
// original document.
type ThumbnailService interface {
	Regenerate(ctx context.Context, itemHandle models.Handle) (models.Bitstream, error)
	RegenerateItem(ctx context.Context, item models.Item) (models.Bitstream, error)
}

// PageNumberSource locates the zero-based document page used for an item's
// thumbnail. A missing value yields [ErrMissingPageNumber].
type PageNumberSource interface {
	PageNumber(ctx context.Context, item models.Item) (int, error)
}

// MetadataService renders item metadata for humans.
type MetadataService interface {
	Dump(ctx context.Context, itemHandle models.Handle) (string, error)
}

// CollectionService creates collections.
type CollectionService interface {
	// Create adds a collection called name to community, which is either a
	// handle or a UUID.
	Create(ctx context.Context, community, name string) (models.Collection, error)
}

// MigrationService moves the items of a collection into the live collection.
type MigrationService interface {
	Migrate(ctx context.Context, sourceHandle models.Handle, opts MigrationOptions) (MigrationReport, error)
}
