// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for communicating with the
// DSpace REST API.
//
// The primary abstraction is [RepositoryAdapter], which decouples the service
// layer from HTTP details. The package ships a resty-based implementation
// ([NewDSpaceAdapter]) that owns the authenticated session: one adapter value
// is built per process and passed explicitly to every service.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrNotFound] for 404). Every
// failed call also matches [ErrTransport].
package adapter

import (
	"context"

	"github.com/MKhiriev/dspace-utils/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repository_adapter_mock.go -package=mock

// RepositoryAdapter defines the DSpace REST calls used by the services.
// Implementations are responsible for serialisation, session and CSRF header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type RepositoryAdapter interface {
	// Authenticate logs in with the configured credentials and stores the
	// session for all subsequent requests.
	Authenticate(ctx context.Context) (models.Session, error)

	// Endpoint returns the REST API root, used to build uri-list bodies.
	Endpoint() string

	// FindHandle resolves a handle via GET /pid/find. Returns [ErrNotFound]
	// (wrapped) when no object carries the handle and
	// [models.ErrUnknownObjectType] (wrapped) for an unrecognised type tag.
	FindHandle(ctx context.Context, handle models.Handle) (models.Object, error)

	// GetCommunity fetches a community by UUID.
	GetCommunity(ctx context.Context, uuid string) (models.Community, error)

	// GetOwningCollection reads the owningCollection link of an item.
	GetOwningCollection(ctx context.Context, itemUUID string) (models.Collection, error)

	// SetOwningCollection replaces the owningCollection link of an item
	// without inheriting the target's policies. A rejected replace (400, 409
	// or 422) yields [ErrConflict].
	SetOwningCollection(ctx context.Context, itemUUID, collectionUUID string) error

	// UpdateItem replaces the item with PUT /core/items/{uuid} and returns the
	// stored version.
	UpdateItem(ctx context.Context, item models.Item) (models.Item, error)

	// SearchItems returns one page of the items scoped to a container.
	// Pages are zero based.
	SearchItems(ctx context.Context, scopeUUID string, page, size int) ([]models.Item, models.Page, error)

	// GetBundles lists all bundles of an item.
	GetBundles(ctx context.Context, itemUUID string) ([]models.Bundle, error)

	// CreateBundle creates an empty bundle on an item.
	CreateBundle(ctx context.Context, itemUUID, name string) (models.Bundle, error)

	// GetBitstreams lists all bitstreams of a bundle.
	GetBitstreams(ctx context.Context, bundleUUID string) ([]models.Bitstream, error)

	// DeleteBitstream removes a bitstream with a JSON patch "remove"
	// operation. Transient failures are retried.
	DeleteBitstream(ctx context.Context, bitstreamUUID string) error

	// CreateBitstream uploads a local file as a new bitstream of a bundle.
	CreateBitstream(ctx context.Context, bundleUUID string, upload models.BitstreamUpload) (models.Bitstream, error)

	// DownloadBitstream writes the content of a bitstream to destPath.
	DownloadBitstream(ctx context.Context, bitstreamUUID, destPath string) error

	// CreateCollection creates a collection inside the parent community.
	CreateCollection(ctx context.Context, parentUUID string, collection models.Collection) (models.Collection, error)
}
