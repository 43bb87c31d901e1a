package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/dspace-utils/internal/adapter"
	"github.com/MKhiriev/dspace-utils/internal/logger"
	"github.com/MKhiriev/dspace-utils/internal/mock"
	"github.com/MKhiriev/dspace-utils/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestResolver(t *testing.T) (ResolverService, *mock.MockRepositoryAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockRepositoryAdapter(ctrl)
	return NewResolverService(mockAdapter, logger.Nop()), mockAdapter
}

// ── Resolve ──────────────────────────────────────────────────────────────────

func TestResolverService_Resolve_EachVariant(t *testing.T) {
	tests := []struct {
		name   string
		object models.Object
	}{
		{name: "item", object: testItem("1/1", itemUUID)},
		{name: "collection", object: testCollection("1/2", collectionUUID)},
		{name: "community", object: testCommunity("1/3", communityUUID)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockAdapter := newTestResolver(t)
			handle := models.Handle(tt.object.Base().Handle)
			mockAdapter.EXPECT().FindHandle(gomock.Any(), handle).Return(tt.object, nil)

			got, err := svc.Resolve(context.Background(), handle)

			require.NoError(t, err)
			assert.Equal(t, tt.object, got)
		})
	}
}

func TestResolverService_Resolve_SameHandleSameObject(t *testing.T) {
	svc, mockAdapter := newTestResolver(t)
	mockAdapter.EXPECT().FindHandle(gomock.Any(), models.Handle("1/1825")).
		Return(testItem("1/1825", itemUUID), nil).
		Times(2)

	first, err := svc.Resolve(context.Background(), "1/1825")
	require.NoError(t, err)
	second, err := svc.Resolve(context.Background(), "1/1825")
	require.NoError(t, err)

	assert.Equal(t, first.Base().UUID, second.Base().UUID)
	assert.Equal(t, itemUUID, second.Base().UUID)
}

func TestResolverService_Resolve_UnknownType(t *testing.T) {
	svc, mockAdapter := newTestResolver(t)
	mockAdapter.EXPECT().FindHandle(gomock.Any(), models.Handle("1/9")).
		Return(nil, fmt.Errorf("decode: %w: %q", models.ErrUnknownObjectType, "eperson"))

	_, err := svc.Resolve(context.Background(), "1/9")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedObjectType)
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestResolverService_Resolve_NotFound(t *testing.T) {
	svc, mockAdapter := newTestResolver(t)
	mockAdapter.EXPECT().FindHandle(gomock.Any(), models.Handle("1/404")).
		Return(nil, fmt.Errorf("%w: %w: GET /pid/find", adapter.ErrTransport, adapter.ErrNotFound))

	_, err := svc.Resolve(context.Background(), "1/404")

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrNotFound)
	assert.NotErrorIs(t, err, ErrUnexpectedObjectType)
}

// ── Typed helpers ────────────────────────────────────────────────────────────

func TestResolverService_ResolveItem_Mismatch(t *testing.T) {
	svc, mockAdapter := newTestResolver(t)
	mockAdapter.EXPECT().FindHandle(gomock.Any(), models.Handle("1/2")).
		Return(testCollection("1/2", collectionUUID), nil)

	_, err := svc.ResolveItem(context.Background(), "1/2")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedObjectType)
	assert.Contains(t, err.Error(), "is a collection, want item")
}

func TestResolverService_ResolveCollection_Success(t *testing.T) {
	svc, mockAdapter := newTestResolver(t)
	want := testCollection("1/733", targetUUID)
	mockAdapter.EXPECT().FindHandle(gomock.Any(), models.Handle("1/733")).Return(want, nil)

	got, err := svc.ResolveCollection(context.Background(), "1/733")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolverService_ResolveCommunity_Mismatch(t *testing.T) {
	svc, mockAdapter := newTestResolver(t)
	mockAdapter.EXPECT().FindHandle(gomock.Any(), models.Handle("1/1")).Return(testItem("1/1", itemUUID), nil)

	_, err := svc.ResolveCommunity(context.Background(), "1/1")

	assert.ErrorIs(t, err, ErrUnexpectedObjectType)
}

// ── ParseHandle ──────────────────────────────────────────────────────────────

func TestParseHandle(t *testing.T) {
	h, err := ParseHandle("hdl:1/1825")
	require.NoError(t, err)
	assert.Equal(t, models.Handle("1/1825"), h)

	for _, bad := range []string{"", "1825", "1/", "/1", "1/2/3"} {
		_, err := ParseHandle(bad)
		assert.ErrorIs(t, err, ErrInvalidIdentifier, "input %q", bad)
	}
}
