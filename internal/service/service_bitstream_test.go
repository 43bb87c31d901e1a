package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/dspace-utils/internal/logger"
	"github.com/MKhiriev/dspace-utils/internal/mock"
	"github.com/MKhiriev/dspace-utils/internal/utils"
	"github.com/MKhiriev/dspace-utils/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	bundleUUID = "7e6d5c4b-3a29-4817-9605-f4e3d2c1b005"
	newBitUUID = "2f3e4d5c-6b7a-4891-8a2b-3c4d5e6f7a06"
)

func newTestBitstreamSvc(t *testing.T) (BitstreamService, *mock.MockRepositoryAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockRepositoryAdapter(ctrl)
	return NewBitstreamService(mockAdapter, logger.Nop()), mockAdapter
}

func uploaded(t *testing.T, path string) models.Bitstream {
	t.Helper()
	sum, err := utils.FileMD5(path)
	require.NoError(t, err)
	return models.Bitstream{
		UUID:     newBitUUID,
		Name:     "license.txt",
		CheckSum: models.CheckSum{Algorithm: utils.ChecksumAlgorithmMD5, Value: sum},
	}
}

// ── Replace ──────────────────────────────────────────────────────────────────

func TestBitstreamService_Replace_DeletesAllThenUploadsOne(t *testing.T) {
	svc, mockAdapter := newTestBitstreamSvc(t)
	ctx := context.Background()
	path := writeTempFile(t, "license.txt", "new license")
	item := testItem("1/1825", itemUUID)

	bundles := []models.Bundle{
		{UUID: "other", Name: models.BundleOriginal},
		{UUID: bundleUUID, Name: models.BundleLicense},
	}
	old := []models.Bitstream{{UUID: "old-1"}, {UUID: "old-2"}}

	gomock.InOrder(
		mockAdapter.EXPECT().GetBundles(ctx, itemUUID).Return(bundles, nil),
		mockAdapter.EXPECT().GetBitstreams(ctx, bundleUUID).Return(old, nil),
		mockAdapter.EXPECT().DeleteBitstream(ctx, "old-1").Return(nil),
		mockAdapter.EXPECT().DeleteBitstream(ctx, "old-2").Return(nil),
		mockAdapter.EXPECT().CreateBitstream(ctx, bundleUUID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, upload models.BitstreamUpload) (models.Bitstream, error) {
				assert.Equal(t, "license.txt", upload.Name)
				assert.Equal(t, path, upload.Path)
				assert.Equal(t, "text/plain", upload.MimeType)
				return uploaded(t, path), nil
			},
		),
	)

	got, err := svc.Replace(ctx, item, ReplaceRequest{
		Bundle: models.BundleLicense, Name: "license.txt", Path: path, MimeType: "text/plain",
	})

	require.NoError(t, err)
	assert.Equal(t, newBitUUID, got.UUID)
}

func TestBitstreamService_Replace_EmptyBundle(t *testing.T) {
	svc, mockAdapter := newTestBitstreamSvc(t)
	ctx := context.Background()
	path := writeTempFile(t, "license.txt", "new license")

	mockAdapter.EXPECT().GetBundles(ctx, itemUUID).Return([]models.Bundle{{UUID: bundleUUID, Name: models.BundleLicense}}, nil)
	mockAdapter.EXPECT().GetBitstreams(ctx, bundleUUID).Return(nil, nil)
	mockAdapter.EXPECT().DeleteBitstream(gomock.Any(), gomock.Any()).Times(0)
	mockAdapter.EXPECT().CreateBitstream(ctx, bundleUUID, gomock.Any()).Return(uploaded(t, path), nil)

	_, err := svc.Replace(ctx, testItem("1/1825", itemUUID), ReplaceRequest{Bundle: models.BundleLicense, Name: "license.txt", Path: path})

	require.NoError(t, err)
}

func TestBitstreamService_Replace_CreatesMissingBundle(t *testing.T) {
	svc, mockAdapter := newTestBitstreamSvc(t)
	ctx := context.Background()
	path := writeTempFile(t, "thumb.jpg", "jpeg bytes")

	gomock.InOrder(
		mockAdapter.EXPECT().GetBundles(ctx, itemUUID).Return([]models.Bundle{{UUID: "orig", Name: models.BundleOriginal}}, nil),
		mockAdapter.EXPECT().CreateBundle(ctx, itemUUID, models.BundleThumbnail).
			Return(models.Bundle{UUID: bundleUUID, Name: models.BundleThumbnail}, nil),
		mockAdapter.EXPECT().CreateBitstream(ctx, bundleUUID, gomock.Any()).Return(uploaded(t, path), nil),
	)
	mockAdapter.EXPECT().GetBitstreams(gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Replace(ctx, testItem("1/1825", itemUUID), ReplaceRequest{Bundle: models.BundleThumbnail, Name: "thumb.jpg", Path: path})

	require.NoError(t, err)
}

func TestBitstreamService_Replace_DeleteFailureStopsUpload(t *testing.T) {
	svc, mockAdapter := newTestBitstreamSvc(t)
	ctx := context.Background()
	path := writeTempFile(t, "license.txt", "new license")
	boom := errors.New("boom")

	mockAdapter.EXPECT().GetBundles(ctx, itemUUID).Return([]models.Bundle{{UUID: bundleUUID, Name: models.BundleLicense}}, nil)
	mockAdapter.EXPECT().GetBitstreams(ctx, bundleUUID).Return([]models.Bitstream{{UUID: "old-1"}, {UUID: "old-2"}}, nil)
	mockAdapter.EXPECT().DeleteBitstream(ctx, "old-1").Return(boom)
	mockAdapter.EXPECT().CreateBitstream(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Replace(ctx, testItem("1/1825", itemUUID), ReplaceRequest{Bundle: models.BundleLicense, Path: path})

	assert.ErrorIs(t, err, boom)
}

func TestBitstreamService_Replace_ChecksumMismatch(t *testing.T) {
	svc, mockAdapter := newTestBitstreamSvc(t)
	ctx := context.Background()
	path := writeTempFile(t, "license.txt", "new license")

	mockAdapter.EXPECT().GetBundles(ctx, itemUUID).Return([]models.Bundle{{UUID: bundleUUID, Name: models.BundleLicense}}, nil)
	mockAdapter.EXPECT().GetBitstreams(ctx, bundleUUID).Return(nil, nil)
	mockAdapter.EXPECT().CreateBitstream(ctx, bundleUUID, gomock.Any()).Return(models.Bitstream{
		UUID:     newBitUUID,
		CheckSum: models.CheckSum{Algorithm: "MD5", Value: "00000000000000000000000000000000"},
	}, nil)

	_, err := svc.Replace(ctx, testItem("1/1825", itemUUID), ReplaceRequest{Bundle: models.BundleLicense, Path: path})

	assert.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestBitstreamService_Replace_MissingFileTouchesNothing(t *testing.T) {
	svc, _ := newTestBitstreamSvc(t)

	_, err := svc.Replace(context.Background(), testItem("1/1825", itemUUID), ReplaceRequest{
		Bundle: models.BundleLicense, Path: "/nonexistent/license.txt",
	})

	require.Error(t, err)
}
