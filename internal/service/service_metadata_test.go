package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/dspace-utils/internal/logger"
	"github.com/MKhiriev/dspace-utils/internal/mock"
	"github.com/MKhiriev/dspace-utils/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func dumpFixtureItem() models.Item {
	item := models.Item{
		DSpaceObject: models.DSpaceObject{
			UUID:     "49022849-8137-4ea0-9caf-bed74d5ea9ca",
			Name:     "AVATAR: A CULTURAL AND ETHICAL JOURNEY",
			Handle:   "1/18292",
			Type:     models.TypeItem,
			Metadata: models.MetadataMap{},
		},
		InArchive: true,
	}
	item.Metadata.Set(models.FieldTitle, models.NewMetadataValue("AVATAR: A CULTURAL AND ETHICAL JOURNEY"))
	item.Metadata.Set("dc.description.abstract", models.NewMetadataValue("First paragraph.\r\nSecond paragraph.\n"))
	item.Metadata.Set("dc.contributor.author",
		models.NewMetadataValue("Doe, Jane"),
		models.NewMetadataValue("Roe, Richard"),
	)
	return item
}

func TestFormatItem(t *testing.T) {
	want := "name: AVATAR: A CULTURAL AND ETHICAL JOURNEY\n" +
		"type: item\n" +
		"handle: 1/18292\n" +
		"inArchive: true\n" +
		"uuid: 49022849-8137-4ea0-9caf-bed74d5ea9ca\n" +
		"withdrawn: false\n" +
		"metadata:\n" +
		"    dc.contributor.author:\n" +
		"        Doe, Jane\n" +
		"        Roe, Richard\n" +
		"    dc.description.abstract:\n" +
		"        First paragraph.\n" +
		"        Second paragraph.\n" +
		"\n" +
		"    dc.title:\n" +
		"        AVATAR: A CULTURAL AND ETHICAL JOURNEY"

	assert.Equal(t, want, FormatItem(dumpFixtureItem()))
}

func TestFormatItem_NoMetadata(t *testing.T) {
	item := testItem("1/1", itemUUID)
	item.Metadata = nil

	got := FormatItem(item)

	assert.Contains(t, got, "metadata:")
	assert.NotContains(t, got, "    ")
}

func TestMetadataService_Dump(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockRepositoryAdapter(ctrl)
	svc := NewMetadataService(NewResolverService(mockAdapter, logger.Nop()), logger.Nop())

	mockAdapter.EXPECT().FindHandle(gomock.Any(), models.Handle("1/18292")).Return(dumpFixtureItem(), nil)

	got, err := svc.Dump(context.Background(), "1/18292")

	require.NoError(t, err)
	assert.Equal(t, FormatItem(dumpFixtureItem()), got)
}

func TestMetadataService_Dump_RejectsCollections(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockRepositoryAdapter(ctrl)
	svc := NewMetadataService(NewResolverService(mockAdapter, logger.Nop()), logger.Nop())

	mockAdapter.EXPECT().FindHandle(gomock.Any(), models.Handle("1/2")).Return(testCollection("1/2", collectionUUID), nil)

	_, err := svc.Dump(context.Background(), "1/2")

	assert.ErrorIs(t, err, ErrUnexpectedObjectType)
}
