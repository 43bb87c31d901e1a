package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/dspace-utils/models"
	"github.com/stretchr/testify/require"
)

const (
	itemUUID       = "0d3e0b9a-6c1f-4d52-9a51-6a8f3f0b1c01"
	collectionUUID = "5a1f7c3e-2b4d-4e6f-8a9b-0c1d2e3f4a02"
	targetUUID     = "9c8b7a6d-5e4f-4a3b-2c1d-0e9f8a7b6c03"
	communityUUID  = "1b2c3d4e-5f6a-4b7c-8d9e-0f1a2b3c4d04"
)

func testItem(handle, uuid string) models.Item {
	return models.Item{
		DSpaceObject: models.DSpaceObject{
			UUID:     uuid,
			Name:     "Test item " + handle,
			Handle:   handle,
			Metadata: models.MetadataMap{},
			Type:     models.TypeItem,
		},
		InArchive: true,
	}
}

func testCollection(handle, uuid string) models.Collection {
	return models.Collection{DSpaceObject: models.DSpaceObject{
		UUID: uuid, Name: "Collection " + handle, Handle: handle, Type: models.TypeCollection,
	}}
}

func testCommunity(handle, uuid string) models.Community {
	return models.Community{DSpaceObject: models.DSpaceObject{
		UUID: uuid, Name: "Community " + handle, Handle: handle, Type: models.TypeCommunity,
	}}
}

// writeTempFile creates a file with content in a test directory.
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
