package adapter

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/dspace-utils/models"
)

// defaultPageSize is requested for every paged listing.
const defaultPageSize = 100

// halList is the envelope DSpace wraps around collection resources:
//
//	{"_embedded": {"<key>": [...]}, "page": {...}}
type halList struct {
	Embedded map[string]json.RawMessage `json:"_embedded"`
	Page     *models.Page               `json:"page"`
}

// decodeHALList extracts the list stored under key. An absent key is an
// empty list: DSpace omits "_embedded" entirely for empty results.
func decodeHALList[T any](body []byte, key string) ([]T, models.Page, error) {
	var list halList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, models.Page{}, err
	}

	var page models.Page
	if list.Page != nil {
		page = *list.Page
	}

	raw, ok := list.Embedded[key]
	if !ok {
		return nil, page, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, page, fmt.Errorf("decode %s: %w", key, err)
	}

	return items, page, nil
}

// searchResponse mirrors GET /discover/search/objects.
type searchResponse struct {
	Embedded struct {
		SearchResult struct {
			Embedded struct {
				Objects []struct {
					Embedded struct {
						IndexableObject json.RawMessage `json:"indexableObject"`
					} `json:"_embedded"`
				} `json:"objects"`
			} `json:"_embedded"`
			Page models.Page `json:"page"`
		} `json:"searchResult"`
	} `json:"_embedded"`
}

// newObjectRequest is the body of POST requests creating bundles and
// collections.
type newObjectRequest struct {
	Name     string             `json:"name"`
	Metadata models.MetadataMap `json:"metadata"`
}

// bitstreamProperties is the "properties" part of a bitstream upload.
type bitstreamProperties struct {
	Name       string             `json:"name"`
	BundleName string             `json:"bundleName,omitempty"`
	Metadata   models.MetadataMap `json:"metadata"`
}

// patchOperation is one JSON patch operation.
type patchOperation struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value,omitempty"`
}
