package models

import (
	"time"
)

// Metadata fields used by the commands.
const (
	FieldTitle             = "dc.title"
	FieldSource            = "dc.source"
	FieldAccessRights      = "dcterms.accessRights"
	FieldIdentifierURI     = "dc.identifier.uri"
	FieldProvenance        = "dc.description.provenance"
	FieldDateAccessioned   = "dc.date.accessioned"
	FieldDateAvailable     = "dc.date.available"
	FieldThumbnailPage     = "mus.data.thumbpage"
	DefaultConfidenceValue = -1
)

// TimestampLayout is the UTC layout DSpace expects in date fields.
const TimestampLayout = "2006-01-02T15:04:05Z"

// MetadataValue is one value of a metadata field.
type MetadataValue struct {
	Value string `json:"value" yaml:"value"`

	// Language is null for values without a language tag.
	Language *string `json:"language" yaml:"language,omitempty"`

	// Authority is null unless the value is controlled by an authority.
	Authority *string `json:"authority" yaml:"authority,omitempty"`

	Confidence int `json:"confidence" yaml:"confidence"`

	// Place orders the values of one field, starting at 0.
	Place int `json:"place" yaml:"place"`
}

// NewMetadataValue returns a value without language or authority, with
// confidence -1 and place 0.
func NewMetadataValue(value string) MetadataValue {
	return MetadataValue{Value: value, Confidence: DefaultConfidenceValue}
}

// FormatTimestamp renders t in UTC using [TimestampLayout].
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// MetadataMap maps a field name such as "dc.title" to its ordered values.
type MetadataMap map[string][]MetadataValue

// Values returns the values of field, nil when absent.
func (m MetadataMap) Values(field string) []MetadataValue {
	if m == nil {
		return nil
	}
	return m[field]
}

// First returns the first value of field.
func (m MetadataMap) First(field string) (value MetadataValue, ok bool) {
	values := m.Values(field)
	if len(values) == 0 {
		return MetadataValue{}, false
	}
	return values[0], true
}

// Has reports whether field is present, even with no values.
func (m MetadataMap) Has(field string) bool {
	_, ok := m[field]
	return ok
}

// Set replaces the values of field and renumbers their places.
func (m MetadataMap) Set(field string, values ...MetadataValue) {
	out := make([]MetadataValue, len(values))
	for i, v := range values {
		v.Place = i
		out[i] = v
	}
	m[field] = out
}

// Delete removes field.
func (m MetadataMap) Delete(field string) {
	delete(m, field)
}

// Clone returns a deep copy of m.
func (m MetadataMap) Clone() MetadataMap {
	if m == nil {
		return nil
	}
	out := make(MetadataMap, len(m))
	for field, values := range m {
		cp := make([]MetadataValue, len(values))
		copy(cp, values)
		out[field] = cp
	}
	return out
}
