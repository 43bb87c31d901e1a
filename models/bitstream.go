// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Bundle names used by DSpace for item attachments.
const (
	BundleOriginal  = "ORIGINAL"
	BundleThumbnail = "THUMBNAIL"
	BundleLicense   = "LICENSE"
)

// Bundle is a named group of bitstreams attached to an item. Names are unique
// per item.
type Bundle struct {
	UUID     string      `json:"uuid"`
	Name     string      `json:"name"`
	Handle   *string     `json:"handle"`
	Metadata MetadataMap `json:"metadata"`
	Type     string      `json:"type"`
}

// CheckSum is the server-side digest of a bitstream.
type CheckSum struct {
	Algorithm string `json:"checkSumAlgorithm"`
	Value     string `json:"value"`
}

// Bitstream is a binary file that belongs to a bundle.
type Bitstream struct {
	ID         string      `json:"id,omitempty"`
	UUID       string      `json:"uuid"`
	Name       string      `json:"name"`
	BundleName string      `json:"bundleName,omitempty"`
	SizeBytes  int64       `json:"sizeBytes"`
	CheckSum   CheckSum    `json:"checkSum"`
	Metadata   MetadataMap `json:"metadata"`
	Type       string      `json:"type"`
}

// BitstreamUpload describes a new bitstream to be created from a local file.
type BitstreamUpload struct {
	// Name is the bitstream name shown by DSpace (usually the file name).
	Name string

	// Path is the local file uploaded as the bitstream content.
	Path string

	// MimeType is sent as the content type of the uploaded part.
	MimeType string

	// Metadata is stored on the new bitstream.
	Metadata MetadataMap
}

// FindBundle returns the bundle named name. Bundle names are unique per item,
// so at most one match exists.
func FindBundle(bundles []Bundle, name string) (Bundle, bool) {
	for _, b := range bundles {
		if b.Name == name {
			return b, true
		}
	}
	return Bundle{}, false
}
