// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Thumbnail page sources understood by the thumbnail command.
const (
	PageSourceMetadata = "metadata"
	PageSourceDatabase = "database"
)

// Defaults applied before any other source is merged.
const (
	DefaultRequestTimeout = 30 * time.Second
	DefaultConverter      = "gm"
)

// StructuredConfig is the top-level configuration container for the
// dspace-utils commands. It aggregates all sub-configurations and is
// populated by merging values from the YAML file, environment variables
// and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// API holds the DSpace REST endpoint and the credentials used to log in.
	API API `envPrefix:"DSPACE_API_"`

	// Storage holds the optional database connections: the DSpace
	// PostgreSQL database and the local operation journal.
	Storage Storage

	// Thumbnail holds thumbnail generation settings.
	Thumbnail Thumbnail `envPrefix:"DSPACE_THUMBNAIL_"`

	// FilePath is the path of the YAML configuration file.
	// Populated via the DSPACE_UTILS_CONFIG environment variable or the
	// --config flag.
	FilePath string `env:"DSPACE_UTILS_CONFIG"`
}

// API holds connection settings for the DSpace REST API.
type API struct {
	// Endpoint is the REST API root, e.g. "https://repo.example.org/server/api".
	// Env: DSPACE_API_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// Username is the e-mail of an administrative EPerson.
	// Env: DSPACE_API_USERNAME
	Username string `env:"USERNAME"`

	// Password belongs to Username.
	// Env: DSPACE_API_PASSWORD
	Password string `env:"PASSWORD"`

	// RequestTimeout bounds every single REST request (e.g. "30s", "1m").
	// Env: DSPACE_API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the database settings.
type Storage struct {
	// PostgresDSN is the DSpace PostgreSQL connection string, required only
	// when thumbnail page numbers are read from the database.
	// Env: DSPACE_POSTGRES_URI
	PostgresDSN string `env:"DSPACE_POSTGRES_URI"`

	// JournalPath is the SQLite file recording mutating operations.
	// Empty disables the journal.
	// Env: DSPACE_UTILS_JOURNAL
	JournalPath string `env:"DSPACE_UTILS_JOURNAL"`
}

// Thumbnail holds settings of the thumbnail command.
type Thumbnail struct {
	// PageSource is either "metadata" (mus.data.thumbpage on the item) or
	// "database" (the DSpace PostgreSQL database).
	// Env: DSPACE_THUMBNAIL_PAGE_SOURCE
	PageSource string `env:"PAGE_SOURCE"`

	// Converter is the GraphicsMagick binary.
	// Env: DSPACE_THUMBNAIL_CONVERTER
	Converter string `env:"CONVERTER"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		API:       API{RequestTimeout: DefaultRequestTimeout},
		Thumbnail: Thumbnail{PageSource: PageSourceMetadata, Converter: DefaultConverter},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. fs may be nil when no command-line flags apply.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(fs).
		withYAML().
		build()
}
