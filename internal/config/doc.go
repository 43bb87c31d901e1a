// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. YAML config file (~/.config/dspace-utils/dspace.yml by default)
//  3. Environment variables
//  4. Command-line flags
//
// Credentials are never read from flags. The main entry points are
// [GetStructuredConfig] and [GetClientConfig].
package config
