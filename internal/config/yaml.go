package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFilePath returns ~/.config/dspace-utils/dspace.yml.
func DefaultFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error locating home directory: %w", err)
	}

	return filepath.Join(home, ".config", "dspace-utils", "dspace.yml"), nil
}

// yamlSettings mirrors the keys of dspace.yml.
type yamlSettings struct {
	Username            string   `yaml:"username"`
	Password            string   `yaml:"password"`
	APIEndpoint         string   `yaml:"api_endpoint"`
	API                 string   `yaml:"api"`
	PostgresURI         string   `yaml:"postgres_uri"`
	ThumbnailPageSource string   `yaml:"thumbnail_page_source"`
	JournalPath         string   `yaml:"journal_path"`
	RequestTimeout      Duration `yaml:"request_timeout"`
	Converter           string   `yaml:"converter"`
}

// yamlDocument accepts the settings either at the top level or nested under a
// "config" mapping.
type yamlDocument struct {
	yamlSettings `yaml:",inline"`

	Config *yamlSettings `yaml:"config"`
}

func parseYAML(yamlFilePath string) (*StructuredConfig, error) {
	data, err := os.ReadFile(yamlFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a yaml file: %w", err)
	}

	var doc yamlDocument
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error decoding yaml configs %s: %w", yamlFilePath, err)
	}

	settings := doc.yamlSettings
	if doc.Config != nil {
		settings = *doc.Config
	}

	endpoint := settings.APIEndpoint
	if endpoint == "" {
		endpoint = settings.API
	}

	cfg := &StructuredConfig{
		API: API{
			Endpoint:       endpoint,
			Username:       settings.Username,
			Password:       settings.Password,
			RequestTimeout: time.Duration(settings.RequestTimeout),
		},
		Storage: Storage{
			PostgresDSN: settings.PostgresURI,
			JournalPath: settings.JournalPath,
		},
		Thumbnail: Thumbnail{
			PageSource: settings.ThumbnailPageSource,
			Converter:  settings.Converter,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports YAML unmarshaling
// from strings like "1m", "30s" or from a plain number of seconds.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar", value.Line)
	}

	if seconds, err := strconv.ParseFloat(value.Value, 64); err == nil {
		*d = Duration(time.Duration(seconds * float64(time.Second)))
		return nil
	}

	tmp, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = Duration(tmp)
	return nil
}
