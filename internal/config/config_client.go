package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// ClientAPI holds the settings of the REST adapter.
type ClientAPI struct {
	// Endpoint is the REST API root without a trailing slash.
	Endpoint string
	// Username and Password log the session in.
	Username string
	Password string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientStorage groups database settings.
type ClientStorage struct {
	// PostgresDSN is the DSpace database; empty when not configured.
	PostgresDSN string
	// JournalPath is the SQLite journal; empty disables it.
	JournalPath string
}

// ClientThumbnail holds thumbnail settings.
type ClientThumbnail struct {
	PageSource string
	Converter  string
}

// ClientConfig is the configuration view used by commands that talk to the
// repository, assembled from [StructuredConfig].
type ClientConfig struct {
	API       ClientAPI
	Storage   ClientStorage
	Thumbnail ClientThumbnail

	// FilePath is the YAML file that was read, if any.
	FilePath string
}

// GetClientConfig builds and validates the client view of the merged
// configuration. Missing credentials yield [ErrMissingCredential].
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		API: ClientAPI{
			Endpoint:       strings.TrimRight(strings.TrimSpace(cfg.API.Endpoint), "/"),
			Username:       cfg.API.Username,
			Password:       cfg.API.Password,
			RequestTimeout: cfg.API.RequestTimeout,
		},
		Storage: ClientStorage{
			PostgresDSN: cfg.Storage.PostgresDSN,
			JournalPath: cfg.Storage.JournalPath,
		},
		Thumbnail: ClientThumbnail{
			PageSource: cfg.Thumbnail.PageSource,
			Converter:  cfg.Thumbnail.Converter,
		},
		FilePath: cfg.FilePath,
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}
