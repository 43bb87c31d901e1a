// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks the settings every command relies on. Credentials are
// checked separately by [ClientConfig.validate] because some commands
// (version) never talk to the repository.
func (cfg *StructuredConfig) validate() error {
	if cfg.API.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout %s", ErrInvalidAdapterConfigs, cfg.API.RequestTimeout)
	}

	switch cfg.Thumbnail.PageSource {
	case PageSourceMetadata, PageSourceDatabase:
	default:
		return fmt.Errorf("%w: unknown page source %q", ErrInvalidThumbnailConfigs, cfg.Thumbnail.PageSource)
	}

	if cfg.Thumbnail.Converter == "" {
		return fmt.Errorf("%w: empty converter", ErrInvalidThumbnailConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"username", cfg.API.Username},
		{"password", cfg.API.Password},
		{"api_endpoint", cfg.API.Endpoint},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingCredential, r.key)
		}
	}

	u, err := url.Parse(cfg.API.Endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: api_endpoint %q must include scheme and host", ErrInvalidAdapterConfigs, cfg.API.Endpoint)
	}

	if cfg.Thumbnail.PageSource == PageSourceDatabase && cfg.Storage.PostgresDSN == "" {
		return fmt.Errorf("%w: postgres_uri", ErrMissingCredential)
	}

	return nil
}
