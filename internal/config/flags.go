package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// FlagConfig is the name of the flag selecting the YAML configuration file.
const FlagConfig = "config"

// AddFlags registers the configuration flags on fs.
//
// Flags:
//
//	--config YAML configuration file path
func AddFlags(fs *pflag.FlagSet) {
	fs.String(FlagConfig, "", "YAML configuration file (default ~/.config/dspace-utils/dspace.yml)")
}

// parseFlags reads the configuration flags registered by [AddFlags] from an
// already parsed fs. Flags that were not set on the command line leave the
// corresponding fields empty so that they do not override other sources.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	if fs == nil || fs.Lookup(FlagConfig) == nil || !fs.Changed(FlagConfig) {
		return cfg, nil
	}

	path, err := fs.GetString(FlagConfig)
	if err != nil {
		return nil, fmt.Errorf("error reading --%s flag: %w", FlagConfig, err)
	}
	cfg.FilePath = path

	return cfg, nil
}
