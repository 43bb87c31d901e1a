package config

import (
	"errors"
	"fmt"
	"io/fs"

	"dario.cat/mergo"
	"github.com/spf13/pflag"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error

	// defaultFilePath is consulted when no source names a config file.
	defaultFilePath func() (string, error)
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs:         make([]*StructuredConfig, 0, 4),
		defaultFilePath: DefaultFilePath,
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := defaultConfig()
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(flags *pflag.FlagSet) *configBuilder {
	flagCfg, err := parseFlags(flags)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagCfg)
	return b
}

// withYAML reads the file named by the sources collected so far, falling back
// to the default location. File values have the lowest priority, so the file
// config is put in front of the others. A missing default file is not an
// error; a missing file that was asked for explicitly is.
func (b *configBuilder) withYAML() *configBuilder {
	var filePath string
	for _, cfg := range b.configs {
		if cfg.FilePath != "" {
			filePath = cfg.FilePath
		}
	}

	explicit := filePath != ""
	if !explicit {
		defaultPath, err := b.defaultFilePath()
		if err != nil {
			return b
		}
		filePath = defaultPath
	}

	fileCfg, err := parseYAML(filePath)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return b
		}
		b.err = errors.Join(b.err, err)
		return b
	}
	fileCfg.FilePath = filePath

	b.configs = append([]*StructuredConfig{fileCfg}, b.configs...)
	return b
}
