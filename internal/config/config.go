package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultFileName is the optional config file looked up in the working directory.
const DefaultFileName = ".svcscaffold.yaml"

// Config represents the svcscaffold configuration
type Config struct {
	Source   SourceConfig   `mapstructure:"source"`
	Schema   SchemaConfig   `mapstructure:"schema"`
	Generate GenerateConfig `mapstructure:"generate"`
	Cleanup  CleanupConfig  `mapstructure:"cleanup"`
	Log      LogConfig      `mapstructure:"log"`
}

// SourceConfig controls namespace discovery in the generated source tree.
type SourceConfig struct {
	Extension       string   `mapstructure:"extension"`        // ".java"
	BoundarySegment string   `mapstructure:"boundary_segment"` // root namespace ends before this segment
	MarkerEntities  []string `mapstructure:"marker_entities"`  // classes that locate the model namespace
}

type SchemaConfig struct {
	CollectionPath string `mapstructure:"collection_path"`
}

type GenerateConfig struct {
	HonorIDOverride bool `mapstructure:"honor_id_override"`
}

type CleanupConfig struct {
	BackupSuffix string `mapstructure:"backup_suffix"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			Extension:       ".java",
			BoundarySegment: "web",
			MarkerEntities:  []string{"AuditDetails", "CitizenService"},
		},
		Schema:   SchemaConfig{CollectionPath: "components.schemas"},
		Generate: GenerateConfig{HonorIDOverride: false},
		Cleanup:  CleanupConfig{BackupSuffix: ".bak"},
		Log:      LogConfig{Level: "info", Format: "console"},
	}
}

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"log-level":         "log.level",
	"log-format":        "log.format",
	"honor-id-override": "generate.honor_id_override",
}

// Load resolves configuration from defaults, an optional YAML file, and
// any flags in fs that were explicitly set. path may be empty, in which
// case DefaultFileName in dir is used when present. Environment variables
// are not consulted.
func Load(dir, path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, DefaultFileName)
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		// Only an explicitly requested file must exist.
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if fs != nil {
		for flag, key := range flagKeys {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", flag, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("source.extension", d.Source.Extension)
	v.SetDefault("source.boundary_segment", d.Source.BoundarySegment)
	v.SetDefault("source.marker_entities", d.Source.MarkerEntities)
	v.SetDefault("schema.collection_path", d.Schema.CollectionPath)
	v.SetDefault("generate.honor_id_override", d.Generate.HonorIDOverride)
	v.SetDefault("cleanup.backup_suffix", d.Cleanup.BackupSuffix)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// applyDefaults fills values a config file explicitly blanked.
func applyDefaults(cfg *Config) {
	d := Default()
	if cfg.Source.Extension == "" {
		cfg.Source.Extension = d.Source.Extension
	}
	if cfg.Source.BoundarySegment == "" {
		cfg.Source.BoundarySegment = d.Source.BoundarySegment
	}
	if len(cfg.Source.MarkerEntities) == 0 {
		cfg.Source.MarkerEntities = d.Source.MarkerEntities
	}
	if cfg.Schema.CollectionPath == "" {
		cfg.Schema.CollectionPath = d.Schema.CollectionPath
	}
	if cfg.Cleanup.BackupSuffix == "" {
		cfg.Cleanup.BackupSuffix = d.Cleanup.BackupSuffix
	}
}
