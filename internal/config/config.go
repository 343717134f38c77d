// Package config loads the runlog YAML configuration.
//
// A configuration file is optional. Without one, runs are kept in a SQLite
// database named runlog.db in the working directory.
//
// Example:
//
//	storage:
//	  driver: s3
//	  s3:
//	    bucket: my-runs
//	    region: eu-west-1
//	logging:
//	  level: debug
//	  format: text
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// Default storage settings
	defaultDriver        = "sqlite"
	defaultSQLitePath    = "runlog.db"
	defaultFSRoot        = "runlog-data"
	defaultCollectionKey = "runs_v1"
	defaultDraftKey      = "run_draft_v1"
	defaultS3Region      = "us-east-1"

	// Default export settings
	defaultExportFilename = "running-log.csv"

	// Default logging settings
	defaultLogLevel  = "warn"
	defaultLogFormat = "text"
	defaultLogOutput = "stderr"
)

// Config represents the complete application configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// StorageConfig selects and configures the key-value backend.
type StorageConfig struct {
	// Driver is one of memory, fs, sqlite, s3.
	Driver string `yaml:"driver"`
	// Path is the SQLite database file (sqlite) or the root directory (fs).
	Path string `yaml:"path"`
	// CollectionKey holds the committed runs.
	CollectionKey string `yaml:"collection_key"`
	// DraftKey holds the in-progress draft.
	DraftKey string   `yaml:"draft_key"`
	S3       S3Config `yaml:"s3"`
}

// S3Config holds S3-compatible object storage settings.
type S3Config struct {
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	Prefix          string `yaml:"prefix"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	PathStyle       bool   `yaml:"path_style"`
}

// ExportConfig defines CSV export behavior.
type ExportConfig struct {
	Filename string `yaml:"filename"`
	Dir      string `yaml:"dir"`
}

// LoggingConfig defines logging behavior settings.
type LoggingConfig struct {
	Level     string `yaml:"level"`
	Format    string `yaml:"format"`
	Output    string `yaml:"output"`
	AddSource bool   `yaml:"add_source"`
}

// MetricsConfig controls the prometheus textfile written after each command.
type MetricsConfig struct {
	// Textfile is a path for node_exporter's textfile collector. Empty disables it.
	Textfile string `yaml:"textfile"`
}

// Default returns a configuration with all defaults applied.
func Default() Config {
	var c Config
	c.SetDefaults()
	return c
}

// SetDefaults sets default values for unset fields.
func (c *Config) SetDefaults() {
	if c.Storage.Driver == "" {
		c.Storage.Driver = defaultDriver
	}
	if c.Storage.Path == "" {
		switch c.Storage.Driver {
		case "sqlite":
			c.Storage.Path = defaultSQLitePath
		case "fs":
			c.Storage.Path = defaultFSRoot
		}
	}
	if c.Storage.CollectionKey == "" {
		c.Storage.CollectionKey = defaultCollectionKey
	}
	if c.Storage.DraftKey == "" {
		c.Storage.DraftKey = defaultDraftKey
	}
	if c.Storage.Driver == "s3" && c.Storage.S3.Region == "" {
		c.Storage.S3.Region = defaultS3Region
	}
	if c.Export.Filename == "" {
		c.Export.Filename = defaultExportFilename
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if c.Logging.Output == "" {
		c.Logging.Output = defaultLogOutput
	}
}

// Validate checks cross-field rules the schema cannot express.
func (c *Config) Validate() error {
	if c.Storage.CollectionKey == c.Storage.DraftKey {
		return fmt.Errorf("collection_key and draft_key must differ")
	}
	if c.Storage.Driver == "s3" && c.Storage.S3.Bucket == "" {
		return fmt.Errorf("s3 bucket is required for the s3 driver")
	}
	if c.Storage.S3.AccessKeyID != "" && c.Storage.S3.SecretAccessKey == "" {
		return fmt.Errorf("s3 secret_access_key is required when access_key_id is set")
	}
	return nil
}

// Load reads the YAML config file at path. The document is checked against
// the embedded CUE schema before it is decoded.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	return Parse(data)
}

// Parse decodes, validates and defaults a YAML document.
func Parse(data []byte) (Config, error) {
	var cfg Config

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := checkSchema(raw); err != nil {
		return cfg, err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && len(raw) > 0 {
		return cfg, fmt.Errorf("decode config: %w", err)
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
