package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/abdul-hamid-achik/hitpart/packages/multipart"
)

// Config holds the settings used to build multipart assemblies
type Config struct {
	MaxMemoryBytes int64             `json:"maxMemoryBytes,omitempty" yaml:"maxMemoryBytes,omitempty"`
	TempDir        string            `json:"tempDir,omitempty" yaml:"tempDir,omitempty"`     // Spool directory, empty for os.TempDir
	ChunkSize      int               `json:"chunkSize,omitempty" yaml:"chunkSize,omitempty"` // bytes
	BoundaryPrefix string            `json:"boundaryPrefix,omitempty" yaml:"boundaryPrefix,omitempty"`
	Headers        map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"` // Headers added to every assembly
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	".hitpart.yaml",
	".hitpart.yml",
	"hitpart.config.json",
	".hitpartrc.json",
}

// LoadConfig loads configuration from the specified path or searches for config files
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}

	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory
func FindAndLoadConfig(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return loadConfigFromFile(configPath)
		}
	}

	// Return defaults if no config file found
	return DefaultConfig(), nil
}

// loadConfigFromFile decodes YAML or JSON depending on the extension
func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}

	config := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return config, nil
}

// Validate rejects settings that cannot produce a valid assembly
func (c *Config) Validate() error {
	if c.MaxMemoryBytes < 0 {
		return errors.Errorf("maxMemoryBytes must not be negative, got %d", c.MaxMemoryBytes)
	}
	if c.ChunkSize < 0 {
		return errors.Errorf("chunkSize must not be negative, got %d", c.ChunkSize)
	}
	// The generated boundary adds 16 hex digits to the prefix.
	if err := multipart.ValidateBoundary(c.BoundaryPrefix + "0000000000000000"); err != nil {
		return errors.Wrap(err, "boundaryPrefix")
	}
	return nil
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.MaxMemoryBytes > 0 {
		result.MaxMemoryBytes = other.MaxMemoryBytes
	}
	if other.TempDir != "" {
		result.TempDir = other.TempDir
	}
	if other.ChunkSize > 0 {
		result.ChunkSize = other.ChunkSize
	}
	if other.BoundaryPrefix != "" {
		result.BoundaryPrefix = other.BoundaryPrefix
	}

	// Merge headers
	if len(other.Headers) > 0 {
		headers := make(map[string]string, len(c.Headers)+len(other.Headers))
		for k, v := range c.Headers {
			headers[k] = v
		}
		for k, v := range other.Headers {
			headers[k] = v
		}
		result.Headers = headers
	}

	return &result
}

// AssemblyOptions converts the config into options for multipart.New
func (c *Config) AssemblyOptions() []multipart.Option {
	opts := []multipart.Option{
		multipart.WithBoundary(multipart.NewBoundary(c.BoundaryPrefix)),
		multipart.WithMaxMemoryBytes(c.MaxMemoryBytes),
		multipart.WithTempDir(c.TempDir),
		multipart.WithChunkSize(c.ChunkSize),
	}
	for _, k := range sortedKeys(c.Headers) {
		opts = append(opts, multipart.WithHeader(k, c.Headers[k]))
	}
	return opts
}

// SaveConfig saves the configuration as YAML or JSON depending on the extension
func (c *Config) SaveConfig(path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return errors.Wrap(err, "failed to encode config")
	}

	return os.WriteFile(path, data, 0644)
}
