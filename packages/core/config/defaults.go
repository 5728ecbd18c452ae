package config

import (
	"sort"

	"github.com/abdul-hamid-achik/hitpart/packages/body"
	"github.com/abdul-hamid-achik/hitpart/packages/multipart"
)

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		MaxMemoryBytes: multipart.DefaultMaxMemoryBytes,
		TempDir:        "",
		ChunkSize:      body.DefaultChunkSize,
		BoundaryPrefix: multipart.DefaultBoundaryPrefix,
		Headers:        nil,
	}
}

// IsDefault returns true if the config matches defaults
func (c *Config) IsDefault() bool {
	defaults := DefaultConfig()
	return c.MaxMemoryBytes == defaults.MaxMemoryBytes &&
		c.TempDir == defaults.TempDir &&
		c.ChunkSize == defaults.ChunkSize &&
		c.BoundaryPrefix == defaults.BoundaryPrefix &&
		len(c.Headers) == 0
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
