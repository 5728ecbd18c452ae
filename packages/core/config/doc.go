// Package config handles configuration loading for hitpart.
//
// It provides functionality for:
//   - Loading configuration from .hitpart.yaml or hitpart.config.json files
//   - Default values matching the multipart package
//   - Merging overrides and converting them to multipart options
package config
