// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Environment variables (TRANSNET_*) override file values; the CLI applies its
// flags on top of both.
package config
