// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Zero values are replaced by defaults, and BUSFLEET_PORT / BUSFLEET_TOKEN
// override the file.
package config
