// Package config defines the settings shared by the alarm clock binaries and
// provides helpers to load, validate and save them in YAML format.
//
// Validate fills in defaults for everything except the daemon address, so a
// minimal settings file only needs `server_addr`.
package config
