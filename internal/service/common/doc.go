// Package common holds helpers shared by the CLI clients.
//
// It provides a lightweight gRPC client wrapper with timeouts and a health
// probe, and a utility to detect the current system actor (hostname/username)
// recorded for audit purposes.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
