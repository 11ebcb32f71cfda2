// Package alarm implements the gRPC transport for the alarm service.
//
// It converts wire messages to domain commands, maps domain errors to gRPC
// status codes and exposes a server that calls into a provided
// business-service interface.
package alarm
