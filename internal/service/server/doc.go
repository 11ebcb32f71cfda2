// Package server runs the alarm daemon.
//
// The unexported service owns the single alarm session: it arms, cancels and
// ticks it under one mutex, drives the one-second scheduler while the alarm
// is active, and dispatches notifications, the alarm tone and history records
// in the background. Run wires it to the gRPC control API and the standard
// gRPC health service.
package server
