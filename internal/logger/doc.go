// Package logger wraps zap for the alarm clock binaries:
//   - a global sugared logger with a console encoder,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level configuration and parsing utilities,
//   - leveled helpers (InfoKV, WarnKV, ErrorKV and friends).
//
// Services accept a context and extract the logger from it, so every arm
// cycle, tick and sink call is logged with its scope attached.
package logger
