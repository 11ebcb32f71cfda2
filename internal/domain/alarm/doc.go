// Package alarm contains the core domain of the alarm clock.
//
// It defines the wall-clock types (ClockReading, Target), the pause window
// specification and its evaluator, and Session: the value object that carries
// the alarm lifecycle. Session operations are pure: they take a session and a
// clock reading and return the next session together with the transitions
// that happened, so the whole state machine is testable without timers.
package alarm
