// Package history implements the outcome log of alarm arm cycles.
//
// The FileRepository keeps the most recent records as YAML on disk. Armed
// alarms themselves are never stored: a restarted daemon always starts idle.
package history
