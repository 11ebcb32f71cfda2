// Package scheduler drives periodic alarm evaluation.
//
// Loop invokes a tick callback once per interval on a single goroutine, so
// ticks never overlap. Start replaces any running schedule instead of stacking
// a second one, and Stop is safe to call at any time.
package scheduler
