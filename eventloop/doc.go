// SPDX-License-Identifier: EPL-2.0

// Package eventloop is a serial queue of deferred tasks ordered by deadline.
//
// Deadlines are read from a github.com/benbjohnson/clock clock, so tests can
// drive the loop with clock.Mock and RunDue instead of sleeping. In
// production Run executes tasks as they fall due until its context ends.
//
// Tasks run one at a time on the goroutine calling RunDue or Run. A panic in
// a task is recovered and logged; the loop keeps going.
package eventloop
