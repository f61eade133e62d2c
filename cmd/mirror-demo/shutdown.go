package main

import (
	"context"
	"time"
)

// shutdownTimeout bounds how long a signal waits for the render loop to release GL
// resources on the main thread before the process exits anyway.
const shutdownTimeout = 5 * time.Second

// shutdownHook cancels the run context and blocks until done is closed, so the
// deferred cleanup in run finishes before closer exits the process.
func shutdownHook(cancel context.CancelFunc, done <-chan struct{}, timeout time.Duration) func() {
	return func() {
		cancel()
		select {
		case <-done:
		case <-time.After(timeout):
		}
	}
}
