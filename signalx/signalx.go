// Package signalx ties context cancellation to OS signals.
package signalx

import (
	"context"
	"os"
	"os/signal"
	"sync"
)

// NotifyExit sets up a context that's cancelled when any of the given signals are received.
// If a second signal is received, then [os.Exit] will be called with a non-zero exit code.
// This is useful for interactive loops that may be blocked reading input when the first signal arrives.
//
// The returned stop function cancels the context and stops signal delivery, and should always be called.
func NotifyExit(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
	if len(signals) == 0 {
		panic("no signals passed to NotifyExit")
	}
	ctx, cancel := context.WithCancel(parent)
	stopped := make(chan struct{})
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, signals...)
	go func() {
		defer cancel()
		select {
		case <-ctx.Done():
			return
		case <-sigs:
		}
		cancel()
		select {
		case <-stopped:
		case <-sigs:
			os.Exit(1)
		}
	}()
	var once sync.Once
	return ctx, func() {
		once.Do(func() {
			signal.Stop(sigs)
			close(stopped)
			cancel()
		})
	}
}
