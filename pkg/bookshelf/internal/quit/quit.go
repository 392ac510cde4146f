// Package quit carries a process-wide quit request from signal handlers and
// the power button to the screen loops, which poll it once per frame.
package quit

import (
	"context"
	"os"
	"os/signal"
	"sync"

	"go.uber.org/atomic"
)

// Flag records that the application should stop and why.
type Flag struct {
	requested atomic.Bool
	reason    atomic.String
}

// Request marks the flag. Only the first reason is kept.
func (f *Flag) Request(reason string) {
	if f.requested.CompareAndSwap(false, true) {
		f.reason.Store(reason)
	}
}

// Requested reports whether a quit was requested.
func (f *Flag) Requested() bool {
	return f.requested.Load()
}

// Reason returns the first reason passed to Request.
func (f *Flag) Reason() string {
	return f.reason.Load()
}

// Reset clears the flag.
func (f *Flag) Reset() {
	f.requested.Store(false)
	f.reason.Store("")
}

// Watch sets f when one of sigs arrives. The returned context is cancelled
// at the same time, or when parent is done. Call stop to release the signal
// handler and wait for the watcher goroutine to exit.
func Watch(parent context.Context, f *Flag, sigs ...os.Signal) (ctx context.Context, stop func()) {
	ctx, cancel := context.WithCancel(parent)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case sig := <-ch:
			f.Request(sig.String())
			cancel()
		case <-ctx.Done():
		case <-done:
		}
	}()

	var once sync.Once
	stop = func() {
		once.Do(func() {
			signal.Stop(ch)
			close(done)
			wg.Wait()
			cancel()
		})
	}
	return ctx, stop
}
