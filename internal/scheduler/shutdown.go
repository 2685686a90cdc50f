package scheduler

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var (
	shutdownOnce sync.Once
	shutdownCh   chan os.Signal
)

// NotifyShutdown registers for SIGINT/SIGTERM and returns the channel the
// signal will arrive on. Registration happens once regardless of how many
// callers ask; signal.Notify is additive, so handlers installed elsewhere
// in the process keep working.
func NotifyShutdown() <-chan os.Signal {
	shutdownOnce.Do(func() {
		shutdownCh = make(chan os.Signal, 1)
		signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)
	})

	return shutdownCh
}
