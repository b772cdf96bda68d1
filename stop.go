package excserial

import (
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
)

// StopSignal reports whether termination has been requested. It is polled,
// never waited on.
type StopSignal interface {
	Stopped() bool
}

// StopFlag is a one-way latch: once Stop is called it stays set
type StopFlag struct {
	stopped atomic.Bool
}

// Stop requests termination. Safe to call from any goroutine, any number of times.
func (f *StopFlag) Stop() {
	f.stopped.Store(true)
}

// Stopped reports whether Stop has been called
func (f *StopFlag) Stopped() bool {
	return f.stopped.Load()
}

// NotifyStop sets flag when the process receives one of the platform's
// termination signals. The handler goroutine does nothing but set the flag.
// The returned function unregisters the handler.
func NotifyStop(flag *StopFlag) (release func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, stopSignals...)

	done := make(chan struct{})
	go func() {
		select {
		case <-sigChan:
			flag.Stop()
		case <-done:
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigChan)
			close(done)
		})
	}
}
