package chain

import (
	"io"

	"github.com/18thday/logchain/core"
)

// Chain walks an owned ordered sequence of handlers. Dispatch stops at
// the first handler whose classification matches the message; a message
// matching no handler completes with no effect and no signal.
//
// A Chain is safe to share between goroutines only if its handlers are;
// the built-in variants perform unsynchronized I/O and expect at most
// one in-flight Dispatch at a time.
type Chain struct {
	handlers []Handler
	stats    *Stats

	// onWriteError observes local write failures (never terminal ones).
	onWriteError func(error)
}

// Option configures a Chain.
type Option func(*Chain)

// WithWriteErrorHook registers a callback invoked when a handler's
// write fails locally. The failure is still counted in Stats and never
// propagates out of Dispatch.
func WithWriteErrorHook(fn func(error)) Option {
	return func(c *Chain) {
		c.onWriteError = fn
	}
}

// New creates a chain over the given handlers, dispatched in order.
func New(handlers []Handler, opts ...Option) *Chain {
	c := &Chain{
		handlers: handlers,
		stats:    NewStats(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Default wires the standard four-handler chain:
// fatal, file-backed error, console warning, unknown.
// The error-log file at errorLog is truncated immediately.
func Default(errorLog string, opts ...Option) (*Chain, error) {
	eh, err := NewErrorHandler(errorLog)
	if err != nil {
		return nil, err
	}
	return New([]Handler{
		NewFatalHandler(),
		eh,
		NewWarningHandler(nil),
		NewUnknownHandler(),
	}, opts...), nil
}

// DefaultWithWriter is Default with an explicit diagnostic writer for
// the warning handler. A nil writer falls back to os.Stderr.
func DefaultWithWriter(errorLog string, diagnostics io.Writer, opts ...Option) (*Chain, error) {
	eh, err := NewErrorHandler(errorLog)
	if err != nil {
		return nil, err
	}
	return New([]Handler{
		NewFatalHandler(),
		eh,
		NewWarningHandler(diagnostics),
		NewUnknownHandler(),
	}, opts...), nil
}

// Dispatch routes msg through the chain. The first handler whose
// classification matches acts and propagation stops. Terminal signals
// (*FatalError, *UnhandledMessage) are returned to the caller; local
// write failures are counted and swallowed; an unmatched message is
// dropped silently and Dispatch returns nil.
func (c *Chain) Dispatch(msg core.Message) error {
	for _, h := range c.handlers {
		if h.Classification() != msg.Classification() {
			continue
		}

		err := h.Act(msg)
		c.stats.IncrementHandled(msg.Classification())
		if err == nil {
			return nil
		}
		if isTerminal(err) {
			return err
		}

		// Local failure: a skipped write never escapes Dispatch.
		c.stats.IncrementWriteFailures()
		if c.onWriteError != nil {
			c.onWriteError(err)
		}
		return nil
	}

	c.stats.IncrementDropped()
	return nil
}

// Stats returns a snapshot of the current statistics
func (c *Chain) Stats() Snapshot {
	return c.stats.GetSnapshot()
}
