// Package chain implements severity-based dispatch of log messages to
// a fixed set of single-responsibility handlers.
//
// A Chain owns an ordered sequence of Handler values and walks it on
// every Dispatch call. The first handler whose classification matches
// the message acts, and propagation stops regardless of the action's
// outcome. A message that matches no handler completes silently; this
// drop is deliberate, and callers must not assume every dispatch has a
// visible effect.
//
// The four built-in variants each own one classification:
//
//   - FatalHandler aborts the dispatch with a *FatalError carrying the
//     message text.
//   - ErrorHandler overwrites a target file with the message text; the
//     file holds only the most recent error.
//   - WarningHandler writes the message text to a diagnostic stream
//     (default: stderr).
//   - UnknownHandler aborts the dispatch with an *UnhandledMessage
//     wrapping the text.
//
// Terminal signals are ordinary error values returned from Dispatch,
// inspectable with errors.As. File-write failures never propagate:
// they are counted in Stats and optionally observed through
// WithWriteErrorHook.
//
// Adding a new severity means adding one new variant and rewiring the
// chain; no existing variant changes.
//
// The package also ships two adapters, SlogHandler for log/slog and
// ZapCore for go.uber.org/zap, so either logging frontend can feed a
// chain directly.
//
// Dispatch performs no locking. The built-in variants write to shared
// external resources, so concurrent Dispatch calls on one chain must
// be serialized by the caller.
package chain
