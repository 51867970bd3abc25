package chain

import (
	"context"
	"log/slog"
	"strings"

	"github.com/18thday/logchain/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// Chain. This lets the chain serve as a backend for log/slog: records
// at Warn map to Warning, records at Error and above map to Error, and
// anything below Warn is reported as disabled so it never reaches the
// chain. No slog level maps to the terminal FatalError or Unknown
// classifications.
type SlogHandler struct {
	chain *Chain
	attrs []slog.Attr
	group string
}

// NewSlogHandler creates a new slog.Handler adapter over the given chain.
func NewSlogHandler(c *Chain) *SlogHandler {
	return &SlogHandler{chain: c}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelWarn
}

// Handle converts a slog.Record to a core.Message and dispatches it.
// Attrs are appended to the message text in key=value form since the
// chain carries plain text payloads.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)

	// Pre-configured attrs were qualified when added; only record
	// attrs take the current group.
	for _, a := range s.attrs {
		writeAttr(&b, "", a)
	}
	record.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, s.group, a)
		return true
	})

	msg := core.NewMessage(slogLevelToClassification(record.Level), b.String())
	return s.chain.Dispatch(msg)
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		if s.group != "" {
			a.Key = s.group + "." + a.Key
		}
		newAttrs = append(newAttrs, a)
	}
	return &SlogHandler{
		chain: s.chain,
		attrs: newAttrs,
		group: s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	newAttrs := make([]slog.Attr, len(s.attrs))
	copy(newAttrs, s.attrs)
	return &SlogHandler{
		chain: s.chain,
		attrs: newAttrs,
		group: newGroup,
	}
}

// writeAttr appends " key=value" to b, prefixing key with the group path.
func writeAttr(b *strings.Builder, group string, a slog.Attr) {
	b.WriteByte(' ')
	if group != "" {
		b.WriteString(group)
		b.WriteByte('.')
	}
	b.WriteString(a.Key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}

// slogLevelToClassification converts a slog.Level to a Classification.
func slogLevelToClassification(level slog.Level) core.Classification {
	if level >= slog.LevelError {
		return core.Error
	}
	return core.Warning
}
