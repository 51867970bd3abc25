package chain

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/18thday/logchain/core"
)

// ZapCore is an adapter that implements zapcore.Core on top of a
// Chain, letting a zap logger feed the chain. Entries below Warn are
// disabled; Warn maps to Warning, Error to Error, and DPanic and above
// to FatalError, whose terminal signal surfaces through Write.
type ZapCore struct {
	chain  *Chain
	fields []zapcore.Field
}

// NewZapCore creates a zapcore.Core adapter over the given chain.
func NewZapCore(c *Chain) *ZapCore {
	return &ZapCore{chain: c}
}

// Enabled reports whether entries at the given level are dispatched.
func (z *ZapCore) Enabled(level zapcore.Level) bool {
	return level >= zapcore.WarnLevel
}

// With returns a copy of the core carrying the additional fields.
func (z *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	newFields := make([]zapcore.Field, len(z.fields), len(z.fields)+len(fields))
	copy(newFields, z.fields)
	newFields = append(newFields, fields...)
	return &ZapCore{chain: z.chain, fields: newFields}
}

// Check adds this core to the checked entry when the level is enabled.
func (z *ZapCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if z.Enabled(entry.Level) {
		return checked.AddCore(entry, z)
	}
	return checked
}

// Write converts the entry to a core.Message and dispatches it. Fields
// are rendered through zap's map encoder and appended to the text,
// since the chain carries plain text payloads.
func (z *ZapCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	text := entry.Message
	if len(z.fields)+len(fields) > 0 {
		enc := zapcore.NewMapObjectEncoder()
		for _, f := range z.fields {
			f.AddTo(enc)
		}
		for _, f := range fields {
			f.AddTo(enc)
		}
		text = appendEncodedFields(text, enc)
	}

	msg := core.NewMessage(zapLevelToClassification(entry.Level), text)
	return z.chain.Dispatch(msg)
}

// Sync is a no-op; the file handler opens and closes per write.
func (z *ZapCore) Sync() error {
	return nil
}

// appendEncodedFields renders the encoder's fields as " key=value"
// pairs in sorted key order so output is deterministic.
func appendEncodedFields(text string, enc *zapcore.MapObjectEncoder) string {
	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(text)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, enc.Fields[k])
	}
	return b.String()
}

// zapLevelToClassification converts a zapcore.Level to a Classification.
func zapLevelToClassification(level zapcore.Level) core.Classification {
	switch {
	case level >= zapcore.DPanicLevel:
		return core.FatalError
	case level >= zapcore.ErrorLevel:
		return core.Error
	default:
		return core.Warning
	}
}
