package chain

import (
	"io"
	"os"

	"github.com/18thday/logchain/core"
)

// WarningHandler emits Warning-classified messages to a diagnostic
// writer, one line per message.
type WarningHandler struct {
	writer io.Writer
}

// NewWarningHandler creates a new warning handler writing to w.
// A nil writer defaults to os.Stderr.
func NewWarningHandler(w io.Writer) *WarningHandler {
	if w == nil {
		w = os.Stderr
	}
	return &WarningHandler{writer: w}
}

// Classification reports core.Warning.
func (h *WarningHandler) Classification() core.Classification {
	return core.Warning
}

// Act writes the message text plus a trailing newline to the
// diagnostic writer.
func (h *WarningHandler) Act(msg core.Message) error {
	_, err := io.WriteString(h.writer, msg.Text()+"\n")
	return err
}
