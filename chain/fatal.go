package chain

import (
	"github.com/18thday/logchain/core"
)

// FatalHandler turns FatalError-classified messages into a terminal
// *FatalError signal carrying the message text unmodified.
type FatalHandler struct{}

// NewFatalHandler creates a new fatal handler
func NewFatalHandler() *FatalHandler {
	return &FatalHandler{}
}

// Classification reports core.FatalError.
func (h *FatalHandler) Classification() core.Classification {
	return core.FatalError
}

// Act always returns a *FatalError; the action never succeeds silently.
func (h *FatalHandler) Act(msg core.Message) error {
	return &FatalError{Text: msg.Text()}
}
