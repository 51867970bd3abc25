package chain

import (
	"github.com/18thday/logchain/core"
)

// UnknownHandler turns Unknown-classified messages into a terminal
// *UnhandledMessage signal. It sits at the end of the default chain as
// the catch-all for messages nothing else claims.
type UnknownHandler struct{}

// NewUnknownHandler creates a new unknown-message handler
func NewUnknownHandler() *UnknownHandler {
	return &UnknownHandler{}
}

// Classification reports core.Unknown.
func (h *UnknownHandler) Classification() core.Classification {
	return core.Unknown
}

// Act always returns an *UnhandledMessage wrapping the message text.
func (h *UnknownHandler) Act(msg core.Message) error {
	return &UnhandledMessage{Text: msg.Text()}
}
