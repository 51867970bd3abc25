package chain

// FatalError is the terminal signal produced when a FatalError-classified
// message reaches the fatal handler. It always ends the dispatch call;
// callers must handle it or let it propagate.
type FatalError struct {
	// Text is the original message text, unmodified.
	Text string
}

// Error returns the message text.
func (e *FatalError) Error() string {
	return e.Text
}

// UnhandledMessage is the terminal signal produced when an
// Unknown-classified message reaches the unknown handler. Its payload
// wraps the original text with the "Unprocessed message: " prefix.
type UnhandledMessage struct {
	// Text is the original message text, before wrapping.
	Text string
}

// Error returns the wrapped payload.
func (e *UnhandledMessage) Error() string {
	return "Unprocessed message: " + e.Text
}

// isTerminal reports whether err must propagate to the dispatch caller.
// Everything else (in practice only file-write failures) stays local.
func isTerminal(err error) bool {
	switch err.(type) {
	case *FatalError, *UnhandledMessage:
		return true
	default:
		return false
	}
}
