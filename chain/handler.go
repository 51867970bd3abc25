package chain

import (
	"github.com/18thday/logchain/core"
)

// Handler is the contract every chain variant implements. A handler
// reacts to exactly one classification, fixed at construction; the
// dispatch loop in Chain owns the forwarding, so variants only supply
// their classification and their action.
type Handler interface {
	// Classification reports the single severity this handler reacts to.
	Classification() core.Classification

	// Act performs the handler's side effect for a matching message.
	// Terminal handlers return *FatalError or *UnhandledMessage; the
	// file-backed handler returns I/O errors, which the chain treats
	// as local failures. A nil return means the action completed.
	Act(msg core.Message) error
}
