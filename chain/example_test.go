package chain_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/18thday/logchain/chain"
	"github.com/18thday/logchain/core"
)

// Dispatch a warning through the default chain.
func Example() {
	errorLog := filepath.Join(os.TempDir(), "logchain-example-error.txt")
	c, err := chain.DefaultWithWriter(errorLog, os.Stdout)
	if err != nil {
		panic(err)
	}

	c.Dispatch(core.NewMessage(core.Warning, "cache miss rate above 20%"))
	// Output: cache miss rate above 20%
}

// Terminal signals come back as typed errors.
func ExampleChain_Dispatch() {
	c := chain.New([]chain.Handler{
		chain.NewFatalHandler(),
		chain.NewUnknownHandler(),
	})

	err := c.Dispatch(core.NewMessage(core.Unknown, "mystery payload"))

	var unhandled *chain.UnhandledMessage
	if errors.As(err, &unhandled) {
		fmt.Println(unhandled.Error())
	}
	// Output: Unprocessed message: mystery payload
}
