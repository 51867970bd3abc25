package chain

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/18thday/logchain/core"
)

// ErrorHandler persists Error-classified messages to a single file.
// The file is truncated when the handler is constructed and fully
// overwritten (not appended) on every matching message, so it always
// holds exactly the last error seen.
type ErrorHandler struct {
	filename string
}

// NewErrorHandler creates a new file-backed error handler. The target
// file is created (parent directories included) and truncated
// immediately; a file that cannot be created is a construction error.
func NewErrorHandler(filename string) (*ErrorHandler, error) {
	if filename == "" {
		return nil, fmt.Errorf("filename is required")
	}

	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	// Truncate on construction so a stale error from a previous run
	// never survives into this one.
	file, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	if err := file.Close(); err != nil {
		return nil, err
	}

	return &ErrorHandler{filename: filename}, nil
}

// Classification reports core.Error.
func (h *ErrorHandler) Classification() core.Classification {
	return core.Error
}

// Act replaces the file's entire contents with the message text plus a
// trailing newline. A write failure is returned for the chain to treat
// as a local, non-terminal condition.
func (h *ErrorHandler) Act(msg core.Message) error {
	return os.WriteFile(h.filename, []byte(msg.Text()+"\n"), 0644)
}

// Filename returns the path of the error-log file.
func (h *ErrorHandler) Filename() string {
	return h.filename
}
