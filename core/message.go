package core

import "strings"

// Classification is the closed severity category of a log message.
type Classification int8

const (
	// Warning for messages that are emitted to the diagnostic stream
	Warning Classification = iota
	// Error for messages that are persisted to the error-log file
	Error
	// FatalError for messages that abort the current operation
	FatalError
	// Unknown for messages no regular handler claims
	Unknown
)

// String returns the string representation of the classification
func (c Classification) String() string {
	switch c {
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	case FatalError:
		return "FATAL"
	case Unknown:
		return "UNKNOWN"
	default:
		return "INVALID"
	}
}

// ParseClassification converts a string to a Classification.
// Strings outside the enumerated set map to Unknown.
func ParseClassification(s string) Classification {
	switch strings.ToUpper(s) {
	case "WARN", "WARNING":
		return Warning
	case "ERROR":
		return Error
	case "FATAL", "FATALERROR":
		return FatalError
	default:
		return Unknown
	}
}

// Message is an immutable log message: a classification plus a text
// payload. Messages are constructed once per dispatch and discarded
// after the call returns.
type Message struct {
	classification Classification
	text           string
}

// NewMessage creates a message. Text is unconstrained; classification
// is trusted to be one of the enumerated values.
func NewMessage(c Classification, text string) Message {
	return Message{classification: c, text: text}
}

// Classification returns the severity category of the message.
func (m Message) Classification() Classification {
	return m.classification
}

// Text returns the payload of the message.
func (m Message) Text() string {
	return m.text
}
