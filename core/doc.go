// Package core defines the shared types used across the logchain module.
//
// It provides the Classification type, a closed enumeration of the four
// message severities the chain dispatches on, and the Message type that
// carries a classification together with an arbitrary text payload.
//
// Message is a plain immutable value. It is constructed once per
// dispatch call, read by at most one handler, and discarded when the
// call returns, so there is no pooling and no shared state to manage.
package core
