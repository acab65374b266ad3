// Package parser turns Common Log Format access-log lines into records.
package parser

import "errors"

// Token offsets of the fixed whitespace-delimited CLF layout.
const (
	FieldHost      = 0
	FieldIdent     = 1
	FieldAuthUser  = 2
	FieldDateStart = 3
	FieldDateEnd   = 4
	FieldMethod    = 5
	FieldPath      = 6
	FieldProtocol  = 7
	FieldStatus    = 8
	FieldBytes     = 9
	FieldClient    = 10

	// MinTokens is the smallest token count of a usable line.
	MinTokens = FieldClient + 1
)

// ErrTooFewTokens is returned by Extract for token lists shorter than MinTokens.
var ErrTooFewTokens = errors.New("too few tokens for a CLF line")

// LogRecord represents a single parsed access-log entry.
// Field order matches the serialized form.
type LogRecord struct {
	// Host is the remote host that made the request.
	Host string `json:"host" yaml:"host"`

	// Ident is the RFC 1413 identity, usually "-".
	Ident string `json:"ident" yaml:"ident"`

	// AuthUser is the authenticated user, usually "-".
	AuthUser string `json:"authuser" yaml:"authuser"`

	// Date is the two date tokens joined by a single space.
	Date string `json:"date" yaml:"date"`

	// Request is method, path and protocol joined by single spaces.
	Request string `json:"request" yaml:"request"`

	// Status is the status code kept as text.
	Status string `json:"status" yaml:"status"`

	// Bytes is the response size token.
	Bytes string `json:"bytes" yaml:"bytes"`

	// Client is the first token after the size, typically the user agent.
	Client string `json:"client" yaml:"client"`
}
