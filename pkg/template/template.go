// Package template parses the three-token grammar that defines swap
// directive syntax: a start token, a path separator, and an end token.
package template

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for template parsing, distinguishable via errors.Is.
var (
	// ErrTooFewTokens indicates the template string had fewer than three
	// whitespace-separated tokens.
	ErrTooFewTokens = errors.New("template has too few tokens")

	// ErrTooManyTokens indicates the template string had more than three
	// whitespace-separated tokens.
	ErrTooManyTokens = errors.New("template has too many tokens")
)

// tokenCount is the exact number of tokens a template string must contain.
const tokenCount = 3

// Template defines the syntax of a swap directive: text between the start
// and end tokens is a path whose segments are joined by the separator.
//
// A Template is immutable. Well-formed values are obtained only through
// Parse; the zero value is not usable.
type Template struct {
	start     string
	separator string
	end       string
}

// Parse builds a Template from a raw configuration string of exactly three
// whitespace-separated tokens: "<start> <separator> <end>".
//
// Surrounding whitespace is ignored. Tokens may be any non-whitespace byte
// sequence; no escaping of whitespace within a token is supported, and no
// relationship between tokens is validated (a separator that overlaps the
// start or end token is allowed and not special-cased).
func Parse(raw string) (Template, error) {
	tokens := strings.Fields(raw)

	if len(tokens) < tokenCount {
		return Template{}, fmt.Errorf("%w: need start, separator, and end in %q", ErrTooFewTokens, raw)
	}
	if len(tokens) > tokenCount {
		return Template{}, fmt.Errorf("%w: need exactly start, separator, and end in %q", ErrTooManyTokens, raw)
	}

	return Template{
		start:     tokens[0],
		separator: tokens[1],
		end:       tokens[2],
	}, nil
}

// Start returns the token that opens a directive.
func (t Template) Start() string { return t.start }

// Separator returns the token that joins path segments.
func (t Template) Separator() string { return t.separator }

// End returns the token that closes a directive.
func (t Template) End() string { return t.end }

// String renders the template in its textual configuration form.
func (t Template) String() string {
	return t.start + " " + t.separator + " " + t.end
}
