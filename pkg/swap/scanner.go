// Package swap implements the incremental substitution engine: a resumable
// state machine that finds swap directives in arbitrarily chunked text,
// resolves their paths against a data tree, and splices the resolved
// values into the output.
//
// The engine never needs the whole stream in memory. Input may arrive in
// pieces of any size, down to one byte; a directive split across chunk
// boundaries is reassembled through the scanner's accumulation buffer.
// Two rules make that correct and must hold everywhere:
//
//   - a state *transition* (moving to a logically different state) always
//     clears the accumulation buffer;
//   - *suspension* (running out of input and re-entering the same state on
//     the next chunk) never touches it.
//
// Buffering belongs to the state, not to the chunk.
package swap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/goswap/pkg/datatree"
	"github.com/yaklabco/goswap/pkg/template"
)

// MaxDirectiveLen is the hard cap on accumulated directive content (path
// plus end-token search) in bytes. A directive that grows past it without
// a closing end token fails the stream instead of buffering forever.
const MaxDirectiveLen = 1024

// Sentinel errors for scanning, distinguishable via errors.Is.
var (
	// ErrDirectiveTooLong indicates an opened directive exceeded
	// MaxDirectiveLen bytes without its end token.
	ErrDirectiveTooLong = errors.New("directive too long")

	// ErrUnterminatedDirective indicates the stream ended inside a
	// directive.
	ErrUnterminatedDirective = errors.New("unterminated directive")
)

// state identifies the scanner's position in the directive grammar.
type state int

const (
	// stateScan consumes plain text while matching the start token.
	stateScan state = iota

	// stateSkipSpace discards whitespace between the start token and the
	// path.
	stateSkipSpace

	// stateDirective accumulates the path until the end token appears.
	stateDirective
)

// Scanner is the substitution engine for one stream. It is not safe for
// concurrent use; run one Scanner per stream. The template and tree are
// read-only and may be shared between scanners.
type Scanner struct {
	tmpl template.Template
	tree datatree.Node

	state state

	// buf accumulates partially matched input for the current state: held
	// start-token bytes in stateScan, directive content in stateDirective.
	// Cleared on every transition, preserved across suspension.
	buf []byte

	// out collects the current chunk's pending output.
	out strings.Builder

	directives int
	err        error
}

// NewScanner creates a Scanner over the given directive template and swap
// data tree.
func NewScanner(tmpl template.Template, tree datatree.Node) *Scanner {
	return &Scanner{tmpl: tmpl, tree: tree}
}

// Scan consumes the next chunk of input and returns the output it
// produces, which may be empty when the chunk ends mid-directive.
//
// An error fails the whole stream: no output is returned for the erroring
// chunk, and every subsequent call returns the same error.
func (s *Scanner) Scan(chunk string) (string, error) {
	if s.err != nil {
		return "", s.err
	}

	s.out.Reset()

	pos := 0
	for pos < len(chunk) {
		var err error

		switch s.state {
		case stateScan:
			pos = s.scanText(chunk, pos)
		case stateSkipSpace:
			pos = s.skipLeadingSpace(chunk, pos)
		case stateDirective:
			pos, err = s.scanDirective(chunk, pos)
		}

		if err != nil {
			s.err = err
			return "", err
		}
	}

	return s.out.String(), nil
}

// Finish signals end of input. A partial start-token match still held in
// the buffer is returned verbatim; ending inside a directive fails with
// ErrUnterminatedDirective.
func (s *Scanner) Finish() (string, error) {
	if s.err != nil {
		return "", s.err
	}

	if s.state != stateScan {
		s.err = fmt.Errorf("%w: stream ended before %q", ErrUnterminatedDirective, s.tmpl.End())
		return "", s.err
	}

	held := string(s.buf)
	s.buf = s.buf[:0]
	return held, nil
}

// Directives reports how many directives have been resolved so far.
func (s *Scanner) Directives() int { return s.directives }

// transition moves to a different state. Transitions are the only place
// the accumulation buffer is cleared.
func (s *Scanner) transition(next state) {
	s.state = next
	s.buf = s.buf[:0]
}

// scanText copies plain text to output while matching the start token one
// byte at a time. Matched bytes are held back in the buffer; a byte that
// breaks the match flushes everything held plus the breaker, so input is
// only ever deferred or flushed, never dropped.
func (s *Scanner) scanText(chunk string, pos int) int {
	start := s.tmpl.Start()

	for pos < len(chunk) {
		c := chunk[pos]
		pos++

		if c != start[len(s.buf)] {
			s.out.Write(s.buf)
			s.out.WriteByte(c)
			s.buf = s.buf[:0]
			continue
		}

		s.buf = append(s.buf, c)
		if len(s.buf) == len(start) {
			s.transition(stateSkipSpace)
			return pos
		}
	}

	return pos
}

// skipLeadingSpace discards whitespace after the start token. The first
// non-space byte is lookahead for the directive state and is not consumed
// here.
func (s *Scanner) skipLeadingSpace(chunk string, pos int) int {
	for pos < len(chunk) {
		if !isSpace(chunk[pos]) {
			s.transition(stateDirective)
			return pos
		}
		pos++
	}

	return pos
}

// scanDirective accumulates directive content until the buffer ends with
// the end token, then trims the path, resolves it, and emits the value.
func (s *Scanner) scanDirective(chunk string, pos int) (int, error) {
	end := s.tmpl.End()

	for pos < len(chunk) {
		s.buf = append(s.buf, chunk[pos])
		pos++

		if n := len(s.buf) - len(end); n >= 0 && string(s.buf[n:]) == end {
			path := strings.TrimSpace(string(s.buf[:n]))

			value, err := datatree.Resolve(s.tree, path, s.tmpl.Separator())
			if err != nil {
				return pos, err
			}

			s.out.WriteString(value)
			s.directives++
			s.transition(stateScan)
			return pos, nil
		}

		if len(s.buf) > MaxDirectiveLen {
			return pos, fmt.Errorf("%w: no %q within %d bytes of %q", ErrDirectiveTooLong, end, MaxDirectiveLen, s.tmpl.Start())
		}
	}

	return pos, nil
}

// isSpace reports whether c is ASCII whitespace. The engine scans bytes,
// not runes, so chunk boundaries inside multi-byte sequences pass through
// untouched; classification is correspondingly byte-based.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
