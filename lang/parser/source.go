package parser

import "fmt"

// TokenProducer is anything that hands out tokens one at a time. *Lexer
// is the usual implementation.
type TokenProducer interface {
	NextToken() Token
}

// InternalError signals a bug in the grammar engine, such as two
// pushbacks without an intervening read. It is raised with panic and is
// never part of the diagnostics.
type InternalError struct {
	Pending Token
	Pushed  Token
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("parser: push back of %s while %s is still pending", e.Pushed, e.Pending)
}

// TokenSource wraps a TokenProducer with a single pushback slot.
type TokenSource struct {
	producer TokenProducer
	pending  *Token
	line     int
}

func NewTokenSource(producer TokenProducer) *TokenSource {
	return &TokenSource{producer: producer, line: 1}
}

// Next returns the pending token if there is one, otherwise the next
// token from the producer.
func (s *TokenSource) Next() Token {
	if s.pending != nil {
		tok := *s.pending
		s.pending = nil
		return tok
	}
	tok := s.producer.NextToken()
	s.line = tok.Line
	return tok
}

// PushBack makes tok the result of the next call to Next. At most one
// token may be pending; a second PushBack panics with *InternalError.
func (s *TokenSource) PushBack(tok Token) {
	if s.pending != nil {
		panic(&InternalError{Pending: *s.pending, Pushed: tok})
	}
	s.pending = &tok
}

// Pending reports whether a pushed back token is waiting to be read.
func (s *TokenSource) Pending() bool {
	return s.pending != nil
}

// Line is the line of the last token pulled from the producer.
func (s *TokenSource) Line() int {
	return s.line
}
