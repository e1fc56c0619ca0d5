package parser

import (
	"testing"
)

// sliceProducer hands out a fixed token sequence followed by DONE.
type sliceProducer struct {
	tokens []Token
	calls  int
}

func (s *sliceProducer) NextToken() Token {
	s.calls++
	if len(s.tokens) == 0 {
		return Token{Kind: TokenDone}
	}
	tok := s.tokens[0]
	s.tokens = s.tokens[1:]
	return tok
}

func TestTokenSourceNext(t *testing.T) {
	prod := &sliceProducer{tokens: []Token{
		{Kind: TokenProgram, Line: 1},
		{Kind: TokenIdent, Line: 2, Lexeme: "p"},
	}}
	src := NewTokenSource(prod)

	if tok := src.Next(); tok.Kind != TokenProgram {
		t.Errorf("Next() = %v, want PROGRAM", tok.Kind)
	}
	if tok := src.Next(); tok.Kind != TokenIdent || tok.Lexeme != "p" {
		t.Errorf("Next() = %v, want IDENT p", tok)
	}
	if src.Line() != 2 {
		t.Errorf("Line() = %d, want 2", src.Line())
	}
	if tok := src.Next(); tok.Kind != TokenDone {
		t.Errorf("Next() = %v, want DONE", tok.Kind)
	}
}

func TestTokenSourcePushBack(t *testing.T) {
	prod := &sliceProducer{tokens: []Token{
		{Kind: TokenIdent, Line: 1, Lexeme: "a"},
		{Kind: TokenSemicolon, Line: 1},
	}}
	src := NewTokenSource(prod)

	tok := src.Next()
	src.PushBack(tok)
	if !src.Pending() {
		t.Fatal("Pending() = false after PushBack")
	}

	again := src.Next()
	if again != tok {
		t.Errorf("Next() after PushBack = %v, want %v", again, tok)
	}
	if src.Pending() {
		t.Error("Pending() = true after Next")
	}
	if prod.calls != 1 {
		t.Errorf("producer called %d times, want 1", prod.calls)
	}

	if tok := src.Next(); tok.Kind != TokenSemicolon {
		t.Errorf("Next() = %v, want SEMICOLON", tok.Kind)
	}
}

func TestTokenSourceDoublePushBackPanics(t *testing.T) {
	src := NewTokenSource(&sliceProducer{})
	first := Token{Kind: TokenIdent, Line: 1, Lexeme: "a"}
	second := Token{Kind: TokenComma, Line: 1}

	defer func() {
		r := recover()
		ierr, ok := r.(*InternalError)
		if !ok {
			t.Fatalf("recovered %v (%T), want *InternalError", r, r)
		}
		if ierr.Pending != first || ierr.Pushed != second {
			t.Errorf("InternalError = %+v", ierr)
		}
		if ierr.Error() == "" {
			t.Error("empty error message")
		}
	}()

	src.PushBack(first)
	src.PushBack(second)
	t.Fatal("second PushBack did not panic")
}

func TestTokenSourcePushBackKeepsLine(t *testing.T) {
	prod := &sliceProducer{tokens: []Token{
		{Kind: TokenIdent, Line: 4, Lexeme: "a"},
		{Kind: TokenSemicolon, Line: 5},
	}}
	src := NewTokenSource(prod)

	src.Next()
	semi := src.Next()
	src.PushBack(semi)
	if src.Line() != 5 {
		t.Errorf("Line() = %d, want 5", src.Line())
	}
	src.Next()
	if src.Line() != 5 {
		t.Errorf("Line() after re-reading = %d, want 5", src.Line())
	}
}
