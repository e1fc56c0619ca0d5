package parser

import (
	"fmt"
	"strings"
)

type TokenKind int

const (
	// Keywords
	TokenProgram TokenKind = iota
	TokenEnd
	TokenInt
	TokenFloat
	TokenIf
	TokenWrite

	// Literals
	TokenIdent
	TokenIConst
	TokenRConst
	TokenSConst

	// Punctuation
	TokenSemicolon
	TokenComma
	TokenLParen
	TokenRParen

	// Operators
	TokenAssign
	TokenPlus
	TokenMinus
	TokenMult
	TokenDiv
	TokenMod
	TokenEqual
	TokenGreater

	TokenError
	TokenDone
)

var tokenKindNames = map[TokenKind]string{
	TokenProgram:   "PROGRAM",
	TokenEnd:       "END",
	TokenInt:       "INT",
	TokenFloat:     "FLOAT",
	TokenIf:        "IF",
	TokenWrite:     "WRITE",
	TokenIdent:     "IDENT",
	TokenIConst:    "ICONST",
	TokenRConst:    "RCONST",
	TokenSConst:    "SCONST",
	TokenSemicolon: "SEMICOLON",
	TokenComma:     "COMMA",
	TokenLParen:    "LPAREN",
	TokenRParen:    "RPAREN",
	TokenAssign:    "ASSIGN",
	TokenPlus:      "PLUS",
	TokenMinus:     "MINUS",
	TokenMult:      "MULT",
	TokenDiv:       "DIV",
	TokenMod:       "MOD",
	TokenEqual:     "EQUAL",
	TokenGreater:   "GREATER",
	TokenError:     "ERR",
	TokenDone:      "DONE",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Token is a lexical unit. Lexeme is set for identifiers, literals and
// error tokens only.
type Token struct {
	Kind   TokenKind
	Line   int
	Lexeme string
}

func (t Token) String() string {
	if t.Lexeme != "" {
		return fmt.Sprintf("%d %s %s", t.Line, t.Kind, t.Lexeme)
	}
	return fmt.Sprintf("%d %s", t.Line, t.Kind)
}

var keywords = map[string]TokenKind{
	"program": TokenProgram,
	"end":     TokenEnd,
	"int":     TokenInt,
	"float":   TokenFloat,
	"if":      TokenIf,
	"write":   TokenWrite,
}

// LookupKeyword maps ident to its keyword kind, ignoring case, or
// returns TokenIdent.
func LookupKeyword(ident string) TokenKind {
	if kind, ok := keywords[strings.ToLower(ident)]; ok {
		return kind
	}
	return TokenIdent
}
