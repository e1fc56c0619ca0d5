package parser

import (
	"testing"
)

func TestTokenKindString(t *testing.T) {
	tests := []struct {
		kind TokenKind
		want string
	}{
		{TokenProgram, "PROGRAM"},
		{TokenEnd, "END"},
		{TokenIdent, "IDENT"},
		{TokenIConst, "ICONST"},
		{TokenRConst, "RCONST"},
		{TokenSConst, "SCONST"},
		{TokenSemicolon, "SEMICOLON"},
		{TokenEqual, "EQUAL"},
		{TokenGreater, "GREATER"},
		{TokenError, "ERR"},
		{TokenDone, "DONE"},
		{TokenKind(9999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("TokenKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: TokenIdent, Line: 3, Lexeme: "total"}, "3 IDENT total"},
		{Token{Kind: TokenSemicolon, Line: 1}, "1 SEMICOLON"},
	}
	for _, tt := range tests {
		if got := tt.tok.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		want  TokenKind
	}{
		{"PROGRAM", TokenProgram},
		{"program", TokenProgram},
		{"End", TokenEnd},
		{"INT", TokenInt},
		{"float", TokenFloat},
		{"IF", TokenIf},
		{"write", TokenWrite},
		{"programs", TokenIdent},
		{"x", TokenIdent},
		{"Total", TokenIdent},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			if got := LookupKeyword(tt.ident); got != tt.want {
				t.Errorf("LookupKeyword(%q) = %v, want %v", tt.ident, got, tt.want)
			}
		})
	}
}
