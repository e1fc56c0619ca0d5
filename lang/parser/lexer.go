package parser

type Lexer struct {
	input []byte
	pos   int
	line  int
}

func NewLexer(input []byte) *Lexer {
	return &Lexer{
		input: input,
		pos:   0,
		line:  1,
	}
}

// Line reports the line the lexer is currently positioned on.
func (l *Lexer) Line() int {
	return l.line
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
	}
	return ch
}

func (l *Lexer) skipTrivia() {
	for l.pos < len(l.input) {
		ch := l.peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			l.advance()
		case ch == '/' && l.peekN(1) == '/':
			for l.pos < len(l.input) && l.peek() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

// NextToken returns the next token. Once the input is exhausted every
// call returns a TokenDone token.
func (l *Lexer) NextToken() Token {
	l.skipTrivia()

	if l.pos >= len(l.input) {
		return Token{Kind: TokenDone, Line: l.line}
	}

	ch := l.peek()

	if isLetter(ch) {
		return l.scanIdentOrKeyword()
	}
	if isDigit(ch) {
		return l.scanNumber()
	}
	if ch == '"' {
		return l.scanString()
	}
	return l.scanOperator()
}

func (l *Lexer) scanIdentOrKeyword() Token {
	line := l.line
	start := l.pos
	for isLetter(l.peek()) || isDigit(l.peek()) {
		l.advance()
	}
	literal := string(l.input[start:l.pos])
	kind := LookupKeyword(literal)
	if kind != TokenIdent {
		return Token{Kind: kind, Line: line}
	}
	return Token{Kind: TokenIdent, Line: line, Lexeme: literal}
}

func (l *Lexer) scanNumber() Token {
	line := l.line
	start := l.pos
	for isDigit(l.peek()) {
		l.advance()
	}

	kind := TokenIConst
	if l.peek() == '.' && isDigit(l.peekN(1)) {
		kind = TokenRConst
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	return Token{Kind: kind, Line: line, Lexeme: string(l.input[start:l.pos])}
}

func (l *Lexer) scanString() Token {
	line := l.line
	start := l.pos
	l.advance()
	for l.pos < len(l.input) && l.peek() != '"' && l.peek() != '\n' {
		l.advance()
	}
	if l.peek() != '"' {
		return Token{Kind: TokenError, Line: line, Lexeme: string(l.input[start:l.pos])}
	}
	l.advance()
	return Token{Kind: TokenSConst, Line: line, Lexeme: string(l.input[start+1 : l.pos-1])}
}

var operators = map[byte]TokenKind{
	';': TokenSemicolon,
	',': TokenComma,
	'(': TokenLParen,
	')': TokenRParen,
	'=': TokenAssign,
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenMult,
	'/': TokenDiv,
	'%': TokenMod,
	'>': TokenGreater,
}

func (l *Lexer) scanOperator() Token {
	line := l.line
	ch := l.advance()

	if ch == '=' && l.peek() == '=' {
		l.advance()
		return Token{Kind: TokenEqual, Line: line}
	}
	if kind, ok := operators[ch]; ok {
		return Token{Kind: kind, Line: line}
	}
	return Token{Kind: TokenError, Line: line, Lexeme: string(ch)}
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
