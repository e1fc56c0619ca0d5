package parser

import "io"

type Option func(*Parser)

// WithSink echoes every diagnostic to w as "<line>: <message>".
func WithSink(w io.Writer) Option {
	return func(p *Parser) {
		p.sink = w
	}
}

// WithTracer reports entry to and exit from every grammar rule.
func WithTracer(t Tracer) Option {
	return func(p *Parser) {
		p.tracer = t
	}
}

// Parser checks one program. It owns its token source, symbol table and
// diagnostics, so separate Parsers never share state.
type Parser struct {
	src     *TokenSource
	symbols *SymbolTable
	diags   *Diagnostics
	sink    io.Writer
	tracer  Tracer
}

func New(producer TokenProducer, opts ...Option) *Parser {
	p := &Parser{
		src:     NewTokenSource(producer),
		symbols: NewSymbolTable(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.diags = NewDiagnostics(p.sink)
	return p
}

// ParseProgram checks src with a fresh Parser and returns it for
// inspection along with the result of the Program rule.
func ParseProgram(src []byte, opts ...Option) (*Parser, bool) {
	p := New(NewLexer(src), opts...)
	ok := p.ParseProgram()
	return p, ok
}

// ParseProgram runs the Program rule. The input is accepted only if it
// returns true and ErrorCount is zero.
func (p *Parser) ParseProgram() bool {
	return p.parseProgram()
}

func (p *Parser) ErrorCount() int {
	return p.diags.Count()
}

func (p *Parser) Diagnostics() []Diagnostic {
	return p.diags.Records()
}

func (p *Parser) Symbols() *SymbolTable {
	return p.symbols
}

func (p *Parser) next() Token {
	return p.src.Next()
}

func (p *Parser) pushBack(tok Token) {
	p.src.PushBack(tok)
}

func (p *Parser) errorf(msg string) {
	p.diags.Report(p.src.Line(), msg)
}
