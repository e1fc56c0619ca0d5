// Package parser checks programs written in a small imperative language
// for syntax and declare-before-use errors.
//
// # Overview
//
// The package is a recursive-descent recognizer. It builds no tree: each
// nonterminal is one method that consumes tokens and reports success.
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Lexer     │────▶│ TokenSource │────▶│   Parser    │
//	│  (tokens)   │     │ (1 pending) │     │  (rules)    │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                                          │        │
//	                                          ▼        ▼
//	                                   ┌──────────┐ ┌─────────────┐
//	                                   │ Symbols  │ │ Diagnostics │
//	                                   └──────────┘ └─────────────┘
//
// # Grammar
//
//	Program          = "PROGRAM" IDENT StatementList "END" "PROGRAM" .
//	StatementList    = Statement ";" { Statement ";" } .
//	Statement        = Declaration | ControlStatement .
//	Declaration      = ( "INT" | "FLOAT" ) IdentifierList .
//	IdentifierList   = IDENT { "," IDENT } .
//	ControlStatement = AssignStatement | IfStatement | WriteStatement .
//	WriteStatement   = "WRITE" ExpressionList .
//	IfStatement      = "IF" "(" LogicExpression ")" ControlStatement .
//	AssignStatement  = VarRef "=" Expression .
//	ExpressionList   = Expression { "," Expression } .
//	Expression       = Term { ( "+" | "-" ) Term } .
//	Term             = SignedFactor { ( "*" | "/" | "%" ) SignedFactor } .
//	SignedFactor     = [ "+" | "-" ] Factor .
//	Factor           = IDENT | ICONST | RCONST | SCONST | "(" Expression ")" .
//	LogicExpression  = Expression ( "==" | ">" ) Expression .
//	VarRef           = IDENT .
//
// # Lookahead
//
// Every rule reads one token, inspects its kind and, if the token belongs
// to somebody else, pushes it back. TokenSource holds at most one pushed
// back token; a second PushBack before the next read is a bug in the
// rules and panics with *InternalError.
//
// # Errors
//
// Parse and declaration errors are recorded as Diagnostic values and
// echoed to the sink as "<line>: <message>". The first failing rule
// fails all of its callers; there is no resynchronization. Some rules
// add a contextual message on top of the one reported by their callee,
// so a single mistake can produce several diagnostics.
//
// # Example Usage
//
//	p, ok := parser.ParseProgram([]byte("PROGRAM p INT a; a = 5; END PROGRAM"),
//	    parser.WithSink(os.Stdout))
//	if !ok || p.ErrorCount() > 0 {
//	    // rejected
//	}
//
// # Thread Safety
//
// A Parser is not safe for concurrent use. Every Parser owns its own
// token source, symbol table and diagnostics, so separate Parsers can
// run in parallel.
package parser
