package parser

// Program ::= "PROGRAM" IDENT StatementList "END" "PROGRAM"
func (p *Parser) parseProgram() (ok bool) {
	defer p.trace(RuleProgram)(&ok)

	t := p.next()
	if t.Kind == TokenDone {
		p.errorf(msgEmptyFile)
		return false
	}
	if t.Kind != TokenProgram {
		p.pushBack(t)
		p.errorf(msgMissingProgram)
		return false
	}

	t = p.next()
	if t.Kind != TokenIdent {
		p.pushBack(t)
		p.errorf(msgMissingProgramName)
		return false
	}

	if !p.parseStatementList() {
		return false
	}

	t = p.next()
	if t.Kind != TokenEnd {
		p.pushBack(t)
		p.errorf(msgMissingEnd)
		return false
	}

	t = p.next()
	if t.Kind != TokenProgram {
		p.pushBack(t)
		p.errorf(msgMissingEndProgram)
		return false
	}

	return true
}

// StatementList ::= Statement ";" { Statement ";" }
//
// The semicolon is required after every statement, including the one
// right before END. END itself is pushed back for Program.
func (p *Parser) parseStatementList() (ok bool) {
	defer p.trace(RuleStatementList)(&ok)

	for {
		if !p.parseStatement() {
			return false
		}

		t := p.next()
		if t.Kind != TokenSemicolon {
			p.pushBack(t)
			p.errorf(msgMissingSemicolon)
			return false
		}

		t = p.next()
		p.pushBack(t)
		if t.Kind == TokenEnd {
			return true
		}
	}
}

// Statement ::= Declaration | ControlStatement
func (p *Parser) parseStatement() (ok bool) {
	defer p.trace(RuleStatement)(&ok)

	t := p.next()
	p.pushBack(t)

	switch t.Kind {
	case TokenInt, TokenFloat:
		return p.parseDeclaration()
	case TokenIdent, TokenIf, TokenWrite:
		return p.parseControlStatement()
	}

	p.errorf(msgInvalidStatement)
	return false
}

// Declaration ::= ( "INT" | "FLOAT" ) IdentifierList
func (p *Parser) parseDeclaration() (ok bool) {
	defer p.trace(RuleDeclaration)(&ok)

	t := p.next()
	if t.Kind != TokenInt && t.Kind != TokenFloat {
		p.pushBack(t)
		p.errorf(msgBadDeclarationType)
		return false
	}

	return p.parseIdentifierList(t.Kind)
}

// IdentifierList ::= IDENT { "," IDENT }
//
// Every name is declared with kind. The token following the list is
// pushed back so the statement's semicolon stays in the input.
func (p *Parser) parseIdentifierList(kind TokenKind) (ok bool) {
	defer p.trace(RuleIdentifierList)(&ok)

	for {
		t := p.next()
		if t.Kind != TokenIdent {
			p.pushBack(t)
			p.errorf(msgInvalidIdentList)
			return false
		}

		if !p.symbols.Declare(t.Lexeme, kind) {
			p.errorf(msgRedefinition)
			return false
		}

		t = p.next()
		if t.Kind != TokenComma {
			p.pushBack(t)
			return true
		}
	}
}

// ControlStatement ::= AssignStatement | IfStatement | WriteStatement
func (p *Parser) parseControlStatement() (ok bool) {
	defer p.trace(RuleControlStatement)(&ok)

	t := p.next()
	p.pushBack(t)

	switch t.Kind {
	case TokenIdent:
		return p.parseAssignStatement()
	case TokenIf:
		return p.parseIfStatement()
	case TokenWrite:
		return p.parseWriteStatement()
	}

	p.errorf(msgInvalidControlStmt)
	return false
}

// WriteStatement ::= "WRITE" ExpressionList
func (p *Parser) parseWriteStatement() (ok bool) {
	defer p.trace(RuleWriteStatement)(&ok)

	t := p.next()
	if t.Kind != TokenWrite {
		p.pushBack(t)
		p.errorf(msgMissingWrite)
		return false
	}

	if !p.parseExpressionList() {
		p.errorf(msgMissingWriteExpr)
		return false
	}

	return true
}

// IfStatement ::= "IF" "(" LogicExpression ")" ControlStatement
func (p *Parser) parseIfStatement() (ok bool) {
	defer p.trace(RuleIfStatement)(&ok)

	t := p.next()
	if t.Kind != TokenIf {
		p.pushBack(t)
		p.errorf(msgMissingIf)
		return false
	}

	t = p.next()
	if t.Kind != TokenLParen {
		p.pushBack(t)
		p.errorf(msgMissingIfLParen)
		return false
	}

	if !p.parseLogicExpression() {
		return false
	}

	t = p.next()
	if t.Kind != TokenRParen {
		p.pushBack(t)
		p.errorf(msgMissingIfRParen)
		return false
	}

	if !p.parseControlStatement() {
		p.errorf(msgMissingIfStatement)
		return false
	}

	return true
}

// AssignStatement ::= VarRef "=" Expression
func (p *Parser) parseAssignStatement() (ok bool) {
	defer p.trace(RuleAssignStatement)(&ok)

	if !p.parseVarRef() {
		return false
	}

	t := p.next()
	if t.Kind != TokenAssign {
		p.pushBack(t)
		p.errorf(msgMissingAssignOp)
		return false
	}

	if !p.parseExpression() {
		p.errorf(msgMissingAssignExpr)
		return false
	}

	return true
}

// VarRef ::= IDENT, where IDENT has already been declared.
func (p *Parser) parseVarRef() (ok bool) {
	defer p.trace(RuleVarRef)(&ok)

	t := p.next()
	if t.Kind != TokenIdent {
		p.pushBack(t)
		p.errorf(msgBadIdentifier)
		return false
	}

	if !p.symbols.IsDeclared(t.Lexeme) {
		p.errorf(msgUndeclared)
		return false
	}

	return true
}
