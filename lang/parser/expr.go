package parser

// ExpressionList ::= Expression { "," Expression }
func (p *Parser) parseExpressionList() (ok bool) {
	defer p.trace(RuleExpressionList)(&ok)

	if !p.parseExpression() {
		p.errorf(msgMissingExpr)
		return false
	}

	t := p.next()
	for t.Kind == TokenComma {
		if !p.parseExpression() {
			p.errorf(msgMissingExprComma)
			return false
		}
		t = p.next()
	}

	p.pushBack(t)
	return true
}

// Expression ::= Term { ( "+" | "-" ) Term }
func (p *Parser) parseExpression() (ok bool) {
	defer p.trace(RuleExpression)(&ok)

	if !p.parseTerm() {
		p.errorf(msgExpression)
		return false
	}

	t := p.next()
	for t.Kind == TokenPlus || t.Kind == TokenMinus {
		if !p.parseTerm() {
			p.errorf(msgMissingOperand)
			return false
		}
		t = p.next()
	}

	p.pushBack(t)
	return true
}

// Term ::= SignedFactor { ( "*" | "/" | "%" ) SignedFactor }
func (p *Parser) parseTerm() (ok bool) {
	defer p.trace(RuleTerm)(&ok)

	if !p.parseSignedFactor() {
		p.errorf(msgTerm)
		return false
	}

	t := p.next()
	for t.Kind == TokenMult || t.Kind == TokenDiv || t.Kind == TokenMod {
		if !p.parseSignedFactor() {
			p.errorf(msgMissingOperand)
			return false
		}
		t = p.next()
	}

	p.pushBack(t)
	return true
}

// SignedFactor ::= [ "+" | "-" ] Factor
func (p *Parser) parseSignedFactor() (ok bool) {
	defer p.trace(RuleSignedFactor)(&ok)

	sign := 1
	t := p.next()
	switch t.Kind {
	case TokenPlus:
	case TokenMinus:
		sign = -1
	default:
		p.pushBack(t)
	}

	return p.parseFactor(sign)
}

// Factor ::= IDENT | ICONST | RCONST | SCONST | "(" Expression ")"
//
// sign is carried for a later evaluation phase and is not applied here.
func (p *Parser) parseFactor(sign int) (ok bool) {
	defer p.trace(RuleFactor)(&ok)

	t := p.next()
	switch t.Kind {
	case TokenIdent:
		if !p.symbols.IsDeclared(t.Lexeme) {
			p.errorf(msgUndeclared)
			return false
		}
		return true
	case TokenIConst, TokenRConst, TokenSConst:
		return true
	case TokenLParen:
	default:
		p.pushBack(t)
		p.errorf(msgNoLeftParen)
		return false
	}

	if !p.parseExpression() {
		p.errorf(msgFactor)
		return false
	}

	t = p.next()
	if t.Kind != TokenRParen {
		p.pushBack(t)
		p.errorf(msgNoRightParen)
		return false
	}

	return true
}

// LogicExpression ::= Expression ( "==" | ">" ) Expression
func (p *Parser) parseLogicExpression() (ok bool) {
	defer p.trace(RuleLogicExpression)(&ok)

	if !p.parseExpression() {
		p.errorf(msgMissingLogicExpr)
		return false
	}

	t := p.next()
	if t.Kind != TokenEqual && t.Kind != TokenGreater {
		p.pushBack(t)
		p.errorf(msgRelationalOperator)
		return false
	}

	if !p.parseExpression() {
		p.errorf(msgMissingRelationExpr)
		return false
	}

	return true
}
