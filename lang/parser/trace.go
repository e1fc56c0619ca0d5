package parser

// Rule identifies a nonterminal. Its String form is the production name
// used in the EBNF grammar.
type Rule int

const (
	RuleProgram Rule = iota
	RuleStatementList
	RuleStatement
	RuleDeclaration
	RuleIdentifierList
	RuleControlStatement
	RuleWriteStatement
	RuleIfStatement
	RuleAssignStatement
	RuleExpressionList
	RuleExpression
	RuleTerm
	RuleSignedFactor
	RuleFactor
	RuleLogicExpression
	RuleVarRef
)

var ruleNames = [...]string{
	RuleProgram:          "Program",
	RuleStatementList:    "StatementList",
	RuleStatement:        "Statement",
	RuleDeclaration:      "Declaration",
	RuleIdentifierList:   "IdentifierList",
	RuleControlStatement: "ControlStatement",
	RuleWriteStatement:   "WriteStatement",
	RuleIfStatement:      "IfStatement",
	RuleAssignStatement:  "AssignStatement",
	RuleExpressionList:   "ExpressionList",
	RuleExpression:       "Expression",
	RuleTerm:             "Term",
	RuleSignedFactor:     "SignedFactor",
	RuleFactor:           "Factor",
	RuleLogicExpression:  "LogicExpression",
	RuleVarRef:           "VarRef",
}

func (r Rule) String() string {
	if r >= 0 && int(r) < len(ruleNames) {
		return ruleNames[r]
	}
	return "Unknown"
}

// Rules lists every nonterminal in declaration order.
func Rules() []Rule {
	rules := make([]Rule, len(ruleNames))
	for i := range rules {
		rules[i] = Rule(i)
	}
	return rules
}

// Tracer observes the rule call graph. line is the line of the most
// recently read token when the rule starts.
type Tracer interface {
	Enter(rule Rule, line int)
	Leave(rule Rule, ok bool)
}

// TracerFuncs adapts a pair of functions to Tracer. Either may be nil.
type TracerFuncs struct {
	OnEnter func(rule Rule, line int)
	OnLeave func(rule Rule, ok bool)
}

func (t TracerFuncs) Enter(rule Rule, line int) {
	if t.OnEnter != nil {
		t.OnEnter(rule, line)
	}
}

func (t TracerFuncs) Leave(rule Rule, ok bool) {
	if t.OnLeave != nil {
		t.OnLeave(rule, ok)
	}
}

// trace is used as `defer p.trace(rule)(&ok)` at the top of a rule.
func (p *Parser) trace(rule Rule) func(*bool) {
	if p.tracer == nil {
		return func(*bool) {}
	}
	p.tracer.Enter(rule, p.src.Line())
	return func(ok *bool) {
		p.tracer.Leave(rule, *ok)
	}
}
