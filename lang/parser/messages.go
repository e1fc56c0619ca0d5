package parser

// Diagnostic messages. The wording is part of the output format.
const (
	msgEmptyFile           = "Empty File"
	msgMissingProgram      = "Missing PROGRAM."
	msgMissingProgramName  = "Missing Program Name."
	msgMissingEnd          = "Missing END at end of program."
	msgMissingEndProgram   = "Missing PROGRAM at the End"
	msgMissingSemicolon    = "Missing a semicolon."
	msgInvalidStatement    = "Invalid Statement"
	msgBadDeclarationType  = "Incorrect Declaration Type."
	msgInvalidIdentList    = "Invalid Identifier List"
	msgRedefinition        = "Variable Redefinition"
	msgInvalidControlStmt  = "Invalid Control Statement"
	msgMissingWrite        = "Missing WRITE Keyword"
	msgMissingWriteExpr    = "Missing expression after WRITE"
	msgMissingIf           = "Missing IF"
	msgMissingIfLParen     = "Missing Left Parenthesis of IF"
	msgMissingIfRParen     = "Missing Right Parenthesis of IF"
	msgMissingIfStatement  = "Missing Statement after IF"
	msgMissingAssignOp     = "Missing Assignment Operator"
	msgMissingAssignExpr   = "Missing Expression in Assignment Statement"
	msgMissingExpr         = "Missing Expression"
	msgMissingExprComma    = "Missing Expression after Comma"
	msgExpression          = "Expression error"
	msgMissingOperand      = "Missing operand after operator"
	msgTerm                = "Term Error"
	msgUndeclared          = "Undeclared Variable"
	msgNoLeftParen         = "No left parenthesis"
	msgFactor              = "Factor error"
	msgNoRightParen        = "No right parenthesis"
	msgMissingLogicExpr    = "Missing Expression in Logic Expression"
	msgRelationalOperator  = "Relational Operator Error"
	msgMissingRelationExpr = "Missing Expression after Relational Operator"
	msgBadIdentifier       = "Incorrect Identifier Statement"
)
