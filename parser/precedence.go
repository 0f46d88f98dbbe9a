/*
File    : mova/parser/precedence.go
Package : parser
*/
package parser

import "github.com/upyrov/mova/lexer"

// Binding powers for the Pratt expression parser. Mova's grammar only has
// two infix precedence tiers and a single postfix tier, so the table is
// a handful of constants.
const (
	MINIMUM_PRIORITY = 0
	ADDITIVE         = 3 // + -  (left binding power 3, right binding power 4)
	MULTIPLICATIVE   = 5 // * /  (left binding power 5, right binding power 6)
	POSTFIX_PRIORITY = 2 // call "(" and borrow "&"
)

// infixBindingPower returns the (left, right) binding powers for a binary
// operator token, or (0, 0) if the token is not infix in this grammar.
func infixBindingPower(tt lexer.TokenType) (int, int) {
	switch tt {
	case lexer.PLUS_OP, lexer.MINUS_OP:
		return 3, 4
	case lexer.MUL_OP, lexer.DIV_OP:
		return 5, 6
	default:
		return 0, 0
	}
}

// postfixBindingPower reports whether a token is a valid postfix operator
// (call "(" or borrow "&") and its binding power.
func postfixBindingPower(tt lexer.TokenType) (int, bool) {
	switch tt {
	case lexer.LEFT_PAREN, lexer.AMP_OP:
		return POSTFIX_PRIORITY, true
	default:
		return 0, false
	}
}
