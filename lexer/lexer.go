/*
File    : mova/lexer/lexer.go
Package : lexer
*/
package lexer

import (
	"fmt"

	"github.com/upyrov/mova/errs"
)

// LexError reports an unrecognized character at a specific source
// position; it is an alias for errs.LexError so lexer, parser, and the
// CLI driver share one error type instead of each defining their own.
type LexError = errs.LexError

// Lexer turns Mova source text into a flat token stream. It tracks line and
// column so tokens, and the errors built from them, carry a source position.
type Lexer struct {
	Src       string
	Current   byte
	Position  int
	SrcLength int
	Line      int
	Column    int
}

// NewLexer creates a Lexer positioned at the start of src.
func NewLexer(src string) *Lexer {
	lex := &Lexer{
		Src:       src,
		Position:  0,
		SrcLength: len(src),
		Line:      1,
		Column:    1,
	}
	if lex.SrcLength > 0 {
		lex.Current = src[0]
	}
	return lex
}

// Peek returns the byte after Current without advancing, or 0 past EOF.
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+1]
}

// Advance consumes Current and moves to the next byte, updating line/column.
func (lex *Lexer) Advance() {
	if lex.Current == '\n' {
		lex.Line++
		lex.Column = 1
	} else {
		lex.Column++
	}
	lex.Position++
	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		return
	}
	lex.Current = lex.Src[lex.Position]
}

// IgnoreWhitespacesAndComments skips whitespace and "//" line comments.
func (lex *Lexer) IgnoreWhitespacesAndComments() {
	for lex.Current != 0 {
		switch {
		case lex.Current == ' ' || lex.Current == '\t' || lex.Current == '\r' || lex.Current == '\n':
			lex.Advance()
		case lex.Current == '/' && lex.Peek() == '/':
			for lex.Current != 0 && lex.Current != '\n' {
				lex.Advance()
			}
		default:
			return
		}
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

// NextToken scans and returns the next token, advancing the lexer past it.
// Returns an *LexError wrapped as err for any unrecognized character.
func (lex *Lexer) NextToken() (Token, error) {
	lex.IgnoreWhitespacesAndComments()

	line, col := lex.Line, lex.Column

	if lex.Current == 0 {
		return NewTokenWithMetadata(EOF_TYPE, "", line, col), nil
	}

	switch {
	case isDigit(lex.Current):
		start := lex.Position
		for isDigit(lex.Current) {
			lex.Advance()
		}
		return NewTokenWithMetadata(NUMBER_LIT, lex.Src[start:lex.Position], line, col), nil

	case isIdentStart(lex.Current):
		start := lex.Position
		for isIdentContinue(lex.Current) {
			lex.Advance()
		}
		word := lex.Src[start:lex.Position]
		return NewTokenWithMetadata(lookupIdent(word), word, line, col), nil
	}

	c := lex.Current
	var tt TokenType
	switch c {
	case '+':
		tt = PLUS_OP
	case '-':
		tt = MINUS_OP
	case '*':
		tt = MUL_OP
	case '/':
		tt = DIV_OP
	case '&':
		tt = AMP_OP
	case '(':
		tt = LEFT_PAREN
	case ')':
		tt = RIGHT_PAREN
	case '=':
		tt = ASSIGN_OP
	case '{':
		tt = LEFT_BRACE
	case '}':
		tt = RIGHT_BRACE
	case ',':
		tt = COMMA_DELIM
	default:
		lex.Advance()
		return Token{}, &LexError{Line: line, Column: col, Msg: fmt.Sprintf("unexpected character %q", c)}
	}
	lex.Advance()
	return NewTokenWithMetadata(tt, string(c), line, col), nil
}

// ConsumeTokens scans the full input into a token slice terminated by EOF.
// It stops at the first lexer error and returns what it has scanned so far
// alongside that error.
func (lex *Lexer) ConsumeTokens() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := lex.NextToken()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF_TYPE {
			return tokens, nil
		}
	}
}
