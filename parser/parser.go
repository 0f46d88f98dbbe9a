/*
File    : mova/parser/parser.go
Package : parser

Package parser turns a Mova token stream into an ast.Program using a
Pratt expression parser (see precedence.go for the binding-power table)
plus a small recursive-descent statement layer on top of it.
*/
package parser

import (
	"fmt"

	"github.com/upyrov/mova/ast"
	"github.com/upyrov/mova/errs"
	"github.com/upyrov/mova/lexer"
)

// Parser holds the lexer and the two-token lookahead window (cur, peek)
// it drives.
type Parser struct {
	lex  *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token
}

// NewParser creates a Parser over src and primes its two-token lookahead.
func NewParser(src string) (*Parser, error) {
	p := &Parser{lex: lexer.NewLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// advance shifts the lookahead window forward by one token.
func (p *Parser) advance() error {
	p.cur = p.peek
	tok, err := p.lex.NextToken()
	if err != nil {
		return err
	}
	p.peek = tok
	return nil
}

func (p *Parser) pos() ast.Pos {
	return ast.Pos{Line: p.cur.Line, Column: p.cur.Column}
}

func (p *Parser) errf(format string, a ...interface{}) error {
	return &errs.ParseError{Line: p.cur.Line, Column: p.cur.Column, Msg: fmt.Sprintf(format, a...)}
}

// expect checks that the current token has type tt, consumes it, and
// advances past it; otherwise it returns a ParseError.
func (p *Parser) expect(tt lexer.TokenType, what string) error {
	if p.cur.Type != tt {
		return p.errf("expected %s but found %q", what, p.cur.Literal)
	}
	return p.advance()
}

// Parse consumes the whole token stream and returns the Program root.
func (p *Parser) Parse() (*ast.Program, error) {
	pos := p.pos()
	var nodes []ast.Node
	for p.cur.Type != lexer.EOF_TYPE {
		node, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return &ast.Program{Pos: pos, Nodes: nodes}, nil
}

// parseStatement dispatches on the current token: `let`, `fn`, or falls
// through to a bare expression statement.
func (p *Parser) parseStatement() (ast.Node, error) {
	switch p.cur.Type {
	case lexer.LET_KEY:
		return p.parseVariableStatement()
	case lexer.FN_KEY:
		return p.parseFunctionStatement()
	default:
		return p.parseExpression(MINIMUM_PRIORITY)
	}
}

func (p *Parser) parseVariableStatement() (ast.Node, error) {
	pos := p.pos()
	if err := p.advance(); err != nil { // consume 'let'
		return nil, err
	}
	if p.cur.Type != lexer.IDENT_ID {
		return nil, p.errf("expected identifier after 'let' but found %q", p.cur.Literal)
	}
	name := p.cur.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.ASSIGN_OP, "'=' after identifier"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(MINIMUM_PRIORITY)
	if err != nil {
		return nil, err
	}
	return &ast.VariableStatement{Pos: pos, Name: name, Value: value}, nil
}

func (p *Parser) parseFunctionStatement() (ast.Node, error) {
	pos := p.pos()
	if err := p.advance(); err != nil { // consume 'fn'
		return nil, err
	}
	if p.cur.Type != lexer.IDENT_ID {
		return nil, p.errf("expected function name after 'fn' but found %q", p.cur.Literal)
	}
	name := p.cur.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(lexer.LEFT_PAREN, "'(' after function name"); err != nil {
		return nil, err
	}
	var params []string
	for p.cur.Type != lexer.RIGHT_PAREN {
		if p.cur.Type != lexer.IDENT_ID {
			return nil, p.errf("expected parameter name but found %q", p.cur.Literal)
		}
		params = append(params, p.cur.Literal)
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.cur.Type == lexer.COMMA_DELIM {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if err := p.advance(); err != nil { // consume ')'
		return nil, err
	}
	if err := p.expect(lexer.ASSIGN_OP, "'=' before function body"); err != nil {
		return nil, err
	}
	body, err := p.parseExpression(MINIMUM_PRIORITY)
	if err != nil {
		return nil, err
	}
	return &ast.FunctionStatement{Pos: pos, Name: name, Parameters: params, Body: body}, nil
}

// parseExpression handles the one non-Pratt production (a block) and
// otherwise delegates to the Pratt binary-expression parser.
func (p *Parser) parseExpression(minBP int) (ast.Expression, error) {
	if p.cur.Type == lexer.LEFT_BRACE {
		return p.parseBlock()
	}
	return p.parseBinaryExpression(minBP)
}

func (p *Parser) parseBlock() (*ast.Block, error) {
	pos := p.pos()
	if err := p.advance(); err != nil { // consume '{'
		return nil, err
	}
	var nodes []ast.Node
	for p.cur.Type != lexer.RIGHT_BRACE {
		if p.cur.Type == lexer.EOF_TYPE {
			return nil, p.errf("unterminated block, expected '}'")
		}
		node, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	if err := p.advance(); err != nil { // consume '}'
		return nil, err
	}
	return &ast.Block{Pos: pos, Nodes: nodes}, nil
}

// parseBinaryExpression is the Pratt core: parse a prefix atom, then
// repeatedly fold in postfix (call, borrow) and infix (+ - * /) operators
// whose binding power exceeds minBP.
func (p *Parser) parseBinaryExpression(minBP int) (ast.Expression, error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		if lbp, ok := postfixBindingPower(p.cur.Type); ok && lbp >= minBP {
			left, err = p.parsePostfix(left)
			if err != nil {
				return nil, err
			}
			continue
		}

		lbp, rbp := infixBindingPower(p.cur.Type)
		if lbp == 0 || lbp < minBP {
			break
		}
		op := ast.BinaryOp(p.cur.Literal)
		pos := p.pos()
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseBinaryExpression(rbp)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpression{Pos: pos, Op: op, Left: left, Right: right}
	}

	return left, nil
}

func (p *Parser) parsePrefix() (ast.Expression, error) {
	pos := p.pos()
	switch p.cur.Type {
	case lexer.NUMBER_LIT:
		n, err := parseInt32(p.cur.Literal)
		if err != nil {
			return nil, p.errf("invalid integer literal %q", p.cur.Literal)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.NumberLiteral{Pos: pos, Value: n}, nil

	case lexer.BOOLEAN_LIT:
		b := p.cur.Literal == "true"
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.BooleanLiteral{Pos: pos, Value: b}, nil

	case lexer.IDENT_ID:
		name := p.cur.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Identifier{Pos: pos, Name: name}, nil

	default:
		return nil, p.errf("expected an expression but found %q", p.cur.Literal)
	}
}

// parsePostfix folds a single postfix operator onto an already-parsed
// prefix expression: a call `name(...)` or a borrow `name&`.
func (p *Parser) parsePostfix(left ast.Expression) (ast.Expression, error) {
	pos := p.pos()
	switch p.cur.Type {
	case lexer.LEFT_PAREN:
		id, ok := left.(*ast.Identifier)
		if !ok {
			return nil, p.errf("call target must be an identifier")
		}
		if err := p.advance(); err != nil { // consume '('
			return nil, err
		}
		var args []ast.Expression
		for p.cur.Type != lexer.RIGHT_PAREN {
			if p.cur.Type == lexer.EOF_TYPE {
				return nil, p.errf("expected argument list to be closed")
			}
			arg, err := p.parseExpression(MINIMUM_PRIORITY)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.cur.Type == lexer.COMMA_DELIM {
				if err := p.advance(); err != nil {
					return nil, err
				}
				if p.cur.Type == lexer.RIGHT_PAREN {
					return nil, p.errf("expected another argument or argument list to be closed")
				}
			} else if p.cur.Type != lexer.RIGHT_PAREN {
				return nil, p.errf("expected ',' or ')' in argument list")
			}
		}
		if err := p.advance(); err != nil { // consume ')'
			return nil, err
		}
		return &ast.Call{Pos: pos, Name: id.Name, Arguments: args}, nil

	case lexer.AMP_OP:
		id, ok := left.(*ast.Identifier)
		if !ok {
			return nil, p.errf("'&' may only follow an identifier")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Reference{Pos: pos, Name: id.Name}, nil

	default:
		return nil, p.errf("unexpected postfix operator %q", p.cur.Literal)
	}
}

func parseInt32(lit string) (int32, error) {
	var n int64
	for _, c := range lit {
		n = n*10 + int64(c-'0')
		if n > 1<<31-1 {
			return 0, fmt.Errorf("overflow")
		}
	}
	return int32(n), nil
}
