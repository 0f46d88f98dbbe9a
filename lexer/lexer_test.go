/*
File    : mova/lexer/lexer_test.go
Package : lexer
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestConsumeToken represents a test case for ConsumeTokens.
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

func TestLexer_ConsumeTokens(t *testing.T) {
	tests := []TestConsumeToken{
		{
			Input: `1 + 2`,
			ExpectedTokens: []Token{
				NewToken(NUMBER_LIT, "1"),
				NewToken(PLUS_OP, "+"),
				NewToken(NUMBER_LIT, "2"),
				NewToken(EOF_TYPE, ""),
			},
		},
		{
			Input: `let x = 10`,
			ExpectedTokens: []Token{
				NewToken(LET_KEY, "let"),
				NewToken(IDENT_ID, "x"),
				NewToken(ASSIGN_OP, "="),
				NewToken(NUMBER_LIT, "10"),
				NewToken(EOF_TYPE, ""),
			},
		},
		{
			Input: `fn add(a, b) = a + b`,
			ExpectedTokens: []Token{
				NewToken(FN_KEY, "fn"),
				NewToken(IDENT_ID, "add"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENT_ID, "a"),
				NewToken(COMMA_DELIM, ","),
				NewToken(IDENT_ID, "b"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(ASSIGN_OP, "="),
				NewToken(IDENT_ID, "a"),
				NewToken(PLUS_OP, "+"),
				NewToken(IDENT_ID, "b"),
				NewToken(EOF_TYPE, ""),
			},
		},
		{
			Input: `let r = x& { true false }`,
			ExpectedTokens: []Token{
				NewToken(LET_KEY, "let"),
				NewToken(IDENT_ID, "r"),
				NewToken(ASSIGN_OP, "="),
				NewToken(IDENT_ID, "x"),
				NewToken(AMP_OP, "&"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(BOOLEAN_LIT, "true"),
				NewToken(BOOLEAN_LIT, "false"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(EOF_TYPE, ""),
			},
		},
		{
			// comments do not merge adjacent tokens
			Input: "1//c\n2",
			ExpectedTokens: []Token{
				NewToken(NUMBER_LIT, "1"),
				NewToken(NUMBER_LIT, "2"),
				NewToken(EOF_TYPE, ""),
			},
		},
	}

	for _, test := range tests {
		lex := NewLexer(test.Input)
		gotTokens, err := lex.ConsumeTokens()
		assert.NoError(t, err)
		assert.Equal(t, len(test.ExpectedTokens), len(gotTokens))
		for i, token := range test.ExpectedTokens {
			assert.Equal(t, token.Type, gotTokens[i].Type)
			assert.Equal(t, token.Literal, gotTokens[i].Literal)
		}
	}
}

func TestLexer_UnknownCharacter(t *testing.T) {
	lex := NewLexer(`1 @ 2`)
	_, err := lex.ConsumeTokens()
	assert.Error(t, err)
	var lexErr *LexError
	assert.ErrorAs(t, err, &lexErr)
	assert.Equal(t, 1, lexErr.Line)
}

// TestLexer_RoundTrip re-serializes a token stream with canonical single
// spaces and tokenizes it again; the two streams must agree on every
// token's type and literal.
func TestLexer_RoundTrip(t *testing.T) {
	src := "fn add(a, b) = a + b\nlet r = x&\n{ true 7 / 2 }"

	first, err := NewLexer(src).ConsumeTokens()
	assert.NoError(t, err)

	var canonical string
	for _, tok := range first {
		if tok.Type == EOF_TYPE {
			break
		}
		if canonical != "" {
			canonical += " "
		}
		canonical += tok.Literal
	}

	second, err := NewLexer(canonical).ConsumeTokens()
	assert.NoError(t, err)
	assert.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Type, second[i].Type)
		assert.Equal(t, first[i].Literal, second[i].Literal)
	}
}

func TestLexer_LineTracking(t *testing.T) {
	lex := NewLexer("let x = 1\nlet y = 2")
	tokens, err := lex.ConsumeTokens()
	assert.NoError(t, err)
	// "y" is on the second line
	for _, tok := range tokens {
		if tok.Type == IDENT_ID && tok.Literal == "y" {
			assert.Equal(t, 2, tok.Line)
		}
	}
}
