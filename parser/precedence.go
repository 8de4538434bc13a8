package parser

import "github.com/monkeylang/gomix/token"

// Precedence levels, lowest to highest, per spec.md §4.2's table.
// Higher numbers bind tighter.
const (
	_ int = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // < > <= >=
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x, !x, +x
	CALL        // fn(x)
	INDEX       // arr[x]
)

// precedences maps each infix/postfix operator token to its binding
// power. A token absent from this table is treated as LOWEST, which
// stops infix folding — the parser's tie-break for unknown operators
// (spec.md §4.2).
var precedences = map[token.Type]int{
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.LT_EQ:    LESSGREATER,
	token.GT_EQ:    LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
	token.LPAREN:   CALL,
	token.LBRACKET: INDEX,
}

func precedenceOf(tok token.Token) int {
	if p, ok := precedences[tok.Type]; ok {
		return p
	}
	return LOWEST
}
