package lexer

import "github.com/monkeylang/gomix/token"

// Tokenize runs the lexer to completion, returning the full EOF-
// terminated token sequence. Lexing is all-or-nothing (spec.md §4.1):
// if any lexical error occurred, Tokenize returns it instead of a
// partial token stream.
func Tokenize(src string) ([]token.Token, error) {
	lex := New(src)
	var tokens []token.Token
	for {
		tok := lex.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	if err := lex.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}
