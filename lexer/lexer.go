// Package lexer turns Monkey source text into a flat stream of
// tokens. It is a single-pass, byte-oriented scanner. Identifier and
// integer token literals are substrings of the source text; string
// literal tokens carry a freshly decoded copy.
package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/monkeylang/gomix/token"
)

// Lexer scans a source string one byte at a time, tracking line and
// column for diagnostics. It has no exported fields: callers only
// drive it through New and NextToken.
type Lexer struct {
	src       string
	current   byte
	position  int
	srcLength int
	line      int
	column    int

	err error
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	lex := &Lexer{
		src:       src,
		position:  0,
		srcLength: len(src),
		line:      1,
		column:    1,
	}
	if lex.srcLength > 0 {
		lex.current = src[0]
	}
	return lex
}

// Err returns the first lexical error encountered, if any. Lexing is
// all-or-nothing: once Err is non-nil, subsequent tokens are
// meaningless and callers should discard the token stream.
func (l *Lexer) Err() error {
	return l.err
}

// peek returns the next byte without consuming it, or 0 at end of input.
func (l *Lexer) peek() byte {
	if l.position+1 >= l.srcLength {
		return 0
	}
	return l.src[l.position+1]
}

// advance moves one byte forward, updating line/column bookkeeping.
func (l *Lexer) advance() {
	if l.current == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	l.position++
	if l.position >= l.srcLength {
		l.current = 0
		l.position = l.srcLength
	} else {
		l.current = l.src[l.position]
	}
}

func (l *Lexer) skipWhitespace() {
	for isWhitespace(l.current) {
		l.advance()
	}
}

// NextToken scans and returns the next token, or token.EOF once the
// source is exhausted. If a lexical error occurs, it is recorded (see
// Err) and NextToken returns an ILLEGAL token for that position;
// callers performing all-or-nothing lexing should stop on Err() != nil
// rather than trust the token stream past that point.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	line, col := l.line, l.column

	var tok token.Token
	switch l.current {
	case '=':
		if l.peek() == '=' {
			l.advance()
			tok = token.NewAt(token.EQ, "==", line, col)
		} else {
			tok = token.NewAt(token.ASSIGN, "=", line, col)
		}
	case '!':
		if l.peek() == '=' {
			l.advance()
			tok = token.NewAt(token.NOT_EQ, "!=", line, col)
		} else {
			tok = token.NewAt(token.BANG, "!", line, col)
		}
	case '<':
		if l.peek() == '=' {
			l.advance()
			tok = token.NewAt(token.LT_EQ, "<=", line, col)
		} else {
			tok = token.NewAt(token.LT, "<", line, col)
		}
	case '>':
		if l.peek() == '=' {
			l.advance()
			tok = token.NewAt(token.GT_EQ, ">=", line, col)
		} else {
			tok = token.NewAt(token.GT, ">", line, col)
		}
	case '+':
		tok = token.NewAt(token.PLUS, "+", line, col)
	case '-':
		tok = token.NewAt(token.MINUS, "-", line, col)
	case '*':
		tok = token.NewAt(token.ASTERISK, "*", line, col)
	case '/':
		tok = token.NewAt(token.SLASH, "/", line, col)
	case ',':
		tok = token.NewAt(token.COMMA, ",", line, col)
	case ';':
		tok = token.NewAt(token.SEMICOLON, ";", line, col)
	case ':':
		tok = token.NewAt(token.COLON, ":", line, col)
	case '(':
		tok = token.NewAt(token.LPAREN, "(", line, col)
	case ')':
		tok = token.NewAt(token.RPAREN, ")", line, col)
	case '{':
		tok = token.NewAt(token.LBRACE, "{", line, col)
	case '}':
		tok = token.NewAt(token.RBRACE, "}", line, col)
	case '[':
		tok = token.NewAt(token.LBRACKET, "[", line, col)
	case ']':
		tok = token.NewAt(token.RBRACKET, "]", line, col)
	case '"':
		return l.readString(line, col)
	case 0:
		return token.NewAt(token.EOF, "", line, col)
	default:
		if isDigit(l.current) {
			return l.readNumber(line, col)
		}
		if isLetter(l.current) {
			return l.readIdentifier(line, col)
		}
		tok = token.NewAt(token.ILLEGAL, string(l.current), line, col)
	}

	l.advance()
	return tok
}

// readString scans a double-quoted string literal. A backslash escapes
// only the following byte literally (so "\n" decodes to the two bytes
// '\' and 'n', never a real newline) except for "\"" which decodes to
// a literal quote — matching spec.md's no-C-style-escapes rule. The
// decoded bytes must form valid UTF-8.
func (l *Lexer) readString(line, col int) token.Token {
	l.advance() // consume opening quote
	var b strings.Builder
	for {
		if l.current == 0 {
			l.err = fmt.Errorf("lexer: unterminated string literal at %d:%d", line, col)
			return token.NewAt(token.ILLEGAL, b.String(), line, col)
		}
		if l.current == '"' {
			break
		}
		if l.current == '\\' {
			l.advance()
			if l.current == 0 {
				l.err = fmt.Errorf("lexer: unterminated string literal at %d:%d", line, col)
				return token.NewAt(token.ILLEGAL, b.String(), line, col)
			}
			if l.current == '"' {
				b.WriteByte('"')
			} else {
				b.WriteByte('\\')
				b.WriteByte(l.current)
			}
			l.advance()
			continue
		}
		b.WriteByte(l.current)
		l.advance()
	}
	l.advance() // consume closing quote

	decoded := b.String()
	if !utf8.ValidString(decoded) {
		l.err = fmt.Errorf("lexer: invalid UTF-8 in string literal at %d:%d", line, col)
		return token.NewAt(token.ILLEGAL, decoded, line, col)
	}
	return token.NewAt(token.STRING, decoded, line, col)
}

// readNumber scans a run of decimal digits as a 64-bit signed integer.
// Overflow (a value outside int64's range) is a lexical error.
func (l *Lexer) readNumber(line, col int) token.Token {
	start := l.position
	for isDigit(l.current) {
		l.advance()
	}
	literal := l.src[start:l.position]
	if _, err := strconv.ParseInt(literal, 10, 64); err != nil {
		l.err = fmt.Errorf("lexer: integer literal out of range at %d:%d: %s", line, col, literal)
		return token.NewAt(token.ILLEGAL, literal, line, col)
	}
	return token.NewAt(token.INT, literal, line, col)
}

// readIdentifier scans [A-Za-z_][A-Za-z0-9_]* and classifies it as a
// keyword or a plain identifier.
func (l *Lexer) readIdentifier(line, col int) token.Token {
	start := l.position
	for isLetter(l.current) || isDigit(l.current) {
		l.advance()
	}
	literal := l.src[start:l.position]
	return token.NewAt(token.LookupIdent(literal), literal, line, col)
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
