package parser

import (
	"strings"

	"github.com/tobsdb/invdb/internal/types"
)

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenWord
	TokenString
	TokenOperator
	TokenStar
)

func (k TokenKind) String() string {
	switch k {
	case TokenWord:
		return "word"
	case TokenString:
		return "string"
	case TokenOperator:
		return "operator"
	case TokenStar:
		return "*"
	}
	return "end of input"
}

type Token struct {
	Kind TokenKind
	// unquoted content for strings
	Text string
	Pos  int
}

// ASCII only, multi-byte text passes through words untouched
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isQuote(c byte) bool { return c == '"' || c == '\'' }

func isOperatorStart(c byte) bool { return c == '>' || c == '<' || c == '=' }

// Tokenize splits a query line. Quoted strings are read whole before any
// operator scanning, so a quoted value may contain operator characters.
// Operators are matched longest first.
func Tokenize(line string) ([]Token, error) {
	tokens := []Token{}
	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case isSpace(c):
			i++
		case isQuote(c):
			end := strings.IndexByte(line[i+1:], c)
			if end < 0 {
				return nil, &ParseError{
					Kind: ErrUnterminatedString, Pos: i, Token: line[i:],
					Msg: "missing closing quote",
				}
			}
			tokens = append(tokens, Token{TokenString, line[i+1 : i+1+end], i})
			i += end + 2
		case c == '*':
			tokens = append(tokens, Token{TokenStar, "*", i})
			i++
		case isOperatorStart(c):
			op := matchOperator(line[i:])
			tokens = append(tokens, Token{TokenOperator, string(op), i})
			i += len(op)
		default:
			start := i
			for i < len(line) {
				c := line[i]
				if isSpace(c) || isQuote(c) || isOperatorStart(c) || c == '*' {
					break
				}
				i++
			}
			tokens = append(tokens, Token{TokenWord, line[start:i], start})
		}
	}
	return append(tokens, Token{TokenEOF, "", len(line)}), nil
}

func matchOperator(s string) types.Operator {
	for _, op := range types.OPERATORS {
		if strings.HasPrefix(s, string(op)) {
			return op
		}
	}
	// unreachable for a string starting with > < or =
	return types.OpEqual
}
