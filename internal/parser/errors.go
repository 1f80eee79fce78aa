package parser

import "fmt"

type ErrorKind int

const (
	ErrUnknownCommand ErrorKind = iota + 1
	ErrUnexpectedToken
	ErrMissingClause
	ErrBadValue
	ErrUnterminatedString
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnknownCommand:
		return "unknown command"
	case ErrUnexpectedToken:
		return "unexpected token"
	case ErrMissingClause:
		return "missing clause"
	case ErrBadValue:
		return "bad value"
	case ErrUnterminatedString:
		return "unterminated string"
	}
	return "parse error"
}

// ParseError is any malformed query. Pos is the byte offset into the input
// line where the problem was found and Token the text found there.
type ParseError struct {
	Kind  ErrorKind
	Pos   int
	Token string
	Msg   string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%s at position %d: %s", e.Kind, e.Pos, e.Msg)
	}
	return fmt.Sprintf("%s at position %d near %q: %s", e.Kind, e.Pos, e.Token, e.Msg)
}

func (e *ParseError) Unwrap() error { return e.Err }

func newParseError(kind ErrorKind, tok Token, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Pos: tok.Pos, Token: tok.Text, Msg: fmt.Sprintf(format, args...)}
}
