// Package parser turns one line of the inventory query language into a
// command.
//
//	SELECT [*] [WHERE <field><op><value>]
//	INSERT <field>=<value> ...
//	UPDATE SET <field>=<value> WHERE <field>=<value>
//	DELETE * [WHERE <field><op><value>]
//	HELP
//
// Keywords and field names are case-insensitive. Values may be quoted with
// " or '. Operators are = > < >= <=; UPDATE only accepts =.
package parser

import (
	"strings"

	"github.com/samber/mo"
	"github.com/tobsdb/invdb/internal/record"
	"github.com/tobsdb/invdb/internal/types"
)

type parser struct {
	tokens []Token
	pos    int
}

func Parse(line string) (Command, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}

	head := p.next()
	if head.Kind != TokenWord {
		return nil, newParseError(ErrUnknownCommand, head, "expected a command")
	}

	var cmd Command
	switch strings.ToUpper(head.Text) {
	case "SELECT":
		cmd, err = p.parseSelect()
	case "INSERT":
		cmd, err = p.parseInsert()
	case "UPDATE":
		cmd, err = p.parseUpdate()
	case "DELETE":
		cmd, err = p.parseDelete()
	case "HELP":
		cmd = HelpCmd{}
	default:
		return nil, newParseError(ErrUnknownCommand, head, "unknown command")
	}
	if err != nil {
		return nil, err
	}

	if err := p.expectEnd(); err != nil {
		return nil, err
	}
	return cmd, nil
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Kind != TokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) acceptKeyword(keyword string) bool {
	tok := p.peek()
	if tok.Kind == TokenWord && strings.EqualFold(tok.Text, keyword) {
		p.pos++
		return true
	}
	return false
}

func (p *parser) expectEnd() error {
	if tok := p.peek(); tok.Kind != TokenEOF {
		return newParseError(ErrUnexpectedToken, tok, "unexpected trailing input")
	}
	return nil
}

func (p *parser) parseSelect() (Command, error) {
	cmd := SelectCmd{Filter: mo.None[Condition]()}
	if p.peek().Kind == TokenStar {
		p.next()
	}
	if p.acceptKeyword("WHERE") {
		cond, err := p.parseCondition(true)
		if err != nil {
			return nil, err
		}
		cmd.Filter = mo.Some(cond)
	}
	return cmd, nil
}

func (p *parser) parseInsert() (Command, error) {
	cmd := InsertCmd{Fields: []Assignment{}}
	for p.peek().Kind != TokenEOF {
		a, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		// unknown keys are ignored
		if a.Field.IsValid() {
			cmd.Fields = append(cmd.Fields, a)
		}
	}
	return cmd, nil
}

func (p *parser) parseUpdate() (Command, error) {
	if !p.acceptKeyword("SET") {
		return nil, newParseError(ErrMissingClause, p.peek(), "expected SET")
	}
	set, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}

	if !p.acceptKeyword("WHERE") {
		return nil, newParseError(ErrMissingClause, p.peek(), "expected WHERE")
	}
	where, err := p.parseCondition(false)
	if err != nil {
		return nil, err
	}
	return UpdateCmd{Set: set, Where: where}, nil
}

func (p *parser) parseDelete() (Command, error) {
	cmd := DeleteCmd{Where: mo.None[Condition]()}
	if tok := p.next(); tok.Kind != TokenStar {
		return nil, newParseError(ErrMissingClause, tok, "expected *")
	}
	if p.acceptKeyword("WHERE") {
		cond, err := p.parseCondition(true)
		if err != nil {
			return nil, err
		}
		cmd.Where = mo.Some(cond)
	} else if tok := p.peek(); tok.Kind != TokenEOF {
		return nil, newParseError(ErrMissingClause, tok, "expected WHERE")
	}
	return cmd, nil
}

func (p *parser) parseCondition(relational bool) (Condition, error) {
	field_tok := p.next()
	if field_tok.Kind != TokenWord {
		return Condition{}, newParseError(ErrUnexpectedToken, field_tok, "expected a field name")
	}

	op_tok := p.next()
	if op_tok.Kind != TokenOperator {
		return Condition{}, newParseError(ErrUnexpectedToken, op_tok, "expected an operator after %s", field_tok.Text)
	}
	op := types.Operator(op_tok.Text)
	if !relational && op != types.OpEqual {
		return Condition{}, newParseError(ErrUnexpectedToken, op_tok, "only = is allowed here")
	}

	field := record.ParseField(field_tok.Text)
	value, err := p.parseValue(field)
	if err != nil {
		return Condition{}, err
	}
	return Condition{Field: field, Op: op, Value: value, Name: field_tok.Text}, nil
}

func (p *parser) parseAssignment() (Assignment, error) {
	cond, err := p.parseCondition(false)
	if err != nil {
		return Assignment{}, err
	}
	return Assignment{Field: cond.Field, Value: cond.Value, Name: cond.Name}, nil
}

func (p *parser) parseValue(field record.Field) (record.Value, error) {
	tok := p.next()
	if tok.Kind != TokenWord && tok.Kind != TokenString {
		return record.Value{}, newParseError(ErrUnexpectedToken, tok, "expected a value")
	}
	if !field.IsValid() {
		return record.TextValue(tok.Text), nil
	}

	value, err := field.ParseValue(tok.Text)
	if err != nil {
		parse_err := newParseError(ErrBadValue, tok, "%s expects a number", field)
		parse_err.Err = err
		return record.Value{}, parse_err
	}
	return value, nil
}
