package formula

import (
	"io"
	"strings"
	"text/scanner"

	"github.com/pkg/errors"
)

// Parse reads a formula in infix notation. Operators, from lowest to
// highest priority:
//
//   - "=" equivalence,
//   - "->" implication,
//   - "|" disjunction,
//   - "&" conjunction,
//   - "^" negation (unary).
//
// Parentheses group subformulas; any other token is a variable name.
func Parse(r io.Reader) (Formula, error) {
	var s scanner.Scanner
	s.Init(r)
	p := parser{s: s}
	p.scan()
	f, err := p.parseEquiv()
	if err != nil {
		return nil, err
	}
	if !p.eof {
		return nil, p.errorf("unexpected trailing token %q", p.token)
	}
	return f, nil
}

// ParseString parses the formula held in s. See Parse for the grammar.
func ParseString(s string) (Formula, error) {
	return Parse(strings.NewReader(s))
}

type parser struct {
	s     scanner.Scanner
	eof   bool   // have we reached eof yet?
	token string // last token read
}

func isOperator(token string) bool {
	return token == "=" || token == "->" || token == "|" || token == "&"
}

func (p *parser) scan() {
	if p.eof {
		return
	}
	p.eof = p.s.Scan() == scanner.EOF
	p.token = p.s.TokenText()
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return errors.Wrapf(errors.Errorf(format, args...), "at %s", p.s.Pos())
}

func (p *parser) parseEquiv() (Formula, error) {
	if p.eof {
		return nil, p.errorf("expected expression, found EOF")
	}
	if isOperator(p.token) {
		return nil, p.errorf("unexpected token %q", p.token)
	}
	f, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	if p.eof || p.token != "=" {
		return f, nil
	}
	p.scan()
	if p.eof {
		return nil, p.errorf("unexpected EOF")
	}
	f2, err := p.parseEquiv()
	if err != nil {
		return nil, err
	}
	return Eq(f, f2), nil
}

func (p *parser) parseImplies() (Formula, error) {
	f, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.eof || p.token != "-" {
		return f, nil
	}
	p.scan()
	if p.eof {
		return nil, p.errorf("unexpected EOF")
	}
	if p.token != ">" {
		return nil, p.errorf("invalid token %q", "-"+p.token)
	}
	p.scan()
	if p.eof {
		return nil, p.errorf("unexpected EOF")
	}
	f2, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	return Implies(f, f2), nil
}

func (p *parser) parseOr() (Formula, error) {
	f, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	if p.eof || p.token != "|" {
		return f, nil
	}
	p.scan()
	if p.eof {
		return nil, p.errorf("unexpected EOF")
	}
	f2, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	return Or(f, f2), nil
}

func (p *parser) parseAnd() (Formula, error) {
	f, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	if p.eof || p.token != "&" {
		return f, nil
	}
	p.scan()
	if p.eof {
		return nil, p.errorf("unexpected EOF")
	}
	f2, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	return And(f, f2), nil
}

func (p *parser) parseNot() (Formula, error) {
	if isOperator(p.token) {
		return nil, p.errorf("unexpected token %q", p.token)
	}
	if p.token != "^" {
		return p.parseBasic()
	}
	p.scan()
	if p.eof {
		return nil, p.errorf("unexpected EOF")
	}
	f, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	return Not(f), nil
}

func (p *parser) parseBasic() (Formula, error) {
	if isOperator(p.token) || p.token == ")" {
		return nil, p.errorf("unexpected token %q", p.token)
	}
	if p.token != "(" {
		defer p.scan()
		return Var(p.token), nil
	}
	p.scan()
	f, err := p.parseEquiv()
	if err != nil {
		return nil, err
	}
	if p.eof {
		return nil, p.errorf("expected closing parenthesis, found EOF")
	}
	if p.token != ")" {
		return nil, p.errorf("expected closing parenthesis, found %q", p.token)
	}
	p.scan()
	return f, nil
}
