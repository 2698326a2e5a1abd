package query

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrSyntax is the base error for malformed input. Syntax errors carry no
// position information; callers get only the kind of token that failed.
var ErrSyntax = errors.New("syntax error")

// parser is a single-pass, backtracking-free recursive-descent parser over
// the raw input. Lookahead is a single byte.
type parser struct {
	input string
	pos   int
}

// Parse parses a shorthand query. Both object identifiers and predicate
// identifiers come back as raw strings; resolution happens elsewhere.
func Parse(input string) (*Query[string, string], error) {
	p := &parser{input: input}

	tree, err := p.parseObjectTree()
	if err != nil {
		return nil, err
	}

	q := &Query[string, string]{Object: tree}
	for {
		p.skipWhitespace()
		if p.eof() {
			return q, nil
		}
		pred, err := p.parsePredicate()
		if err != nil {
			return nil, err
		}
		q.Predicates = append(q.Predicates, pred)
	}
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.input[p.pos]
}

// consume advances past ch if it is next, reporting whether it did.
func (p *parser) consume(ch byte) bool {
	if !p.eof() && p.input[p.pos] == ch {
		p.pos++
		return true
	}
	return false
}

func (p *parser) skipWhitespace() {
	for !p.eof() {
		switch p.input[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func isIdentByte(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') ||
		ch == '_'
}

// parseIdentifier scans a run of identifier bytes. A zero-length run is a
// syntax error.
func (p *parser) parseIdentifier() (string, error) {
	p.skipWhitespace()
	start := p.pos
	for !p.eof() && isIdentByte(p.input[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return "", fmt.Errorf("%w: expected identifier", ErrSyntax)
	}
	return p.input[start:p.pos], nil
}

// parseObjectTree parses an identifier optionally followed by '>' and a
// '+'-separated list of child trees. Nesting is right-recursive: each child
// may expand its own '>' chain before the parent's sibling list continues.
func (p *parser) parseObjectTree() (*ObjectTree[string], error) {
	root, err := p.parseIdentifier()
	if err != nil {
		return nil, err
	}
	tree := &ObjectTree[string]{Root: root}

	p.skipWhitespace()
	if !p.consume('>') {
		return tree, nil
	}

	child, err := p.parseObjectTree()
	if err != nil {
		return nil, err
	}
	tree.Children = append(tree.Children, child)

	for {
		p.skipWhitespace()
		if !p.consume('+') {
			return tree, nil
		}
		child, err := p.parseObjectTree()
		if err != nil {
			return nil, err
		}
		tree.Children = append(tree.Children, child)
	}
}

func (p *parser) parseOperator() (Operator, error) {
	p.skipWhitespace()
	switch {
	case p.consume('='):
		return OpEq, nil
	case p.consume('!'):
		if p.consume('=') {
			return OpNe, nil
		}
		return 0, fmt.Errorf("%w: expected operator", ErrSyntax)
	case p.consume('<'):
		if p.consume('=') {
			return OpLe, nil
		}
		return OpLt, nil
	case p.consume('>'):
		if p.consume('=') {
			return OpGe, nil
		}
		return OpGt, nil
	}
	return 0, fmt.Errorf("%w: expected operator", ErrSyntax)
}

// parseLiteral tries, in order: quoted string, integer (maximal digit run),
// bare word (run until whitespace). A zero-length token at any stage is a
// syntax error.
func (p *parser) parseLiteral() (Literal, error) {
	p.skipWhitespace()
	if p.eof() {
		return Literal{}, fmt.Errorf("%w: expected literal", ErrSyntax)
	}

	if quote := p.peek(); quote == '\'' || quote == '"' {
		p.pos++
		start := p.pos
		for !p.eof() && p.input[p.pos] != quote {
			p.pos++
		}
		if p.eof() {
			return Literal{}, fmt.Errorf("%w: unterminated string literal", ErrSyntax)
		}
		value := p.input[start:p.pos]
		p.pos++ // closing quote
		if value == "" {
			return Literal{}, fmt.Errorf("%w: empty string literal", ErrSyntax)
		}
		return StringLiteral(value), nil
	}

	start := p.pos
	for !p.eof() && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	if p.pos > start {
		n, err := strconv.ParseInt(p.input[start:p.pos], 10, 64)
		if err != nil {
			return Literal{}, fmt.Errorf("%w: integer literal out of range", ErrSyntax)
		}
		return IntLiteral(n), nil
	}

	for !p.eof() && !isSpace(p.input[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return Literal{}, fmt.Errorf("%w: expected literal", ErrSyntax)
	}
	return StringLiteral(p.input[start:p.pos]), nil
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func (p *parser) parsePredicate() (Predicate[string], error) {
	ident, err := p.parseIdentifier()
	if err != nil {
		return Predicate[string]{}, err
	}
	op, err := p.parseOperator()
	if err != nil {
		return Predicate[string]{}, err
	}
	value, err := p.parseLiteral()
	if err != nil {
		return Predicate[string]{}, err
	}
	return Predicate[string]{Identifier: ident, Operator: op, Value: value}, nil
}
