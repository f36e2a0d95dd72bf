package tart

import (
	"errors"
	"fmt"
)

// Parser consumes the token stream produced by the lexer and builds the
// document AST. The helper methods (Consume, Current, Match*, Peek*) form
// an easy-to-use cursor over the stream.
type Parser struct {
	name   string
	idx    int
	tokens []*Token
}

// newParser creates a new parser to parse tokens.
func newParser(name string, tokens []*Token) *Parser {
	return &Parser{
		name:   name,
		tokens: tokens,
	}
}

func (p *Parser) Consume() {
	p.ConsumeN(1)
}

func (p *Parser) ConsumeN(count int) {
	p.idx += count
}

func (p *Parser) Current() *Token {
	return p.Get(p.idx)
}

func (p *Parser) MatchType(typ TokenType) *Token {
	if t := p.PeekType(typ); t != nil {
		p.Consume()
		return t
	}
	return nil
}

func (p *Parser) PeekType(typ TokenType) *Token {
	return p.PeekTypeN(0, typ)
}

func (p *Parser) PeekTypeN(shift int, typ TokenType) *Token {
	t := p.Get(p.idx + shift)
	if t != nil {
		if t.Typ == typ {
			return t
		}
	}
	return nil
}

func (p *Parser) Remaining() int {
	return len(p.tokens) - p.idx
}

func (p *Parser) Count() int {
	return len(p.tokens)
}

func (p *Parser) Get(i int) *Token {
	if i < len(p.tokens) {
		return p.tokens[i]
	}
	return nil
}

// Error produces a parse error located at the given token. A nil token
// selects the current token, falling back to the last one in the stream.
func (p *Parser) Error(msg string, token *Token) error {
	if token == nil {
		token = p.Current()
		if token == nil {
			if len(p.tokens) > 0 {
				token = p.tokens[len(p.tokens)-1]
			}
		}
	}
	var filename string
	var line, col int
	if token != nil {
		filename = token.Filename
		line = token.Line
		col = token.Col
	}
	return &Error{
		Filename:  filename,
		Line:      line,
		Column:    col,
		Token:     token,
		Sender:    "parser",
		OrigError: errors.New(msg),
	}
}

// parseDocument builds the root node from the token stream.
//
//	program := expression*
func (p *Parser) parseDocument() (*Document, error) {
	doc := &Document{}
	for p.PeekType(TokenEOF) == nil {
		node, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		doc.Nodes = append(doc.Nodes, node)
	}
	return doc, nil
}

// parseExpression parses a single expression and leaves the parser
// positioned on the token after it.
//
//	expression := STRING | '[' expression* ']'
func (p *Parser) parseExpression() (Node, error) {
	t := p.Current()
	if t == nil {
		return nil, p.Error("unexpected end of token stream", nil)
	}
	switch t.Typ {
	case TokenString:
		p.Consume()
		return &StringNode{position: t, Val: t.Val}, nil
	case TokenLeftBracket:
		p.Consume()
		node := &VectorNode{position: t}
		for p.PeekType(TokenRightBracket) == nil {
			if p.PeekType(TokenEOF) != nil {
				return nil, p.Error("unexpected EOF, expected `]`", t)
			}
			elem, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			node.Elements = append(node.Elements, elem)
		}
		p.Consume() // consume ']'
		return node, nil
	case TokenRightBracket:
		return nil, p.Error("unexpected `]`", t)
	default:
		return nil, p.Error(fmt.Sprintf("unexpected token %s", t), t)
	}
}
