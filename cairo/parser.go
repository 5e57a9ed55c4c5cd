// Copyright (c) 2025 attestkit
// SPDX-License-Identifier: Apache-2.0
// This file is part of the cairo-abigen library.

package cairo

import (
	"fmt"
	"strings"
)

// Parser parses top-level Cairo type items: structs with their attributes
// and members, enum and alias headers. Bodies the engine never looks at
// (enum variants, alias targets) are skipped, not modeled.
type Parser struct {
	src  string
	l    *Lexer
	cur  Token
	peek Token

	errors []string
}

// ParseItems parses all top-level type items of a Cairo source fragment.
// Member type expressions are preserved as raw source text, generic
// parameters included, so "Array<felt252>" reaches the classifier intact.
func ParseItems(src string) ([]Item, error) {
	p := &Parser{src: src, l: NewLexer(src)}
	p.nextToken()
	p.nextToken()

	var items []Item
	for p.cur.Type != TokenEOF && len(p.errors) == 0 {
		item, ok := p.parseItem()
		if !ok {
			break
		}
		items = append(items, item)
	}

	if len(p.errors) > 0 {
		return nil, fmt.Errorf("parse error: %s", strings.Join(p.errors, "; "))
	}
	return items, nil
}

func (p *Parser) nextToken() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *Parser) parseItem() (Item, bool) {
	attrs, ok := p.parseAttributes()
	if !ok {
		return Item{}, false
	}

	for p.cur.Type == TokenPub {
		p.nextToken()
	}

	line, col := p.cur.Line, p.cur.Column

	switch p.cur.Type {
	case TokenStruct:
		return p.parseStruct(attrs, line, col)
	case TokenEnum:
		return p.parseEnum(attrs, line, col)
	case TokenType_:
		return p.parseAlias(attrs, line, col)
	default:
		p.errorf("unexpected token %q at %d:%d, expected struct, enum or type", p.cur.Literal, line, col)
		return Item{}, false
	}
}

func (p *Parser) parseAttributes() ([]Attribute, bool) {
	var attrs []Attribute
	for p.cur.Type == TokenHash {
		p.nextToken()
		if p.cur.Type != TokenLBracket {
			p.errorf("expected '[' after '#' at %d:%d", p.cur.Line, p.cur.Column)
			return nil, false
		}
		p.nextToken()
		if p.cur.Type != TokenIdent {
			p.errorf("expected attribute name at %d:%d", p.cur.Line, p.cur.Column)
			return nil, false
		}
		attr := Attribute{Name: p.cur.Literal}
		p.nextToken()
		if p.cur.Type == TokenLParen {
			args, ok := p.parseParenList()
			if !ok {
				return nil, false
			}
			attr.Args = args
		}
		if p.cur.Type != TokenRBracket {
			p.errorf("expected ']' to close attribute %s at %d:%d", attr.Name, p.cur.Line, p.cur.Column)
			return nil, false
		}
		p.nextToken()
		attrs = append(attrs, attr)
	}
	return attrs, true
}

// parseParenList consumes a parenthesized list starting at the current '('
// token and returns the raw source text of each top-level element. Nested
// brackets keep commas inside generic parameters or tuples from splitting
// an element.
func (p *Parser) parseParenList() ([]string, bool) {
	p.nextToken() // consume (
	var elems []string
	depth := 1
	elemStart := p.cur.Offset

	for p.cur.Type != TokenEOF {
		switch p.cur.Type {
		case TokenLParen, TokenLBracket, TokenLT:
			depth++
		case TokenRBracket, TokenGT:
			depth--
		case TokenRParen:
			depth--
			if depth == 0 {
				if elem := strings.TrimSpace(p.src[elemStart:p.cur.Offset]); elem != "" {
					elems = append(elems, elem)
				}
				p.nextToken() // consume )
				return elems, true
			}
		case TokenComma:
			if depth == 1 {
				if elem := strings.TrimSpace(p.src[elemStart:p.cur.Offset]); elem != "" {
					elems = append(elems, elem)
				}
				p.nextToken() // consume ,
				elemStart = p.cur.Offset
				continue
			}
		}
		p.nextToken()
	}

	p.errorf("unterminated parenthesized list")
	return nil, false
}

func (p *Parser) parseStruct(attrs []Attribute, line, col int) (Item, bool) {
	p.nextToken() // consume struct
	if p.cur.Type != TokenIdent {
		p.errorf("expected struct name at %d:%d", p.cur.Line, p.cur.Column)
		return Item{}, false
	}
	item := Item{Kind: ItemStruct, Name: p.cur.Literal, Attributes: attrs, Line: line, Column: col}
	p.nextToken()

	switch p.cur.Type {
	case TokenLBrace:
		p.nextToken()
		for p.cur.Type != TokenRBrace {
			if p.cur.Type == TokenEOF {
				p.errorf("unexpected end of input in struct %s", item.Name)
				return Item{}, false
			}
			member, ok := p.parseMember(item.Name)
			if !ok {
				return Item{}, false
			}
			item.Members = append(item.Members, member)
		}
		p.nextToken() // consume }
	case TokenLParen:
		item.Positional = true
		types, ok := p.parseParenList()
		if !ok {
			return Item{}, false
		}
		for _, typeText := range types {
			item.Members = append(item.Members, Member{Type: typeText})
		}
		if p.cur.Type == TokenSemicolon {
			p.nextToken()
		}
	default:
		p.errorf("expected struct body at %d:%d", p.cur.Line, p.cur.Column)
		return Item{}, false
	}

	return item, true
}

func (p *Parser) parseMember(structName string) (Member, bool) {
	for p.cur.Type == TokenPub {
		p.nextToken()
	}
	if p.cur.Type != TokenIdent {
		p.errorf("expected member name in struct %s at %d:%d", structName, p.cur.Line, p.cur.Column)
		return Member{}, false
	}
	member := Member{Name: p.cur.Literal}
	p.nextToken()

	if p.cur.Type != TokenColon {
		p.errorf("expected ':' after member %s.%s at %d:%d", structName, member.Name, p.cur.Line, p.cur.Column)
		return Member{}, false
	}
	p.nextToken()

	// The type expression is everything up to the next top-level comma or
	// the closing brace, kept as raw source text.
	typeStart := p.cur.Offset
	depth := 0
	for {
		if p.cur.Type == TokenEOF {
			p.errorf("unexpected end of input in struct %s", structName)
			return Member{}, false
		}
		if depth == 0 && (p.cur.Type == TokenComma || p.cur.Type == TokenRBrace) {
			break
		}
		switch p.cur.Type {
		case TokenLT, TokenLParen, TokenLBracket:
			depth++
		case TokenGT, TokenRParen, TokenRBracket:
			depth--
		}
		p.nextToken()
	}

	member.Type = strings.TrimSpace(p.src[typeStart:p.cur.Offset])
	if member.Type == "" {
		p.errorf("expected type for member %s.%s at %d:%d", structName, member.Name, p.cur.Line, p.cur.Column)
		return Member{}, false
	}

	if p.cur.Type == TokenComma {
		p.nextToken()
	}
	return member, true
}

func (p *Parser) parseEnum(attrs []Attribute, line, col int) (Item, bool) {
	p.nextToken() // consume enum
	if p.cur.Type != TokenIdent {
		p.errorf("expected enum name at %d:%d", p.cur.Line, p.cur.Column)
		return Item{}, false
	}
	item := Item{Kind: ItemEnum, Name: p.cur.Literal, Attributes: attrs, Line: line, Column: col}
	p.nextToken()

	if p.cur.Type != TokenLBrace {
		p.errorf("expected enum body at %d:%d", p.cur.Line, p.cur.Column)
		return Item{}, false
	}

	// variants are irrelevant here, skip the balanced body
	depth := 0
	for {
		if p.cur.Type == TokenEOF {
			p.errorf("unexpected end of input in enum %s", item.Name)
			return Item{}, false
		}
		if p.cur.Type == TokenLBrace {
			depth++
		}
		if p.cur.Type == TokenRBrace {
			depth--
			if depth == 0 {
				p.nextToken()
				break
			}
		}
		p.nextToken()
	}

	return item, true
}

func (p *Parser) parseAlias(attrs []Attribute, line, col int) (Item, bool) {
	p.nextToken() // consume type
	if p.cur.Type != TokenIdent {
		p.errorf("expected alias name at %d:%d", p.cur.Line, p.cur.Column)
		return Item{}, false
	}
	item := Item{Kind: ItemAlias, Name: p.cur.Literal, Attributes: attrs, Line: line, Column: col}

	for p.cur.Type != TokenSemicolon {
		if p.cur.Type == TokenEOF {
			p.errorf("unexpected end of input in type alias %s", item.Name)
			return Item{}, false
		}
		p.nextToken()
	}
	p.nextToken() // consume ;

	return item, true
}
