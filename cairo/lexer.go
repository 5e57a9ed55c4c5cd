// Copyright (c) 2025 attestkit
// SPDX-License-Identifier: Apache-2.0
// This file is part of the cairo-abigen library.

package cairo

// Lexer tokenizes the subset of Cairo item syntax the adapters need:
// attributes, struct/enum/alias headers, and struct member lists.
type Lexer struct {
	input        string
	position     int  // current char index
	readPosition int  // next char index
	ch           byte // current char

	line   int // current line number (1-indexed)
	column int // current column number (1-indexed)
}

func NewLexer(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

// readChar advances the lexer's position and updates the current character.
// It handles EOF and tracks line/column numbers.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // EOF
	} else {
		l.ch = l.input[l.readPosition]
	}

	l.position = l.readPosition
	l.readPosition++

	if l.ch == '\n' {
		l.line++
		l.column = 1
	} else if l.ch != 0 {
		l.column++
	}
}

// peekChar returns the next character without consuming it.
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	startLine := l.line
	startCol := l.column
	startOffset := l.position

	switch l.ch {
	case '/':
		if l.peekChar() == '/' {
			l.readLineComment()
			return l.NextToken()
		}
		tok := l.newToken(TokenIllegal, string(l.ch), startLine, startCol, startOffset)
		l.readChar()
		return tok
	case '#':
		return l.charToken(TokenHash, startLine, startCol, startOffset)
	case '[':
		return l.charToken(TokenLBracket, startLine, startCol, startOffset)
	case ']':
		return l.charToken(TokenRBracket, startLine, startCol, startOffset)
	case '(':
		return l.charToken(TokenLParen, startLine, startCol, startOffset)
	case ')':
		return l.charToken(TokenRParen, startLine, startCol, startOffset)
	case '{':
		return l.charToken(TokenLBrace, startLine, startCol, startOffset)
	case '}':
		return l.charToken(TokenRBrace, startLine, startCol, startOffset)
	case '<':
		return l.charToken(TokenLT, startLine, startCol, startOffset)
	case '>':
		return l.charToken(TokenGT, startLine, startCol, startOffset)
	case ':':
		return l.charToken(TokenColon, startLine, startCol, startOffset)
	case ',':
		return l.charToken(TokenComma, startLine, startCol, startOffset)
	case ';':
		return l.charToken(TokenSemicolon, startLine, startCol, startOffset)
	case '=':
		return l.charToken(TokenAssign, startLine, startCol, startOffset)
	case '"':
		return l.readString(startLine, startCol, startOffset)
	case 0:
		return Token{Type: TokenEOF, Line: startLine, Column: startCol, Offset: startOffset}
	default:
		if isLetter(l.ch) {
			literal := l.readIdentifier()
			return Token{Type: LookupIdent(literal), Literal: literal, Line: startLine, Column: startCol, Offset: startOffset}
		}
		if isDigit(l.ch) {
			literal := l.readNumber()
			return Token{Type: TokenInt, Literal: literal, Line: startLine, Column: startCol, Offset: startOffset}
		}
		tok := l.newToken(TokenIllegal, string(l.ch), startLine, startCol, startOffset)
		l.readChar()
		return tok
	}
}

func (l *Lexer) newToken(t TokenType, literal string, line, col, offset int) Token {
	return Token{Type: t, Literal: literal, Line: line, Column: col, Offset: offset}
}

func (l *Lexer) charToken(t TokenType, line, col, offset int) Token {
	tok := l.newToken(t, string(l.ch), line, col, offset)
	l.readChar()
	return tok
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) readLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

func (l *Lexer) readString(line, col, offset int) Token {
	// consume opening quote
	l.readChar()
	start := l.position
	for l.ch != '"' && l.ch != 0 {
		if l.ch == '\\' {
			l.readChar()
		}
		l.readChar()
	}
	if l.ch == 0 {
		return Token{Type: TokenIllegal, Literal: "unterminated string", Line: line, Column: col, Offset: offset}
	}
	literal := l.input[start:l.position]
	// consume closing quote
	l.readChar()
	return Token{Type: TokenString, Literal: literal, Line: line, Column: col, Offset: offset}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
