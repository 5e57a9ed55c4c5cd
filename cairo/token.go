// Copyright (c) 2025 attestkit
// SPDX-License-Identifier: Apache-2.0
// This file is part of the cairo-abigen library.

package cairo

type TokenType string

const (
	// Single character tokens
	TokenHash      TokenType = "HASH"      // #
	TokenLBracket  TokenType = "LBRACKET"  // [
	TokenRBracket  TokenType = "RBRACKET"  // ]
	TokenLParen    TokenType = "LPAREN"    // (
	TokenRParen    TokenType = "RPAREN"    // )
	TokenLBrace    TokenType = "LBRACE"    // {
	TokenRBrace    TokenType = "RBRACE"    // }
	TokenLT        TokenType = "LT"        // <
	TokenGT        TokenType = "GT"        // >
	TokenColon     TokenType = "COLON"     // :
	TokenComma     TokenType = "COMMA"     // ,
	TokenSemicolon TokenType = "SEMICOLON" // ;
	TokenAssign    TokenType = "ASSIGN"    // =

	// Keywords
	TokenStruct TokenType = "STRUCT" // struct
	TokenEnum   TokenType = "ENUM"   // enum
	TokenType_  TokenType = "TYPE"   // type (alias definitions)
	TokenPub    TokenType = "PUB"    // pub

	// Literals & identifiers
	TokenIdent  TokenType = "IDENT"
	TokenInt    TokenType = "INT"
	TokenString TokenType = "STRING"

	// Special
	TokenEOF     TokenType = "EOF"
	TokenIllegal TokenType = "ILLEGAL"
)

var keywords = map[string]TokenType{
	"struct": TokenStruct,
	"enum":   TokenEnum,
	"type":   TokenType_,
	"pub":    TokenPub,
}

// Token is one lexical token of a Cairo source file. Offset is the byte
// offset of the token's first character in the input, used by the parser to
// slice raw type expression text out of the source.
type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
	Offset  int
}

// LookupIdent returns the keyword token type for reserved words and
// TokenIdent for everything else.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return TokenIdent
}
