// File: lexer.go
// Title: Command Lexer
// Description: Splits a command line into words, quoted strings and '='
//              tokens, keeping position information for error reporting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial lexer implementation
// - 2026-10-16 v0.2.0: Reduced to the word/option grammar of calculator commands

package calc

import (
	"fmt"
	"strings"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIllegal
	TokenWord   // TRIG.SIN, 90, -1.5e3, 0x1F, deg
	TokenString // "quoted text" or 'quoted text'
	TokenEquals // =
)

// Token represents a lexical token with position information
type Token struct {
	Type     TokenType
	Value    string
	Position int // byte offset
	Column   int // 1-based
}

// String returns the name of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return "ILLEGAL"
	case TokenWord:
		return "WORD"
	case TokenString:
		return "STRING"
	case TokenEquals:
		return "EQUALS"
	default:
		return "UNKNOWN"
	}
}

func (t Token) String() string {
	if t.Type == TokenEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%s)", t.Type, t.Value)
}

// Lexer performs lexical analysis of a command line
type Lexer struct {
	input    string
	position int  // current position in input (points to current char)
	readPos  int  // current reading position (after current char)
	ch       byte // current char under examination
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()
	pos := l.position

	switch {
	case l.ch == 0:
		return Token{Type: TokenEOF, Position: pos, Column: pos + 1}
	case l.ch == '=':
		l.readChar()
		return Token{Type: TokenEquals, Value: "=", Position: pos, Column: pos + 1}
	case l.ch == '"' || l.ch == '\'':
		value, ok := l.readString(l.ch)
		if !ok {
			return Token{Type: TokenIllegal, Value: l.input[pos:], Position: pos, Column: pos + 1}
		}
		return Token{Type: TokenString, Value: value, Position: pos, Column: pos + 1}
	default:
		return Token{Type: TokenWord, Value: l.readWord(), Position: pos, Column: pos + 1}
	}
}

// Tokenize returns all tokens up to and including EOF
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		switch tok.Type {
		case TokenEOF:
			return tokens, nil
		case TokenIllegal:
			return tokens, fmt.Errorf("unterminated string at column %d", tok.Column)
		}
	}
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.position = l.readPos
	l.readPos++
}

// readWord reads up to white space, '=' or a quote
func (l *Lexer) readWord() string {
	start := l.position
	for l.ch != 0 && !isSpace(l.ch) && l.ch != '=' && l.ch != '"' && l.ch != '\'' {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readString reads a quoted string and resolves backslash escapes of the
// quote and of the backslash itself
func (l *Lexer) readString(quote byte) (string, bool) {
	var sb strings.Builder
	for {
		l.readChar()
		switch l.ch {
		case 0:
			return "", false
		case quote:
			l.readChar()
			return sb.String(), true
		case '\\':
			if next := l.peekChar(); next == quote || next == '\\' {
				l.readChar()
			}
		}
		sb.WriteByte(l.ch)
	}
}

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) skipWhitespace() {
	for isSpace(l.ch) {
		l.readChar()
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
