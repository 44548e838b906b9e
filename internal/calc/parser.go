// File: parser.go
// Title: Command Parser
// Description: Turns a token stream into a Command: OBJECT.METHOD followed by
//              positional arguments and key=value options.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser implementation
// - 2026-10-16 v0.2.0: Positional arguments, options and case folding

package calc

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	mdwerror "github.com/msto63/numcore/foundation/core/error"
)

// MaxInputLength bounds the length of a single command line
const MaxInputLength = 4096

// Command is a parsed command line
type Command struct {
	Object  string            // upper case
	Method  string            // upper case
	Args    []string          // positional arguments in order
	Options map[string]string // lower-case keys
	Raw     string
}

// Name returns OBJECT.METHOD
func (c *Command) Name() string {
	return c.Object + "." + c.Method
}

// Option returns the option value for key and whether it was given
func (c *Command) Option(key string) (string, bool) {
	v, ok := c.Options[strings.ToLower(key)]
	return v, ok
}

// ParseError represents a parsing error with position information
type ParseError struct {
	Message string
	Column  int
	Token   Token
}

func (pe *ParseError) Error() string {
	if pe.Token.Type == TokenEOF {
		return fmt.Sprintf("parse error at column %d: %s", pe.Column, pe.Message)
	}
	return fmt.Sprintf("parse error at column %d: %s (near '%s')", pe.Column, pe.Message, pe.Token.Value)
}

// Parser implements the command grammar
//
//	command = WORD(object "." method) { argument | option }
//	option  = WORD "=" ( WORD | STRING )
type Parser struct {
	lexer   *Lexer
	current Token
	peek    Token
}

// Parse parses a single command line
func Parse(input string) (*Command, error) {
	if len(input) > MaxInputLength {
		return nil, mdwerror.New(fmt.Sprintf("input exceeds maximum length: %d > %d", len(input), MaxInputLength)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("calc.Parse")
	}

	p := &Parser{lexer: NewLexer(input)}
	p.advance()
	p.advance()

	cmd, err := p.parseCommand()
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to parse command").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("calc.Parse").
			WithDetail("input", input)
	}
	cmd.Raw = input
	return cmd, nil
}

func (p *Parser) advance() {
	p.current = p.peek
	p.peek = p.lexer.NextToken()
}

func (p *Parser) parseCommand() (*Command, error) {
	if p.current.Type != TokenWord {
		return nil, p.parseError("expected OBJECT.METHOD")
	}

	object, method, ok := strings.Cut(p.current.Value, ".")
	if !ok {
		return nil, p.parseError("expected '.' after object name")
	}
	if !IsValidIdentifier(object) {
		return nil, p.parseError("invalid object name")
	}
	if !IsValidIdentifier(method) {
		return nil, p.parseError("invalid method name")
	}
	p.advance()

	cmd := &Command{
		Object:  strings.ToUpper(object),
		Method:  strings.ToUpper(method),
		Options: make(map[string]string),
	}

	for p.current.Type != TokenEOF {
		switch {
		case p.current.Type == TokenIllegal:
			return nil, p.parseError("unterminated string")
		case p.current.Type == TokenEquals:
			return nil, p.parseError("option without a name")
		case p.current.Type == TokenWord && p.peek.Type == TokenEquals:
			if err := p.parseOption(cmd); err != nil {
				return nil, err
			}
		default:
			cmd.Args = append(cmd.Args, p.current.Value)
			p.advance()
		}
	}
	return cmd, nil
}

func (p *Parser) parseOption(cmd *Command) error {
	key := strings.ToLower(p.current.Value)
	if !IsValidIdentifier(key) {
		return p.parseError("invalid option name")
	}
	if _, dup := cmd.Options[key]; dup {
		return p.parseError("duplicate option")
	}
	p.advance() // name
	p.advance() // '='

	if p.current.Type != TokenWord && p.current.Type != TokenString {
		return p.parseError(fmt.Sprintf("expected value for option %q", key))
	}
	cmd.Options[key] = p.current.Value
	p.advance()
	return nil
}

func (p *Parser) parseError(message string) *ParseError {
	return &ParseError{Message: message, Column: p.current.Column, Token: p.current}
}

// IsValidIdentifier reports whether s is a letter followed by letters,
// digits or underscores
func IsValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsLetter(r) {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
