// Package lexer implements the Lett lexical analyzer.
//
// The token model is deliberately small: identifiers, non-negative
// integer literals, and single-character symbols. Lexing is total:
// every non-whitespace character falls into one of the three kinds, so
// there is no error token and no failure path. Keywords such as "let"
// and "in" are emitted as ordinary identifier tokens; reserving them is
// the grammar's business, not the lexer's.
package lexer

import (
	"fmt"
	"math"
	"strconv"
)

// TokenType represents the type of a token
type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIdentifier
	TokenNumber
	TokenSymbol
)

// tokenNames provides string representations for token types
var tokenNames = map[TokenType]string{
	TokenEOF:        "EOF",
	TokenIdentifier: "IDENTIFIER",
	TokenNumber:     "NUMBER",
	TokenSymbol:     "SYMBOL",
}

// String returns a string representation of the token type
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(tt))
}

// Position represents a position in the source code
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset in source
}

// Span represents a range in the source code
type Span struct {
	Start Position
	End   Position
}

// Token represents a lexical token with position information.
// Number tokens carry the decimal value of their literal in Value
// (saturating at math.MaxInt64 for literals out of int64 range); for
// other kinds Value is zero and Literal is authoritative.
type Token struct {
	Type    TokenType
	Literal string
	Value   int64
	Span    Span
}

// String returns a string representation of the token
func (t Token) String() string {
	return fmt.Sprintf("{Type: %s, Literal: %q, Line: %d, Column: %d}",
		t.Type, t.Literal, t.Span.Start.Line, t.Span.Start.Column)
}

// Lexer represents the lexical analyzer
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int  // current line number
	column       int  // current column number
	offset       int  // current byte offset in input
}

// New creates a new lexer instance
func New(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++

	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
	l.offset = l.position
}

// currentPosition returns the position of the character under examination
func (l *Lexer) currentPosition() Position {
	return Position{Line: l.line, Column: l.column, Offset: l.offset}
}

// NextToken scans and returns the next token from the input.
// At end of input it returns a TokenEOF token; it never fails.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	start := l.currentPosition()

	switch {
	case l.ch == 0:
		return Token{Type: TokenEOF, Literal: "", Span: Span{Start: start, End: start}}
	case isLetter(l.ch):
		lit := l.readIdentifier()
		return Token{Type: TokenIdentifier, Literal: lit, Span: Span{Start: start, End: l.currentPosition()}}
	case isDigit(l.ch):
		lit, val := l.readNumber()
		return Token{Type: TokenNumber, Literal: lit, Value: val, Span: Span{Start: start, End: l.currentPosition()}}
	default:
		lit := string(l.ch)
		l.readChar()
		return Token{Type: TokenSymbol, Literal: lit, Span: Span{Start: start, End: l.currentPosition()}}
	}
}

// Tokenize drains the lexer and returns all tokens up to, but not
// including, EOF. This is the materialized sequence the parser layer
// consumes.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == TokenEOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readIdentifier reads the maximal run of letters and digits starting
// at the current letter
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads the maximal run of digits and its decimal value.
// Runs exceeding the int64 range saturate at math.MaxInt64 so Value
// stays non-negative; the literal keeps the full digit run.
func (l *Lexer) readNumber() (string, int64) {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	lit := l.input[start:l.position]
	val, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		// The run is all digits, so the only possible failure is range.
		val = math.MaxInt64
	}
	return lit, val
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
