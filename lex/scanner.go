package lex

import (
	"github.com/wrenlowe/grayling/token"
)

// Scanner is a longest-match tokenizer over an in-memory byte buffer. A
// Scanner borrows its buffer for its entire lifetime; Tokens it produces
// reference ranges in that buffer and must not outlive it.
type Scanner struct {
	reg      *token.Registry
	filename string
	src      []byte
	pos      int
	line     int
	column   int

	kinds kindCache
}

// kindCache holds the builtin terminal ids a Scanner needs on every call, so
// it need not re-resolve them from the registry by name each time.
type kindCache struct {
	eof, comment                                           token.ID
	intChar, intBin, intOct, intDec, intHex                token.ID
	floatDec, floatHex, str, rawStr, ident                  token.ID
}

// New creates a Scanner over src, identified as filename in diagnostics and
// in produced Tokens. reg must already have the built-in terminals
// registered (as NewRegistry does).
func New(reg *token.Registry, filename string, src []byte) *Scanner {
	s := &Scanner{reg: reg, filename: filename, src: src}
	s.kinds = kindCache{
		eof:      mustLookup(reg, token.NameEOF),
		comment:  mustLookup(reg, token.NameComment),
		intChar:  mustLookup(reg, token.NameIntChar),
		intBin:   mustLookup(reg, token.NameIntBin),
		intOct:   mustLookup(reg, token.NameIntOct),
		intDec:   mustLookup(reg, token.NameIntDec),
		intHex:   mustLookup(reg, token.NameIntHex),
		floatDec: mustLookup(reg, token.NameFloatDec),
		floatHex: mustLookup(reg, token.NameFloatHex),
		str:      mustLookup(reg, token.NameString),
		rawStr:   mustLookup(reg, token.NameRawString),
		ident:    mustLookup(reg, token.NameIdentifier),
	}
	return s
}

func mustLookup(reg *token.Registry, name string) token.ID {
	id, err := reg.LookupTerminal(name)
	if err != nil {
		panic(err)
	}
	return id
}

// Filename returns the name this Scanner reports in tokens and errors.
func (s *Scanner) Filename() string { return s.filename }

func (s *Scanner) atEnd() bool { return s.pos >= len(s.src) }

func (s *Scanner) at(offset int) byte {
	i := s.pos + offset
	if i >= len(s.src) {
		return 0
	}
	return s.src[i]
}

func (s *Scanner) cur() byte { return s.at(0) }

// advance consumes one byte (which must not be '\n'; use newline for that)
// and updates the column counter.
func (s *Scanner) advance() {
	s.pos++
	s.column++
}

func (s *Scanner) newline() {
	s.pos++
	s.line++
	s.column = 0
}

// skipToEndOfLine implements the scanner's error-recovery behavior: after
// raising an error, advance to the end of the current line so that the next
// NextToken call can continue scanning after the offending line.
func (s *Scanner) skipToEndOfLine() {
	for !s.atEnd() && s.cur() != '\n' {
		s.advance()
	}
}

// clone returns an independent copy of the Scanner's cursor state, sharing
// the same underlying buffer and registry. It backs PeekToken.
func (s *Scanner) clone() *Scanner {
	cp := *s
	return &cp
}

// PeekToken returns the next token without advancing the Scanner: it is
// equivalent to cloning the scanner, calling NextToken on the clone, and
// discarding the clone.
func (s *Scanner) PeekToken() (Token, error) {
	return s.clone().NextToken()
}

// NextToken scans and returns the next token in the buffer, or a lexical
// *Error if the input cannot be tokenized at the current position.
func (s *Scanner) NextToken() (Token, error) {
	for !s.atEnd() && isInlineSpace(s.cur()) {
		s.advance()
	}
	if s.atEnd() {
		return s.emitEOF(), nil
	}
	if s.cur() == '\n' {
		s.newline()
		return s.NextToken()
	}
	if s.cur() == '\\' {
		return s.consumeLineContinuation()
	}

	file := s.filename
	line, col := s.line, s.column
	begin := s.pos

	switch {
	case s.cur() == '/':
		return s.consumeSlash(file, line, col, begin)
	case s.cur() == '"':
		return s.consumeString(file, line, col, begin)
	case s.cur() == '`':
		return s.consumeRawString(file, line, col, begin, 0)
	case s.cur() == '#':
		return s.consumeHashedRawString(file, line, col, begin)
	case s.cur() == '\'':
		return s.consumeChar(file, line, col, begin)
	case isDigit(s.cur()):
		return s.consumeNumber(file, line, col, begin)
	case s.cur() == '.':
		return s.consumeDot(file, line, col, begin)
	case isIdentStart(s.cur()):
		return s.consumeIdentifier(file, line, col, begin)
	default:
		return s.consumeOperator(file, line, col, begin)
	}
}

func (s *Scanner) emitEOF() Token {
	return Token{File: s.filename, Kind: s.kinds.eof, Source: s.src, Begin: s.pos, End: s.pos, Line: s.line, Column: s.column}
}

func (s *Scanner) consumeLineContinuation() (Token, error) {
	line, col := s.line, s.column
	s.advance() // backslash
	if s.cur() == '\r' {
		s.advance()
	}
	if s.cur() != '\n' {
		err := &Error{Kind: ErrInvalidCharacter, File: s.filename, Line: line, Column: col}
		s.skipToEndOfLine()
		return Token{}, err
	}
	s.newline()
	return s.NextToken()
}

func tok(file string, kind token.ID, src []byte, begin, end, line, col int) Token {
	return Token{File: file, Kind: kind, Source: src, Begin: begin, End: end, Line: line, Column: col}
}
