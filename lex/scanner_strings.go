package lex

// consumeSlash handles the three things a leading '/' can start: a line
// comment, a block comment, or the '/'/'/=' operator.
func (s *Scanner) consumeSlash(file string, line, col, begin int) (Token, error) {
	s.advance() // '/'
	switch s.cur() {
	case '/':
		for !s.atEnd() && s.cur() != '\n' {
			s.advance()
		}
		if !s.atEnd() {
			s.newline() // consume the terminating newline, per spec.md §4.2
		}
		return tok(file, s.kinds.comment, s.src, begin, s.pos, line, col), nil
	case '*':
		s.advance()
		for {
			if s.atEnd() {
				err := &Error{Kind: ErrUnterminatedBlockComment, File: file, Line: line, Column: col}
				return Token{}, err
			}
			if s.cur() == '*' && s.at(1) == '/' {
				s.advance()
				s.advance()
				return tok(file, s.kinds.comment, s.src, begin, s.pos, line, col), nil
			}
			if s.cur() == '\n' {
				s.newline()
			} else {
				s.advance()
			}
		}
	case '=':
		s.advance()
		id, _ := s.reg.LookupTerminal("/=")
		return tok(file, id, s.src, begin, s.pos, line, col), nil
	default:
		id, _ := s.reg.LookupTerminal("/")
		return tok(file, id, s.src, begin, s.pos, line, col), nil
	}
}

// consumeString scans a double-quoted string literal. A backslash escapes
// exactly the next byte; a bare newline inside the literal is an error. The
// resulting token's range excludes both quotes.
func (s *Scanner) consumeString(file string, line, col, begin int) (Token, error) {
	s.advance() // opening '"'
	for {
		if s.atEnd() {
			err := &Error{Kind: ErrUnterminatedString, File: file, Line: line, Column: col}
			return Token{}, err
		}
		switch s.cur() {
		case '\\':
			s.advance()
			if s.atEnd() {
				err := &Error{Kind: ErrUnterminatedString, File: file, Line: line, Column: col}
				return Token{}, err
			}
			if s.cur() == '\n' {
				s.newline()
			} else {
				s.advance()
			}
		case '\n':
			err := &Error{Kind: ErrUnterminatedString, File: file, Line: line, Column: col}
			s.skipToEndOfLine()
			return Token{}, err
		case '"':
			textBegin := begin + 1
			textEnd := s.pos
			s.advance() // closing '"'
			return tok(file, s.kinds.str, s.src, textBegin, textEnd, line, col), nil
		default:
			s.advance()
		}
	}
}

// consumeHashedRawString handles a raw string opened by one or more '#'
// characters; it requires the run of hashes to be immediately followed by a
// backtick, else the leading '#' is an invalid character (spec.md §9/SPEC_FULL §4).
func (s *Scanner) consumeHashedRawString(file string, line, col, begin int) (Token, error) {
	n := 0
	for s.at(n) == '#' {
		n++
	}
	if s.at(n) != '`' {
		err := &Error{Kind: ErrInvalidCharacter, File: file, Line: line, Column: col}
		s.skipToEndOfLine()
		return Token{}, err
	}
	for i := 0; i < n; i++ {
		s.advance()
	}
	return s.consumeRawString(file, line, col, begin, n)
}

// consumeRawString scans a raw string delimited by a backtick optionally
// preceded by hashCount '#' characters, closing at the first backtick that
// is immediately followed by hashCount '#' characters. No escape processing
// occurs; every byte, including backslash and newline, is literal.
func (s *Scanner) consumeRawString(file string, line, col, begin, hashCount int) (Token, error) {
	s.advance() // opening '`'
	textBegin := s.pos
	for {
		if s.atEnd() {
			err := &Error{Kind: ErrUnterminatedRawString, File: file, Line: line, Column: col}
			return Token{}, err
		}
		if s.cur() == '`' && s.hasClosingHashes(hashCount) {
			textEnd := s.pos
			s.advance() // closing '`'
			for i := 0; i < hashCount; i++ {
				s.advance()
			}
			return tok(file, s.kinds.rawStr, s.src, textBegin, textEnd, line, col), nil
		}
		if s.cur() == '\n' {
			s.newline()
		} else {
			s.advance()
		}
	}
}

func (s *Scanner) hasClosingHashes(n int) bool {
	for i := 0; i < n; i++ {
		if s.at(1+i) != '#' {
			return false
		}
	}
	return true
}

// consumeChar scans a character literal: exactly one byte, optionally
// preceded by a single backslash escape.
func (s *Scanner) consumeChar(file string, line, col, begin int) (Token, error) {
	s.advance() // opening '\''
	if s.cur() == '\'' {
		err := &Error{Kind: ErrBadCharLiteral, File: file, Line: line, Column: col}
		s.skipToEndOfLine()
		return Token{}, err
	}
	if s.atEnd() {
		err := &Error{Kind: ErrUnexpectedEOF, File: file, Line: line, Column: col}
		return Token{}, err
	}
	if s.cur() == '\\' {
		s.advance()
		if s.atEnd() {
			err := &Error{Kind: ErrUnexpectedEOF, File: file, Line: line, Column: col}
			return Token{}, err
		}
	}
	s.advance() // the one literal byte
	if s.atEnd() || s.cur() != '\'' {
		err := &Error{Kind: ErrBadCharLiteral, File: file, Line: line, Column: col}
		s.skipToEndOfLine()
		return Token{}, err
	}
	s.advance() // closing '\''
	return tok(file, s.kinds.intChar, s.src, begin, s.pos, line, col), nil
}
