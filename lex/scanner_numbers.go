package lex

// validExponentAhead reports whether the bytes starting offset bytes past
// the current position form a valid exponent body: an optional '-' followed
// by at least one digit.
func (s *Scanner) validExponentAhead(offset int) bool {
	if isDigit(s.at(offset)) {
		return true
	}
	return s.at(offset) == '-' && isDigit(s.at(offset+1))
}

// consumeExponent consumes an 'e'/'E' (or 'p'/'P') marker already known to
// be followed by a valid exponent body, i.e. validExponentAhead(1) is true.
func (s *Scanner) consumeExponent() {
	s.advance() // e/E or p/P
	if s.cur() == '-' {
		s.advance()
	}
	for !s.atEnd() && isDigit(s.cur()) {
		s.advance()
	}
}

func (s *Scanner) consumeDigits() {
	for !s.atEnd() && isDigit(s.cur()) {
		s.advance()
	}
}

func (s *Scanner) consumeHexDigits() {
	for !s.atEnd() && isHexDigit(s.cur()) {
		s.advance()
	}
}

// consumeNumber scans any of the numeric literal shapes in spec.md §4.2,
// starting at a position known to hold a digit.
func (s *Scanner) consumeNumber(file string, line, col, begin int) (Token, error) {
	if s.cur() == '0' {
		s.advance()
		if s.atEnd() {
			return tok(file, s.kinds.intDec, s.src, begin, s.pos, line, col), nil
		}
		switch {
		case s.cur() == 'b' || s.cur() == 'B':
			return s.consumeBinary(file, line, col, begin)
		case s.cur() == 'x' || s.cur() == 'X':
			return s.consumeHex(file, line, col, begin)
		case s.cur() == '.':
			return s.consumeZeroDotFloat(file, line, col, begin)
		case isDigit(s.cur()):
			return s.consumeOctalOrDecimal(file, line, col, begin)
		default:
			return tok(file, s.kinds.intDec, s.src, begin, s.pos, line, col), nil
		}
	}
	return s.consumeDecimal(file, line, col, begin)
}

func (s *Scanner) consumeBinary(file string, line, col, begin int) (Token, error) {
	if s.at(1) != '0' && s.at(1) != '1' {
		// not a valid binary literal body; emit the "0" already scanned and
		// leave the 'b'/'B' for the next token.
		return tok(file, s.kinds.intDec, s.src, begin, s.pos, line, col), nil
	}
	s.advance() // 'b'/'B'
	for !s.atEnd() && (s.cur() == '0' || s.cur() == '1') {
		s.advance()
	}
	return tok(file, s.kinds.intBin, s.src, begin, s.pos, line, col), nil
}

func (s *Scanner) consumeHex(file string, line, col, begin int) (Token, error) {
	if !isHexDigit(s.at(1)) {
		return tok(file, s.kinds.intDec, s.src, begin, s.pos, line, col), nil
	}
	s.advance() // 'x'/'X'
	s.consumeHexDigits()
	hexEnd := s.pos

	if s.atEnd() {
		return tok(file, s.kinds.intHex, s.src, begin, hexEnd, line, col), nil
	}
	if s.cur() == 'p' || s.cur() == 'P' {
		if !s.validExponentAhead(1) {
			return tok(file, s.kinds.intHex, s.src, begin, hexEnd, line, col), nil
		}
		s.consumeExponent()
		return tok(file, s.kinds.floatHex, s.src, begin, s.pos, line, col), nil
	}
	if s.cur() == '.' {
		s.advance()
		s.consumeHexDigits()
		if s.atEnd() || (s.cur() != 'p' && s.cur() != 'P') {
			err := &Error{Kind: ErrBadHexFloat, File: file, Line: line, Column: col}
			s.skipToEndOfLine()
			return Token{}, err
		}
		if !s.validExponentAhead(1) {
			err := &Error{Kind: ErrBadExponent, File: file, Line: line, Column: col}
			s.skipToEndOfLine()
			return Token{}, err
		}
		s.consumeExponent()
		return tok(file, s.kinds.floatHex, s.src, begin, s.pos, line, col), nil
	}
	return tok(file, s.kinds.intHex, s.src, begin, hexEnd, line, col), nil
}

func (s *Scanner) consumeZeroDotFloat(file string, line, col, begin int) (Token, error) {
	s.advance() // '.'
	s.consumeDigits()
	if !s.atEnd() && (s.cur() == 'e' || s.cur() == 'E') && s.validExponentAhead(1) {
		s.consumeExponent()
	}
	return tok(file, s.kinds.floatDec, s.src, begin, s.pos, line, col), nil
}

// consumeOctalOrDecimal handles "0" followed by one or more further digits:
// the digit run may be a valid octal integer, or may turn out to be a
// decimal float / an invalid octal literal once '.'/exponent/8-or-9 is seen.
func (s *Scanner) consumeOctalOrDecimal(file string, line, col, begin int) (Token, error) {
	hasNonOctalDigit := false
	for !s.atEnd() && isDigit(s.cur()) {
		if !isOctalDigit(s.cur()) {
			hasNonOctalDigit = true
		}
		s.advance()
	}

	if !s.atEnd() && s.cur() == '.' {
		s.advance()
		s.consumeDigits()
		if !s.atEnd() && (s.cur() == 'e' || s.cur() == 'E') && s.validExponentAhead(1) {
			s.consumeExponent()
		}
		return tok(file, s.kinds.floatDec, s.src, begin, s.pos, line, col), nil
	}

	if !s.atEnd() && (s.cur() == 'e' || s.cur() == 'E') {
		if s.validExponentAhead(1) {
			s.consumeExponent()
			return tok(file, s.kinds.floatDec, s.src, begin, s.pos, line, col), nil
		}
		if hasNonOctalDigit {
			err := &Error{Kind: ErrBadExponent, File: file, Line: line, Column: col}
			s.skipToEndOfLine()
			return Token{}, err
		}
		return tok(file, s.kinds.intOct, s.src, begin, s.pos, line, col), nil
	}

	if hasNonOctalDigit {
		err := &Error{Kind: ErrBadOctalDigit, File: file, Line: line, Column: col}
		s.skipToEndOfLine()
		return Token{}, err
	}
	return tok(file, s.kinds.intOct, s.src, begin, s.pos, line, col), nil
}

// consumeDecimal handles a literal beginning with a nonzero digit.
func (s *Scanner) consumeDecimal(file string, line, col, begin int) (Token, error) {
	s.consumeDigits()
	if !s.atEnd() && s.cur() == '.' {
		s.advance()
		s.consumeDigits()
		if !s.atEnd() && (s.cur() == 'e' || s.cur() == 'E') && s.validExponentAhead(1) {
			s.consumeExponent()
		}
		return tok(file, s.kinds.floatDec, s.src, begin, s.pos, line, col), nil
	}
	if !s.atEnd() && (s.cur() == 'e' || s.cur() == 'E') && s.validExponentAhead(1) {
		s.consumeExponent()
		return tok(file, s.kinds.floatDec, s.src, begin, s.pos, line, col), nil
	}
	return tok(file, s.kinds.intDec, s.src, begin, s.pos, line, col), nil
}

// consumeDot handles a leading '.': either the bare DOT operator or the
// start of a "digits-optional" float literal.
func (s *Scanner) consumeDot(file string, line, col, begin int) (Token, error) {
	s.advance() // '.'
	if !isDigit(s.cur()) {
		id, _ := s.reg.LookupTerminal(".")
		return tok(file, id, s.src, begin, s.pos, line, col), nil
	}
	s.consumeDigits()
	if !s.atEnd() && (s.cur() == 'e' || s.cur() == 'E') && s.validExponentAhead(1) {
		s.consumeExponent()
	}
	return tok(file, s.kinds.floatDec, s.src, begin, s.pos, line, col), nil
}
