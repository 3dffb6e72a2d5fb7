package lex

// consumeIdentifier scans [A-Za-z_][A-Za-z0-9_]* starting at a position
// known to hold an identifier-start byte, then resolves it against the
// keyword table via the registry. Unicode identifiers are out of scope
// (spec.md Non-goals).
func (s *Scanner) consumeIdentifier(file string, line, col, begin int) (Token, error) {
	s.advance()
	for !s.atEnd() && isIdentPart(s.cur()) {
		s.advance()
	}
	text := string(s.src[begin:s.pos])
	if id, err := s.reg.LookupTerminal(text); err == nil && id.Index > s.kinds.ident.Index {
		return tok(file, id, s.src, begin, s.pos, line, col), nil
	}
	return tok(file, s.kinds.ident, s.src, begin, s.pos, line, col), nil
}

// operatorsByLeadByte lists, per leading byte, every operator spelling that
// starts with that byte, each spelling ahead of any shorter spelling that is
// a prefix of it, so the first match is the longest. The single-character
// spelling, where one exists, comes last in its list; '(', ')', '{', '}',
// ',' and ';' are resolved directly in consumeOperator.
var operatorsByLeadByte = map[byte][]string{
	'[': {"[[", "["},
	']': {"]]", "]"},
	':': {"::", ":"},
	'+': {"++", "+=", "+"},
	'-': {"--", "-=", "->", "-"},
	'*': {"*=", "*"},
	'%': {"%=", "%"},
	'&': {"&&", "&=", "&"},
	'|': {"||", "|=", "|"},
	'^': {"^=", "^"},
	'<': {"<<=", "<<", "<=>", "<=", "<"},
	'>': {">>=", ">>", ">=", ">"},
	'=': {"==", "="},
	'!': {"!="},
}

// consumeOperator scans one of the fixed punctuation operators, preferring
// the longest spelling that matches at the current position (spec.md §4.2).
// '/' and '.' are handled by their own dedicated dispatch and never reach
// here; a byte that starts no known operator is ErrInvalidCharacter.
func (s *Scanner) consumeOperator(file string, line, col, begin int) (Token, error) {
	lead := s.cur()

	switch lead {
	case '(', ')', '{', '}', ',', ';':
		s.advance()
		id, _ := s.reg.LookupTerminal(string(lead))
		return tok(file, id, s.src, begin, s.pos, line, col), nil
	}

	candidates, ok := operatorsByLeadByte[lead]
	if !ok {
		err := &Error{Kind: ErrInvalidCharacter, File: file, Line: line, Column: col}
		s.skipToEndOfLine()
		return Token{}, err
	}
	for _, text := range candidates {
		if s.matchesAt(text) {
			for range text {
				s.advance()
			}
			id, _ := s.reg.LookupTerminal(text)
			return tok(file, id, s.src, begin, s.pos, line, col), nil
		}
	}
	err := &Error{Kind: ErrInvalidCharacter, File: file, Line: line, Column: col}
	s.skipToEndOfLine()
	return Token{}, err
}

func (s *Scanner) matchesAt(text string) bool {
	for i := 0; i < len(text); i++ {
		if s.at(i) != text[i] {
			return false
		}
	}
	return true
}
