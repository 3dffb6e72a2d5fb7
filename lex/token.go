package lex

import (
	"fmt"

	"github.com/wrenlowe/grayling/token"
)

// Token is a single scanned lexeme: a kind drawn from the symbol registry,
// the byte range it occupies in its source buffer, and its source location.
// Begin and End are offsets into Source, not copies; Source must outlive any
// Token built from it. For string and raw-string literals the range
// excludes the surrounding delimiters.
type Token struct {
	File   string
	Kind   token.ID
	Source []byte
	Begin  int
	End    int
	Line   int
	Column int
}

// Lexeme returns the source text this token spans.
func (t Token) Lexeme() string {
	return string(t.Source[t.Begin:t.End])
}

func (t Token) String() string {
	return fmt.Sprintf("Kind:%s (In file %s, Line:%d Column:%d)", t.Kind, t.File, t.Line, t.Column)
}
