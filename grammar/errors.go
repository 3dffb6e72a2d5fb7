package grammar

import "fmt"

// Sentinel grammar-reader and validation errors, compared with errors.Is.
var (
	ErrUndefinedTerminal          = fmt.Errorf("undefined terminal")
	ErrLhsMustBeNonterminal       = fmt.Errorf("left-hand side of a rule must be a nonterminal")
	ErrUnexpectedEofInRule        = fmt.Errorf("unexpected end of file while reading a rule")
	ErrGroupOverflow              = fmt.Errorf("identifier group exceeds the 7-symbol bound")
	ErrNonterminalWithoutProduction = fmt.Errorf("nonterminal has no production")
	ErrEmptyRhsUnsupported        = fmt.Errorf("production has an empty right-hand side")
)

// Error is a grammar-reader or validation error tied to a position in a
// grammar file, rendered the same way spec.md §6 requires for lexical
// errors so callers can report both uniformly.
type Error struct {
	Kind   error
	File   string
	Line   int
	Column int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s In Line:%d, Column:%d in file %s", e.Kind, e.Line, e.Column, e.File)
}

// Unwrap exposes the sentinel Err* kind for errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Kind }
