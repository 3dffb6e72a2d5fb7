// Package token defines the symbol universe shared by the scanner, the
// grammar reader, and the table builder: a tagged identifier type and the
// registry that maps names to identifiers.
package token

import "fmt"

// Kind distinguishes a terminal identifier from a nonterminal one.
type Kind uint8

const (
	Terminal Kind = iota
	Nonterminal
)

func (k Kind) String() string {
	if k == Nonterminal {
		return "nonterminal"
	}
	return "terminal"
}

// ID is an identifier into a Registry. Two IDs are equal iff they refer to
// the same registered symbol; the zero value of ID is the terminal EOF,
// which doubles as the epsilon marker used by FIRST-set computation.
type ID struct {
	Kind  Kind
	Index int
}

// EOF is the reserved terminal identifier for end-of-file. It is also used
// as the epsilon marker inside FIRST-set computations.
var EOF = ID{Kind: Terminal, Index: 0}

// IsTerminal returns whether id identifies a terminal symbol.
func (id ID) IsTerminal() bool { return id.Kind == Terminal }

// IsNonterminal returns whether id identifies a nonterminal symbol.
func (id ID) IsNonterminal() bool { return id.Kind == Nonterminal }

func (id ID) String() string {
	return fmt.Sprintf("%s#%d", id.Kind, id.Index)
}
