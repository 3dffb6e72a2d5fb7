// Package grammar reads a grammar-description file (built on the lex
// scanner) into an append-only production table, and validates the result.
package grammar

import (
	"github.com/wrenlowe/grayling/token"
)

// Production is a rewrite rule LHS → RHS. Once inserted into a Grammar, a
// Production never moves or changes; its index is its stable handle, used
// by item sets and REDUCE actions (spec.md §9 recommends integer indices
// over the original's pointer-into-multimap identity).
type Production struct {
	LHS token.ID
	RHS []token.ID
}

// Grammar is the append-only multimap of productions discovered while
// reading a grammar file, partitioned by LHS for closure construction.
type Grammar struct {
	reg         *token.Registry
	productions []Production
	byLHS       map[token.ID][]int
}

// New creates an empty Grammar bound to reg. reg is consulted (not
// mutated further by Grammar itself) for terminal/nonterminal identity.
func New(reg *token.Registry) *Grammar {
	return &Grammar{
		reg:   reg,
		byLHS: make(map[token.ID][]int),
	}
}

// AddProduction appends a new production and returns its stable handle.
func (g *Grammar) AddProduction(lhs token.ID, rhs []token.ID) int {
	handle := len(g.productions)
	rhsCopy := make([]token.ID, len(rhs))
	copy(rhsCopy, rhs)
	g.productions = append(g.productions, Production{LHS: lhs, RHS: rhsCopy})
	g.byLHS[lhs] = append(g.byLHS[lhs], handle)
	return handle
}

// Production returns the production registered under handle.
func (g *Grammar) Production(handle int) Production {
	return g.productions[handle]
}

// NumProductions returns the number of productions registered so far.
func (g *Grammar) NumProductions() int {
	return len(g.productions)
}

// ProductionsFor returns the handles of every production whose LHS is lhs,
// in insertion order.
func (g *Grammar) ProductionsFor(lhs token.ID) []int {
	return g.byLHS[lhs]
}

// StartSymbol returns the LHS of the first-registered production. It
// panics if no production has been registered; callers must not ask for a
// start symbol before reading a grammar.
func (g *Grammar) StartSymbol() token.ID {
	if len(g.productions) == 0 {
		panic("grammar: StartSymbol called on an empty grammar")
	}
	return g.productions[0].LHS
}

// StartProduction returns the handle of the first-registered production,
// whose LHS is the start symbol.
func (g *Grammar) StartProduction() int {
	if len(g.productions) == 0 {
		panic("grammar: StartProduction called on an empty grammar")
	}
	return 0
}

// Validate checks the final-validation invariants from spec.md §4.3: every
// registered nonterminal must have at least one production, and no
// production may have an empty RHS. It reports the first violation found,
// in nonterminal-registration order, then production order.
func (g *Grammar) Validate() error {
	for _, nt := range g.reg.Nonterminals() {
		if len(g.byLHS[nt]) == 0 {
			return &Error{Kind: ErrNonterminalWithoutProduction}
		}
	}
	for _, p := range g.productions {
		if len(p.RHS) == 0 {
			return &Error{Kind: ErrEmptyRhsUnsupported}
		}
	}
	return nil
}
