package lr

import (
	"github.com/wrenlowe/grayling/grammar"
	"github.com/wrenlowe/grayling/internal/util"
	"github.com/wrenlowe/grayling/token"
)

// First computes the set of terminals that can begin a derivation of sym,
// per spec.md §4.4: terminals contribute themselves; a nonterminal
// contributes the First of the first RHS symbol of each of its
// productions, skipping any production whose first RHS symbol is the
// nonterminal itself (direct left recursion contributes nothing). This is
// a deliberate approximation: it does not compute a full nullable set, so
// indirect or multi-step nullability is not propagated (see DESIGN.md).
func First(g *grammar.Grammar, sym token.ID) util.KeySet[token.ID] {
	acc := util.NewKeySet[token.ID]()
	firstInto(g, sym, acc, util.NewKeySet[token.ID]())
	return acc
}

func firstInto(g *grammar.Grammar, sym token.ID, acc, visiting util.KeySet[token.ID]) {
	if sym.IsTerminal() {
		acc.Add(sym)
		return
	}
	if visiting.Has(sym) {
		return
	}
	visiting.Add(sym)
	for _, handle := range g.ProductionsFor(sym) {
		rhs := g.Production(handle).RHS
		if len(rhs) == 0 {
			continue
		}
		first := rhs[0]
		if first == sym {
			continue
		}
		firstInto(g, first, acc, visiting)
	}
}
