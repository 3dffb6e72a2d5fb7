// Package lr builds canonical LR(1) item sets for a grammar.Grammar and
// assembles them into ACTION/GOTO tables, optionally merged down to LALR(1)
// by same-core state merging.
package lr

import (
	"fmt"
	"sort"

	"github.com/wrenlowe/grayling/grammar"
	"github.com/wrenlowe/grayling/token"
)

// Item is one LR(1) item: a production, a dot position, and a single
// lookahead terminal.
type Item struct {
	Production int
	Dot        int
	Lookahead  token.ID
}

func (it Item) String() string {
	return fmt.Sprintf("[p%d, dot=%d, la=%s]", it.Production, it.Dot, it.Lookahead)
}

// reducible reports whether it's dot has reached the end of its RHS.
func (it Item) reducible(g *grammar.Grammar) bool {
	return it.Dot == len(g.Production(it.Production).RHS)
}

// symbolAfterDot returns the RHS symbol immediately following the dot, or
// false if the item is reducible.
func (it Item) symbolAfterDot(g *grammar.Grammar) (token.ID, bool) {
	rhs := g.Production(it.Production).RHS
	if it.Dot >= len(rhs) {
		return token.ID{}, false
	}
	return rhs[it.Dot], true
}

// advance returns the item with its dot moved one position to the right.
func (it Item) advance() Item {
	return Item{Production: it.Production, Dot: it.Dot + 1, Lookahead: it.Lookahead}
}

// state is one node of the canonical collection: a kernel (the first
// kernelSize items) followed by its closure, plus the transition function
// out of this state on every grammar symbol.
type state struct {
	items      []Item
	kernelSize int
	trans      map[token.ID]int
}

func (s *state) kernel() []Item  { return s.items[:s.kernelSize] }
func (s *state) closure() []Item { return s.items[s.kernelSize:] }

// itemKey is a sortable, comparable projection of an Item used to build
// canonical (order-insensitive) set keys for kernels.
type itemKey struct {
	production int
	dot        int
	laKind     token.Kind
	laIndex    int
}

func keyOf(it Item) itemKey {
	return itemKey{production: it.Production, dot: it.Dot, laKind: it.Lookahead.Kind, laIndex: it.Lookahead.Index}
}

// kernelSetKey returns a canonical, order-insensitive string key for a
// kernel, used to detect when two states have equal kernels (spec.md §3
// "State equality for canonical LR(1) compares kernels as sets"). It does
// not remove duplicate items; addState deduplicates a kernel before keying
// it.
func kernelSetKey(items []Item) string {
	keys := make([]itemKey, len(items))
	for i, it := range items {
		keys[i] = keyOf(it)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].production != keys[j].production {
			return keys[i].production < keys[j].production
		}
		if keys[i].dot != keys[j].dot {
			return keys[i].dot < keys[j].dot
		}
		if keys[i].laKind != keys[j].laKind {
			return keys[i].laKind < keys[j].laKind
		}
		return keys[i].laIndex < keys[j].laIndex
	})
	return fmt.Sprintf("%v", keys)
}

// sameCoreKey returns a canonical key over (production, dot) pairs only,
// ignoring lookahead, used for LALR same-core merge candidacy.
func sameCoreKey(items []Item) string {
	type core struct{ production, dot int }
	cores := make([]core, len(items))
	for i, it := range items {
		cores[i] = core{it.Production, it.Dot}
	}
	sort.Slice(cores, func(i, j int) bool {
		if cores[i].production != cores[j].production {
			return cores[i].production < cores[j].production
		}
		return cores[i].dot < cores[j].dot
	})
	return fmt.Sprintf("%v", cores)
}
