package lr

import (
	"sort"

	"github.com/wrenlowe/grayling/grammar"
	"github.com/wrenlowe/grayling/internal/util"
	"github.com/wrenlowe/grayling/token"
)

// collection is the canonical LR(1) item-set collection under construction.
type collection struct {
	g     *grammar.Grammar
	reg   *token.Registry
	states []*state
	index map[string]int
}

// BuildCanonical constructs the canonical LR(1) collection for g and
// assembles it into an unmerged ACTION/GOTO table, per spec.md §4.4's
// "Canonical LR(1) construction" and "Initial ACTION/GOTO assembly". g must
// already have passed Validate.
func BuildCanonical(g *grammar.Grammar, reg *token.Registry) (*Table, error) {
	coll := &collection{g: g, reg: reg, index: make(map[string]int)}

	startItem := Item{Production: g.StartProduction(), Dot: 0, Lookahead: token.EOF}
	coll.addState([]Item{startItem})

	for i := 0; i < len(coll.states); i++ {
		coll.processState(i)
	}

	return coll.assemble()
}

// addState returns the index of the state with the given kernel, creating
// it (closure included) if no existing state has an equal kernel.
func (c *collection) addState(kernel []Item) int {
	kernel = dedupeItems(kernel)
	key := kernelSetKey(kernel)
	if idx, ok := c.index[key]; ok {
		return idx
	}
	items := closureOf(c.g, kernel)
	st := &state{items: items, kernelSize: len(kernel), trans: make(map[token.ID]int)}
	idx := len(c.states)
	c.states = append(c.states, st)
	c.index[key] = idx
	return idx
}

func dedupeItems(items []Item) []Item {
	seen := make(map[itemKey]bool, len(items))
	out := make([]Item, 0, len(items))
	for _, it := range items {
		k := keyOf(it)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, it)
	}
	return out
}

// closureOf extends kernel with every item implied by spec.md §4.4's
// closure rule, using the scanner-style linear de-duplication the spec
// calls for (here backed by a map for efficiency; the observable result is
// the same set of items).
func closureOf(g *grammar.Grammar, kernel []Item) []Item {
	items := append([]Item{}, kernel...)
	seen := make(map[itemKey]bool, len(items))
	for _, it := range items {
		seen[keyOf(it)] = true
	}

	for i := 0; i < len(items); i++ {
		it := items[i]
		sym, ok := it.symbolAfterDot(g)
		if !ok || sym.IsTerminal() {
			continue
		}

		rhs := g.Production(it.Production).RHS
		rest := rhs[it.Dot+1:]

		var lookaheads util.KeySet[token.ID]
		if len(rest) == 0 {
			lookaheads = util.NewKeySet[token.ID]()
			lookaheads.Add(it.Lookahead)
		} else {
			lookaheads = First(g, rest[0])
			if lookaheads.Has(token.EOF) {
				lookaheads.Add(it.Lookahead)
			}
		}

		for _, handle := range g.ProductionsFor(sym) {
			for _, la := range lookaheads.Elements() {
				newItem := Item{Production: handle, Dot: 0, Lookahead: la}
				k := keyOf(newItem)
				if seen[k] {
					continue
				}
				seen[k] = true
				items = append(items, newItem)
			}
		}
	}
	return items
}

// processState computes the goto partition of state i and records every
// resulting transition, creating successor states as needed.
func (c *collection) processState(i int) {
	st := c.states[i]
	bySymbol := make(map[token.ID][]Item)
	for _, it := range st.items {
		sym, ok := it.symbolAfterDot(c.g)
		if !ok {
			continue
		}
		bySymbol[sym] = append(bySymbol[sym], it.advance())
	}

	for _, sym := range sortedSymbols(bySymbol) {
		target := c.addState(bySymbol[sym])
		// addState may have appended to c.states; st points at the state
		// itself rather than into the slice, so it stays valid.
		st.trans[sym] = target
	}
}

func sortedSymbols(m map[token.ID][]Item) []token.ID {
	syms := make([]token.ID, 0, len(m))
	for sym := range m {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool {
		if syms[i].Kind != syms[j].Kind {
			return syms[i].Kind < syms[j].Kind
		}
		return syms[i].Index < syms[j].Index
	})
	return syms
}

// assemble builds the dense ACTION/GOTO arrays from the finished canonical
// collection, detecting conflicts per spec.md §4.4.
func (c *collection) assemble() (*Table, error) {
	n := len(c.states)
	t := &Table{
		NumStates:        n,
		NumTerminals:     c.reg.NumTerminals(),
		NumNonterminals:  c.reg.NumNonterminals(),
		Action:           make([][]Action, n),
		Goto:             make([][]int, n),
		StartState:       0,
		AcceptProduction: c.g.StartProduction(),
		coreKeys:         make([]string, n),
	}
	for i, st := range c.states {
		t.coreKeys[i] = sameCoreKey(st.kernel())
	}
	for i := 0; i < n; i++ {
		t.Action[i] = make([]Action, t.NumTerminals)
		t.Goto[i] = make([]int, t.NumNonterminals)
		for j := range t.Goto[i] {
			t.Goto[i][j] = GotoNone
		}
	}

	for i, st := range c.states {
		for sym, target := range st.trans {
			if sym.IsTerminal() {
				if err := setAction(t, c.reg, i, sym, Action{Kind: ActionShift, State: target}); err != nil {
					return nil, err
				}
			} else {
				t.Goto[i][sym.Index] = target
			}
		}
		for _, it := range st.items {
			if !it.reducible(c.g) {
				continue
			}
			na := Action{Kind: ActionReduce, Production: it.Production}
			if err := setAction(t, c.reg, i, it.Lookahead, na); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

func setAction(t *Table, reg *token.Registry, state int, term token.ID, na Action) error {
	existing := t.Action[state][term.Index]
	if existing.Kind == ActionError {
		t.Action[state][term.Index] = na
		return nil
	}
	if existing.equal(na) {
		return nil
	}
	return &ConflictError{State: state, Terminal: reg.NameOf(term), Existing: existing, New: na}
}
