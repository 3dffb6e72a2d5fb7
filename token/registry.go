package token

import "fmt"

// ErrUndefinedTerminal is returned by LookupTerminal when the given name (or
// literal text) has not been registered as a terminal.
var ErrUndefinedTerminal = fmt.Errorf("undefined terminal")

// Registry is the process-wide bidirectional mapping between symbol names
// and their identifiers, partitioned into terminals and nonterminals. A
// Registry is created once, seeded with the built-in terminals, mutated
// while a grammar is read, and must not be mutated afterward.
type Registry struct {
	terminalByName    map[string]ID
	nonterminalByName map[string]ID
	nameOf            map[ID]string
	nextTerminal      int
	nextNonterminal   int
}

// NewRegistry creates a Registry seeded with the fixed set of built-in
// terminals: EOF, COMMENT, the literal kinds, IDENT, then every entry of
// KeywordTable and OperatorTable in order. This fixes the numeric ids
// described in spec.md §6.
func NewRegistry() *Registry {
	r := &Registry{
		terminalByName:    make(map[string]ID),
		nonterminalByName: make(map[string]ID),
		nameOf:            make(map[ID]string),
	}
	r.registerBuiltinTerminals()
	return r
}

func (r *Registry) registerBuiltinTerminals() {
	r.addTerminal(NameEOF)
	r.addTerminal(NameComment)
	for _, name := range builtinLiteralNames {
		r.addTerminal(name)
	}
	for _, kw := range KeywordTable {
		r.addTerminal(kw.Text)
	}
	for _, op := range OperatorTable {
		r.addTerminal(op.Text)
	}
}

func (r *Registry) addTerminal(name string) ID {
	id := ID{Kind: Terminal, Index: r.nextTerminal}
	r.nextTerminal++
	r.terminalByName[name] = id
	r.nameOf[id] = name
	return id
}

// GetOrCreateNonterminal returns the identifier for the nonterminal named
// name, registering it if this is the first time it has been seen.
// Nonterminal ids are assigned monotonically starting from 0 within the
// Nonterminal kind, independent of the terminal numbering.
func (r *Registry) GetOrCreateNonterminal(name string) ID {
	if id, ok := r.nonterminalByName[name]; ok {
		return id
	}
	id := ID{Kind: Nonterminal, Index: r.nextNonterminal}
	r.nextNonterminal++
	r.nonterminalByName[name] = id
	r.nameOf[id] = name
	return id
}

// LookupTerminal returns the identifier registered under name, which may be
// an l_-prefixed synthetic name (e.g. "l_ident") or the literal spelling of
// a keyword or operator (e.g. "if", "+="). It fails with ErrUndefinedTerminal
// if name has not been registered.
func (r *Registry) LookupTerminal(name string) (ID, error) {
	id, ok := r.terminalByName[name]
	if !ok {
		return ID{}, fmt.Errorf("%w: %q", ErrUndefinedTerminal, name)
	}
	return id, nil
}

// NameOf returns the display name registered for id. It panics if id was
// never registered, since that indicates a bug in the caller rather than a
// recoverable condition.
func (r *Registry) NameOf(id ID) string {
	name, ok := r.nameOf[id]
	if !ok {
		panic(fmt.Sprintf("token: id %s was never registered", id))
	}
	return name
}

// IsTerminal returns whether id was registered as a terminal.
func (r *Registry) IsTerminal(id ID) bool {
	_, ok := r.nameOf[id]
	return ok && id.IsTerminal()
}

// IsNonterminal returns whether id was registered as a nonterminal.
func (r *Registry) IsNonterminal(id ID) bool {
	_, ok := r.nameOf[id]
	return ok && id.IsNonterminal()
}

// Terminals returns every registered terminal id, ordered by increasing
// Index. This ordering is relied on by the table builder to assign dense
// ACTION table columns deterministically (spec.md §5).
func (r *Registry) Terminals() []ID {
	ids := make([]ID, r.nextTerminal)
	for i := range ids {
		ids[i] = ID{Kind: Terminal, Index: i}
	}
	return ids
}

// Nonterminals returns every registered nonterminal id, ordered by
// increasing Index.
func (r *Registry) Nonterminals() []ID {
	ids := make([]ID, r.nextNonterminal)
	for i := range ids {
		ids[i] = ID{Kind: Nonterminal, Index: i}
	}
	return ids
}

// NumTerminals returns the number of registered terminals.
func (r *Registry) NumTerminals() int { return r.nextTerminal }

// NumNonterminals returns the number of registered nonterminals.
func (r *Registry) NumNonterminals() int { return r.nextNonterminal }
