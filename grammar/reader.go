package grammar

import (
	"strings"

	"github.com/wrenlowe/grayling/lex"
	"github.com/wrenlowe/grayling/token"
)

const maxGroupSize = 7

// symGroup is one contiguous run of identifiers read while parsing an
// alternative: either a mandatory run (always contributed) or the contents
// of a single `[ ... ]` optional group (spec.md §4.3's "identifier group").
type symGroup struct {
	symbols  []token.ID
	optional bool
}

// Reader parses a grammar-description file, built directly on a lex.Scanner
// so the grammar file shares the target language's keyword/operator table:
// the structural tokens `=`, `;`, `|`, `[`, `]` are literally the scanner's
// own ASSIGN/SEMICOLON/BOR/LBRACKET/RBRACKET terminals.
type Reader struct {
	s   *lex.Scanner
	reg *token.Registry
	g   *Grammar

	identKind  token.ID
	assign     token.ID
	semicolon  token.ID
	bor        token.ID
	lbracket   token.ID
	rbracket   token.ID
	eof        token.ID
}

// NewReader creates a Reader over src, identified as filename in
// diagnostics. reg must already carry the built-in terminal table.
func NewReader(reg *token.Registry, filename string, src []byte) *Reader {
	r := &Reader{
		s:   lex.New(reg, filename, src),
		reg: reg,
		g:   New(reg),
	}
	r.identKind = mustLookup(reg, token.NameIdentifier)
	r.assign = mustLookup(reg, "=")
	r.semicolon = mustLookup(reg, ";")
	r.bor = mustLookup(reg, "|")
	r.lbracket = mustLookup(reg, "[")
	r.rbracket = mustLookup(reg, "]")
	r.eof = mustLookup(reg, token.NameEOF)
	return r
}

func mustLookup(reg *token.Registry, name string) token.ID {
	id, err := reg.LookupTerminal(name)
	if err != nil {
		panic(err)
	}
	return id
}

// Read parses the entire grammar file and returns the resulting Grammar.
// It does not run final validation; call Grammar.Validate afterward.
func (r *Reader) Read() (*Grammar, error) {
	for {
		tk, err := r.next()
		if err != nil {
			return nil, err
		}
		if tk.Kind == r.eof {
			return r.g, nil
		}
		if err := r.readRule(tk); err != nil {
			return nil, err
		}
	}
}

// next returns the next non-comment token, translating a lexical error into
// a *Error carrying the same position.
func (r *Reader) next() (lex.Token, error) {
	for {
		tk, err := r.s.NextToken()
		if err != nil {
			var lexErr *lex.Error
			if ok := asLexError(err, &lexErr); ok {
				return lex.Token{}, &Error{Kind: lexErr.Kind, File: lexErr.File, Line: lexErr.Line, Column: lexErr.Column}
			}
			return lex.Token{}, err
		}
		if tk.Kind.IsTerminal() && r.reg.NameOf(tk.Kind) == token.NameComment {
			continue
		}
		return tk, nil
	}
}

func asLexError(err error, target **lex.Error) bool {
	if le, ok := err.(*lex.Error); ok {
		*target = le
		return true
	}
	return false
}

// readRule parses one `LHS = ALT ( '|' ALT )* ';'` rule given its already
// consumed leading token (the LHS identifier).
func (r *Reader) readRule(lhsTok lex.Token) error {
	if lhsTok.Kind != r.identKind {
		return &Error{Kind: ErrLhsMustBeNonterminal, File: lhsTok.File, Line: lhsTok.Line, Column: lhsTok.Column}
	}
	lhsText := lhsTok.Lexeme()
	if strings.HasPrefix(lhsText, "l_") {
		return &Error{Kind: ErrLhsMustBeNonterminal, File: lhsTok.File, Line: lhsTok.Line, Column: lhsTok.Column}
	}
	lhs := r.reg.GetOrCreateNonterminal(lhsText)

	eq, err := r.next()
	if err != nil {
		return err
	}
	if eq.Kind != r.assign {
		return &Error{Kind: ErrUnexpectedEofInRule, File: eq.File, Line: eq.Line, Column: eq.Column}
	}

	for {
		groups, terminator, err := r.readAlternative()
		if err != nil {
			return err
		}
		r.expand(lhs, groups)
		if terminator == r.semicolon {
			return nil
		}
		// terminator == bor: another alternative for the same LHS follows.
	}
}

// readAlternative reads one `RHS_ALT` up to (and consuming) its terminating
// `;` or `|`, returning the symbol groups read and which terminator it saw.
func (r *Reader) readAlternative() ([]symGroup, token.ID, error) {
	var groups []symGroup
	var mandatory []token.ID

	flushMandatory := func() {
		if len(mandatory) > 0 {
			groups = append(groups, symGroup{symbols: mandatory})
			mandatory = nil
		}
	}

	for {
		tk, err := r.next()
		if err != nil {
			return nil, token.ID{}, err
		}
		switch {
		case tk.Kind == r.eof:
			return nil, token.ID{}, &Error{Kind: ErrUnexpectedEofInRule, File: tk.File, Line: tk.Line, Column: tk.Column}
		case tk.Kind == r.semicolon || tk.Kind == r.bor:
			flushMandatory()
			return groups, tk.Kind, nil
		case tk.Kind == r.lbracket:
			optGroup, err := r.readOptionalGroup()
			if err != nil {
				return nil, token.ID{}, err
			}
			flushMandatory()
			groups = append(groups, optGroup)
		default:
			sym, err := r.symbolOf(tk)
			if err != nil {
				return nil, token.ID{}, err
			}
			if len(mandatory) == maxGroupSize {
				return nil, token.ID{}, &Error{Kind: ErrGroupOverflow, File: tk.File, Line: tk.Line, Column: tk.Column}
			}
			mandatory = append(mandatory, sym)
		}
	}
}

// readOptionalGroup reads the contents of a `[ ... ]` group, having already
// consumed the opening `[`. Nesting is not supported: a nested `[` is not
// reported as an error but taken by symbolOf as a reference to the `[`
// terminal itself, and the first `]` closes the group.
func (r *Reader) readOptionalGroup() (symGroup, error) {
	var symbols []token.ID
	for {
		tk, err := r.next()
		if err != nil {
			return symGroup{}, err
		}
		if tk.Kind == r.rbracket {
			return symGroup{symbols: symbols, optional: true}, nil
		}
		if tk.Kind == r.eof {
			return symGroup{}, &Error{Kind: ErrUnexpectedEofInRule, File: tk.File, Line: tk.Line, Column: tk.Column}
		}
		sym, err := r.symbolOf(tk)
		if err != nil {
			return symGroup{}, err
		}
		if len(symbols) == maxGroupSize {
			return symGroup{}, &Error{Kind: ErrGroupOverflow, File: tk.File, Line: tk.Line, Column: tk.Column}
		}
		symbols = append(symbols, sym)
	}
}

// symbolOf resolves a grammar-body token to a symbol id: an IDENT-kind
// token is a nonterminal unless its text is l_-prefixed, in which case it
// must already be a registered terminal; any other token kind is already a
// registered terminal, referenced by its own literal spelling.
func (r *Reader) symbolOf(tk lex.Token) (token.ID, error) {
	if tk.Kind == r.identKind {
		text := tk.Lexeme()
		if strings.HasPrefix(text, "l_") {
			id, err := r.reg.LookupTerminal(text)
			if err != nil {
				return token.ID{}, &Error{Kind: ErrUndefinedTerminal, File: tk.File, Line: tk.Line, Column: tk.Column}
			}
			return id, nil
		}
		return r.reg.GetOrCreateNonterminal(text), nil
	}
	return tk.Kind, nil
}

// expand materializes the 2^k productions (k = number of optional groups)
// implied by one alternative's groups, in the fixed order spec.md §4.3
// describes: each optional group independently present or absent, symbols
// concatenated in original positional order.
func (r *Reader) expand(lhs token.ID, groups []symGroup) {
	var optionalIdx []int
	for i, grp := range groups {
		if grp.optional {
			optionalIdx = append(optionalIdx, i)
		}
	}
	combos := 1 << len(optionalIdx)
	for mask := 0; mask < combos; mask++ {
		included := make(map[int]bool, len(optionalIdx))
		for bit, idx := range optionalIdx {
			if mask&(1<<bit) != 0 {
				included[idx] = true
			}
		}
		var rhs []token.ID
		for i, grp := range groups {
			if grp.optional && !included[i] {
				continue
			}
			rhs = append(rhs, grp.symbols...)
		}
		r.g.AddProduction(lhs, rhs)
	}
}
