package lr

import (
	"fmt"

	"github.com/wrenlowe/grayling/token"
)

// ActionKind discriminates an ACTION table cell. Per spec.md §4.4, the
// accept condition (reducing the start production with EOF lookahead) is
// not a distinct tag: it is stored as an ordinary ActionReduce cell whose
// Production equals Table.AcceptProduction, recognized specially by a
// caller driving the table rather than by a fourth cell kind.
type ActionKind uint8

const (
	ActionError ActionKind = iota
	ActionShift
	ActionReduce
)

func (k ActionKind) String() string {
	switch k {
	case ActionShift:
		return "SHIFT"
	case ActionReduce:
		return "REDUCE"
	default:
		return "ERROR"
	}
}

// Action is one ACTION table cell.
type Action struct {
	Kind       ActionKind
	State      int // target state, valid when Kind == ActionShift
	Production int // production handle, valid when Kind == ActionReduce
}

func (a Action) String() string {
	switch a.Kind {
	case ActionShift:
		return fmt.Sprintf("SHIFT(%d)", a.State)
	case ActionReduce:
		return fmt.Sprintf("REDUCE(%d)", a.Production)
	default:
		return "ERROR"
	}
}

func (a Action) equal(o Action) bool {
	return a.Kind == o.Kind && a.State == o.State && a.Production == o.Production
}

// GotoNone is the sentinel GOTO cell value meaning "no transition", outside
// the valid state-index range as spec.md §3 requires.
const GotoNone = -1

// Table is a built ACTION/GOTO table: dense (state x terminal) and
// (state x nonterminal) matrices, indexed directly by token.ID.Index since
// the Registry assigns dense, contiguous indices within each partition.
type Table struct {
	NumStates        int
	NumTerminals     int
	NumNonterminals  int
	Action           [][]Action
	Goto             [][]int
	StartState       int
	AcceptProduction int

	// coreKeys holds each state's same-core key (production+dot pairs,
	// lookahead ignored), in state-index order. It is populated by
	// BuildCanonical and consumed by MergeLALR; callers outside this
	// package have no use for it and it is not serialized by the table
	// package.
	coreKeys []string
}

// ActionAt returns the ACTION cell for state s and terminal t.
func (t *Table) ActionAt(s int, term token.ID) Action {
	return t.Action[s][term.Index]
}

// GotoAt returns the GOTO cell for state s and nonterminal nt, or GotoNone.
func (t *Table) GotoAt(s int, nt token.ID) int {
	return t.Goto[s][nt.Index]
}

// IsAccept reports whether action a is a REDUCE of the table's
// AcceptProduction. It does not look at the lookahead terminal: a REDUCE of
// that production under any lookahead, EOF or not, reports true.
func (t *Table) IsAccept(a Action) bool {
	return a.Kind == ActionReduce && a.Production == t.AcceptProduction
}
