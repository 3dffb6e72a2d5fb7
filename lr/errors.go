package lr

import "fmt"

// ErrGrammarConflict is raised when the initial ACTION/GOTO assembly finds
// a shift/reduce or reduce/reduce conflict that LALR merging never gets a
// chance to consider, because it is detected before any merge runs.
var ErrGrammarConflict = fmt.Errorf("grammar conflict")

// ConflictError carries the state and terminal at which a conflict was
// detected, alongside the two actions that disagree.
type ConflictError struct {
	State    int
	Terminal string
	Existing Action
	New      Action
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: state %d, terminal %s: %s vs %s", ErrGrammarConflict, e.State, e.Terminal, e.Existing, e.New)
}

func (e *ConflictError) Unwrap() error { return ErrGrammarConflict }
