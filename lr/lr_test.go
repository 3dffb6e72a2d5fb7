package lr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenlowe/grayling/grammar"
	"github.com/wrenlowe/grayling/lex"
	"github.com/wrenlowe/grayling/token"
)

func readGrammar(t *testing.T, reg *token.Registry, src string) *grammar.Grammar {
	t.Helper()
	r := grammar.NewReader(reg, "test.gr", []byte(src))
	g, err := r.Read()
	require.NoError(t, err)
	require.NoError(t, g.Validate())
	return g
}

func TestBuildCanonical_NoDuplicateKernels(t *testing.T) {
	reg := token.NewRegistry()
	g := readGrammar(t, reg, "E = E + T | T ;\nT = l_ident ;\n")

	coll := &collection{g: g, reg: reg, index: make(map[string]int)}
	startItem := Item{Production: g.StartProduction(), Dot: 0, Lookahead: token.EOF}
	coll.addState([]Item{startItem})
	for i := 0; i < len(coll.states); i++ {
		coll.processState(i)
	}

	seen := make(map[string]int)
	for i, st := range coll.states {
		key := kernelSetKey(st.kernel())
		if prev, ok := seen[key]; ok {
			t.Fatalf("states %d and %d share an equal kernel", prev, i)
		}
		seen[key] = i
	}
	assert.Greater(t, len(coll.states), 0)
}

func TestBuild_DanglingElseConflict(t *testing.T) {
	reg := token.NewRegistry()
	g := readGrammar(t, reg, "S = if S | if S else S | l_int_dec ;\n")

	_, err := BuildCanonical(g, reg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGrammarConflict))
}

func TestBuild_Determinism(t *testing.T) {
	src := "E = E + T | T ;\nT = l_ident ;\n"

	reg1 := token.NewRegistry()
	g1 := readGrammar(t, reg1, src)
	t1, err := Build(g1, reg1, DefaultBuildOptions())
	require.NoError(t, err)

	reg2 := token.NewRegistry()
	g2 := readGrammar(t, reg2, src)
	t2, err := Build(g2, reg2, DefaultBuildOptions())
	require.NoError(t, err)

	assert.Equal(t, t1.NumStates, t2.NumStates)
	assert.Equal(t, t1.Action, t2.Action)
	assert.Equal(t, t1.Goto, t2.Goto)
}

// simulate drives table over src using a plain shift-reduce loop, the
// minimal amount of machinery needed to exercise a built table end to end;
// it is test-only and does not stand in for the parser runtime, which is
// out of scope.
func simulate(t *testing.T, g *grammar.Grammar, reg *token.Registry, tbl *Table, src string) bool {
	t.Helper()
	s := lex.New(reg, "in.gl", []byte(src))
	var toks []token.ID
	for {
		tk, err := s.NextToken()
		require.NoError(t, err)
		if reg.NameOf(tk.Kind) == token.NameComment {
			continue
		}
		toks = append(toks, tk.Kind)
		if tk.Kind == token.EOF {
			break
		}
	}

	stack := []int{tbl.StartState}
	pos := 0
	for {
		state := stack[len(stack)-1]
		la := toks[pos]
		action := tbl.ActionAt(state, la)
		switch action.Kind {
		case ActionShift:
			stack = append(stack, action.State)
			pos++
		case ActionReduce:
			if tbl.IsAccept(action) {
				return true
			}
			prod := g.Production(action.Production)
			n := len(prod.RHS)
			stack = stack[:len(stack)-n]
			top := stack[len(stack)-1]
			target := tbl.GotoAt(top, prod.LHS)
			if target == GotoNone {
				return false
			}
			stack = append(stack, target)
		default:
			return false
		}
	}
}

func TestEndToEnd_ArithmeticGrammarAccepts(t *testing.T) {
	reg := token.NewRegistry()
	g := readGrammar(t, reg, "E = E + T | T ;\nT = l_ident ;\n")
	tbl, err := Build(g, reg, DefaultBuildOptions())
	require.NoError(t, err)

	assert.True(t, simulate(t, g, reg, tbl, "a + a"))
	assert.False(t, simulate(t, g, reg, tbl, "a +"))
}
