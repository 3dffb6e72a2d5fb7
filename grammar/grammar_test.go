package grammar

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenlowe/grayling/token"
)

func mustRead(t *testing.T, src string) (*Grammar, *token.Registry) {
	t.Helper()
	reg := token.NewRegistry()
	r := NewReader(reg, "test.gr", []byte(src))
	g, err := r.Read()
	require.NoError(t, err)
	return g, reg
}

func TestReader_SimpleArithmeticGrammar(t *testing.T) {
	g, reg := mustRead(t, "E = E + T | T ;\nT = l_ident ;\n")

	e := reg.GetOrCreateNonterminal("E")
	tnt := reg.GetOrCreateNonterminal("T")

	require.Equal(t, e, g.StartSymbol())
	require.Len(t, g.ProductionsFor(e), 2)
	require.Len(t, g.ProductionsFor(tnt), 1)

	p0 := g.Production(g.ProductionsFor(e)[0])
	assert.Len(t, p0.RHS, 3)
	p1 := g.Production(g.ProductionsFor(e)[1])
	assert.Equal(t, []token.ID{tnt}, p1.RHS)
}

func TestReader_OptionalGroupExpansion(t *testing.T) {
	g, _ := mustRead(t, "S = a [ b ] c ;\n")
	require.Equal(t, 2, g.NumProductions())
	lens := map[int]bool{}
	for i := 0; i < g.NumProductions(); i++ {
		lens[len(g.Production(i).RHS)] = true
	}
	assert.True(t, lens[2])
	assert.True(t, lens[3])
}

func TestReader_TwoOptionalGroupsYieldFourProductions(t *testing.T) {
	g, _ := mustRead(t, "S = a [ b ] [ d ] c ;\n")
	assert.Equal(t, 4, g.NumProductions())
}

func TestReader_UndefinedTerminal(t *testing.T) {
	reg := token.NewRegistry()
	r := NewReader(reg, "test.gr", []byte("S = l_does_not_exist ;\n"))
	_, err := r.Read()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUndefinedTerminal))
}

func TestReader_LhsMustBeNonterminal(t *testing.T) {
	reg := token.NewRegistry()
	r := NewReader(reg, "test.gr", []byte("l_ident = a ;\n"))
	_, err := r.Read()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLhsMustBeNonterminal))
}

func TestReader_GroupOverflow(t *testing.T) {
	reg := token.NewRegistry()
	r := NewReader(reg, "test.gr", []byte("S = [ a a a a a a a a ] ;\n"))
	_, err := r.Read()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGroupOverflow))
}

func TestGrammar_Validate(t *testing.T) {
	g, _ := mustRead(t, "E = E + T | T ;\nT = l_ident ;\n")
	assert.NoError(t, g.Validate())
}

func TestGrammar_Validate_NonterminalWithoutProduction(t *testing.T) {
	g, _ := mustRead(t, "S = a [ b ] c ;\n")
	err := g.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonterminalWithoutProduction))
}
