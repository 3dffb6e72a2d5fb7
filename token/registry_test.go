package token

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Registry_BuiltinOrdering(t *testing.T) {
	r := NewRegistry()

	eof, err := r.LookupTerminal(NameEOF)
	assert.NoError(t, err)
	assert.Equal(t, ID{Kind: Terminal, Index: 0}, eof)
	assert.Equal(t, EOF, eof)

	comment, err := r.LookupTerminal(NameComment)
	assert.NoError(t, err)
	assert.Equal(t, ID{Kind: Terminal, Index: 1}, comment)

	ident, err := r.LookupTerminal(NameIdentifier)
	assert.NoError(t, err)
	assert.True(t, ident.Index > comment.Index)

	// keywords and operators register after all literal kinds
	ifKw, err := r.LookupTerminal("if")
	assert.NoError(t, err)
	assert.True(t, ifKw.Index > ident.Index)

	plus, err := r.LookupTerminal("+")
	assert.NoError(t, err)
	assert.True(t, plus.Index > ifKw.Index)
}

func Test_Registry_Bijection(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{NameEOF, NameIdentifier, "if", "+="} {
		id, err := r.LookupTerminal(name)
		assert.NoError(t, err)
		assert.Equal(t, name, r.NameOf(id))
	}

	aID := r.GetOrCreateNonterminal("A")
	bID := r.GetOrCreateNonterminal("B")
	assert.NotEqual(t, aID, bID)
	assert.Equal(t, "A", r.NameOf(aID))
	assert.Equal(t, aID, r.GetOrCreateNonterminal("A"), "re-registering must return the same id")
}

func Test_Registry_PartitionDiscipline(t *testing.T) {
	r := NewRegistry()

	nt := r.GetOrCreateNonterminal("Expr")
	assert.True(t, r.IsNonterminal(nt))
	assert.False(t, r.IsTerminal(nt))

	assert.True(t, r.IsTerminal(EOF))
	assert.False(t, r.IsNonterminal(EOF))
}

func Test_Registry_LookupTerminal_Undefined(t *testing.T) {
	r := NewRegistry()
	_, err := r.LookupTerminal("l_does_not_exist")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrUndefinedTerminal))
}
