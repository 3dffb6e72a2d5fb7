package grayling

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenlowe/grayling/lr"
	"github.com/wrenlowe/grayling/token"
)

func TestBuild_SimpleGrammar(t *testing.T) {
	reg := token.NewRegistry()
	g, tbl, err := Build(reg, "g.gr", []byte("E = E + T | T ;\nT = l_ident ;\n"), lr.DefaultBuildOptions())
	require.NoError(t, err)
	assert.Greater(t, g.NumProductions(), 0)
	assert.Greater(t, tbl.NumStates, 0)
}

func TestLoadOrBuild_CachesAndReloads(t *testing.T) {
	reg := token.NewRegistry()
	src := []byte("E = E + T | T ;\nT = l_ident ;\n")
	opts := lr.DefaultBuildOptions()

	var cache bytes.Buffer
	_, tbl1, id1, fromCache, err := LoadOrBuild(reg, "g.gr", src, opts, &cache)
	require.NoError(t, err)
	assert.False(t, fromCache)

	reg2 := token.NewRegistry()
	_, tbl2, id2, fromCache2, err := LoadOrBuild(reg2, "g.gr", src, opts, &cache)
	require.NoError(t, err)
	assert.True(t, fromCache2)
	assert.Equal(t, id1, id2)
	assert.Equal(t, tbl1.NumStates, tbl2.NumStates)
}
