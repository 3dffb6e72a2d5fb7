package table

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenlowe/grayling/lr"
)

func sampleTable() *lr.Table {
	return &lr.Table{
		NumStates:        2,
		NumTerminals:     2,
		NumNonterminals:  1,
		StartState:       0,
		AcceptProduction: 0,
		Action: [][]lr.Action{
			{{Kind: lr.ActionShift, State: 1}, {Kind: lr.ActionError}},
			{{Kind: lr.ActionError}, {Kind: lr.ActionReduce, Production: 0}},
		},
		Goto: [][]int{
			{lr.GotoNone},
			{1},
		},
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	orig := sampleTable()

	var buf bytes.Buffer
	buildID, err := Save(&buf, orig)
	require.NoError(t, err)
	assert.NotEqual(t, buildID.String(), "00000000-0000-0000-0000-000000000000")

	got, loadedID, err := Load(&buf, orig.NumTerminals, orig.NumNonterminals)
	require.NoError(t, err)
	assert.Equal(t, buildID, loadedID)
	assert.Equal(t, orig.NumStates, got.NumStates)
	assert.Equal(t, orig.StartState, got.StartState)
	assert.Equal(t, orig.AcceptProduction, got.AcceptProduction)
	assert.Equal(t, orig.Action, got.Action)
	assert.Equal(t, orig.Goto, got.Goto)
}

func TestLoad_DimensionMismatchIsCorrupt(t *testing.T) {
	orig := sampleTable()

	var buf bytes.Buffer
	_, err := Save(&buf, orig)
	require.NoError(t, err)

	_, _, err = Load(&buf, orig.NumTerminals+1, orig.NumNonterminals)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCorrupt))
}

func TestLoad_GarbageStreamIsNotCached(t *testing.T) {
	buf := bytes.NewReader([]byte{0, 1, 2, 3, 4, 5, 6, 7})
	_, _, err := Load(buf, 1, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotCached))
}

func TestLoad_BadVersionIsCorrupt(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeHeader(&buf, Header{}))

	raw := buf.Bytes()
	// version field follows the 4-byte magic; bump it past what this
	// package understands.
	raw[4] = 0xff
	raw[5] = 0xff

	_, _, err := Load(bytes.NewReader(raw), 0, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCorrupt))
}
