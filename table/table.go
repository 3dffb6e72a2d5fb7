package table

import (
	"fmt"
	"io"

	"github.com/dekarrin/rezi"
	"github.com/google/uuid"

	"github.com/wrenlowe/grayling/lr"
)

// Save writes t to w as a versioned, self-describing stream: a fixed
// header (magic, version, build id, dimensions) followed by a rezi-encoded
// payload of the dense ACTION/GOTO matrices. It returns the build id
// stamped into the header, letting a caller log or compare it against a
// cached header without a full Load.
func Save(w io.Writer, t *lr.Table) (uuid.UUID, error) {
	h := Header{
		BuildID:          uuid.New(),
		NumTerminals:     int32(t.NumTerminals),
		NumNonterminals:  int32(t.NumNonterminals),
		NumStates:        int32(t.NumStates),
		StartState:       int32(t.StartState),
		AcceptProduction: int32(t.AcceptProduction),
	}
	if err := writeHeader(w, h); err != nil {
		return uuid.Nil, fmt.Errorf("table: write header: %w", err)
	}

	payload := toWire(t)
	enc, err := rezi.Enc(payload)
	if err != nil {
		return uuid.Nil, fmt.Errorf("table: encode payload: %w", err)
	}
	if err := binaryWriteLen(w, len(enc)); err != nil {
		return uuid.Nil, fmt.Errorf("table: write payload length: %w", err)
	}
	if _, err := w.Write(enc); err != nil {
		return uuid.Nil, fmt.Errorf("table: write payload: %w", err)
	}
	return h.BuildID, nil
}

// Load reads a stream written by Save. numTerminals and numNonterminals
// are the caller's current grammar dimensions; a mismatch against the
// header is reported as ErrCorrupt per spec.md §6 ("Loader rejects files
// whose magic/version/dimensions do not match the in-memory grammar").
func Load(r io.Reader, numTerminals, numNonterminals int) (*lr.Table, uuid.UUID, error) {
	h, err := readHeader(r)
	if err != nil {
		return nil, uuid.Nil, err
	}
	if int(h.NumTerminals) != numTerminals || int(h.NumNonterminals) != numNonterminals {
		return nil, uuid.Nil, fmt.Errorf("%w: grammar has %d/%d terminals/nonterminals, table was built for %d/%d",
			ErrCorrupt, numTerminals, numNonterminals, h.NumTerminals, h.NumNonterminals)
	}

	n, err := binaryReadLen(r)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, uuid.Nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	var payload wirePayload
	if _, err := rezi.Dec(buf, &payload); err != nil {
		return nil, uuid.Nil, fmt.Errorf("%w: decode payload: %v", ErrCorrupt, err)
	}

	t := fromWire(h, payload)
	return t, h.BuildID, nil
}

func toWire(t *lr.Table) wirePayload {
	actions := make([][]wireAction, t.NumStates)
	for i, row := range t.Action {
		actions[i] = make([]wireAction, len(row))
		for j, a := range row {
			actions[i][j] = wireAction{Kind: uint8(a.Kind), State: int32(a.State), Production: int32(a.Production)}
		}
	}
	gotos := make([][]int32, t.NumStates)
	for i, row := range t.Goto {
		gotos[i] = make([]int32, len(row))
		for j, g := range row {
			gotos[i][j] = int32(g)
		}
	}
	return wirePayload{Actions: actions, Gotos: gotos}
}

func fromWire(h Header, payload wirePayload) *lr.Table {
	t := &lr.Table{
		NumStates:        int(h.NumStates),
		NumTerminals:     int(h.NumTerminals),
		NumNonterminals:  int(h.NumNonterminals),
		StartState:       int(h.StartState),
		AcceptProduction: int(h.AcceptProduction),
		Action:           make([][]lr.Action, len(payload.Actions)),
		Goto:             make([][]int, len(payload.Gotos)),
	}
	for i, row := range payload.Actions {
		t.Action[i] = make([]lr.Action, len(row))
		for j, a := range row {
			t.Action[i][j] = lr.Action{Kind: lr.ActionKind(a.Kind), State: int(a.State), Production: int(a.Production)}
		}
	}
	for i, row := range payload.Gotos {
		t.Goto[i] = make([]int, len(row))
		for j, g := range row {
			t.Goto[i][j] = int(g)
		}
	}
	return t
}
