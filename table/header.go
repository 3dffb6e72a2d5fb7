package table

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// magic identifies this package's stream format, independent of whatever
// version of the rezi payload codec follows it.
const magic uint32 = 0x47524c31 // "GRL1"

// formatVersion is bumped whenever wirePayload's shape changes in a way
// that breaks backward decoding.
const formatVersion uint16 = 1

// Header is the fixed-size, rezi-independent prefix of a cached table
// stream: a magic number, a version tag, a build identifier, and the
// dimensions spec.md §6 requires a loader to check before trusting the
// payload that follows.
type Header struct {
	BuildID          uuid.UUID
	NumTerminals     int32
	NumNonterminals  int32
	NumStates        int32
	StartState       int32
	AcceptProduction int32
}

func writeHeader(w io.Writer, h Header) error {
	if err := binary.Write(w, binary.BigEndian, magic); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, formatVersion); err != nil {
		return err
	}
	buildID, err := h.BuildID.MarshalBinary()
	if err != nil {
		return err
	}
	if _, err := w.Write(buildID); err != nil {
		return err
	}
	for _, field := range []int32{h.NumTerminals, h.NumNonterminals, h.NumStates, h.StartState, h.AcceptProduction} {
		if err := binary.Write(w, binary.BigEndian, field); err != nil {
			return err
		}
	}
	return nil
}

// binaryWriteLen and binaryReadLen frame the rezi-encoded payload with a
// fixed-width length prefix so Load knows exactly how many bytes to read
// before handing them to the rezi decoder.
func binaryWriteLen(w io.Writer, n int) error {
	return binary.Write(w, binary.BigEndian, uint32(n))
}

func binaryReadLen(r io.Reader) (int, error) {
	var n uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return 0, err
	}
	return int(n), nil
}

func readHeader(r io.Reader) (Header, error) {
	var gotMagic uint32
	if err := binary.Read(r, binary.BigEndian, &gotMagic); err != nil {
		return Header{}, fmt.Errorf("%w: %v", ErrNotCached, err)
	}
	if gotMagic != magic {
		return Header{}, ErrNotCached
	}
	var gotVersion uint16
	if err := binary.Read(r, binary.BigEndian, &gotVersion); err != nil {
		return Header{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if gotVersion != formatVersion {
		return Header{}, fmt.Errorf("%w: unsupported format version %d", ErrCorrupt, gotVersion)
	}

	idBytes := make([]byte, 16)
	if _, err := io.ReadFull(r, idBytes); err != nil {
		return Header{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	var h Header
	if err := h.BuildID.UnmarshalBinary(idBytes); err != nil {
		return Header{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	fields := []*int32{&h.NumTerminals, &h.NumNonterminals, &h.NumStates, &h.StartState, &h.AcceptProduction}
	for _, f := range fields {
		if err := binary.Read(r, binary.BigEndian, f); err != nil {
			return Header{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
	}
	return h, nil
}
