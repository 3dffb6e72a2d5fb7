// Package table persists a built lr.Table to and from a byte stream in a
// versioned, self-describing format (spec.md §4.4 "Persistence", §6
// "Cached table format"). Disk access itself is left to the caller: Save
// and Load work over io.Writer/io.Reader, keeping file I/O out of this
// package per spec.md §1's scope.
package table

import "fmt"

// ErrNotCached is returned by Load when the stream does not begin with this
// package's magic number, i.e. it was never written by Save.
var ErrNotCached = fmt.Errorf("not a cached table")

// ErrCorrupt is returned by Load when the stream's header is recognized but
// its version or declared dimensions are unusable: a version this package
// does not know how to read, a payload that fails to decode, or
// terminal/nonterminal counts that do not match the grammar the caller
// expects to load the table for.
var ErrCorrupt = fmt.Errorf("corrupt cached table")
