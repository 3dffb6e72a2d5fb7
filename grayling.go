// Package grayling ties the scanner, grammar reader, and LALR table builder
// into the single entry point a caller normally wants: turn a grammar file's
// source into a built parsing table, and cache that table to a byte stream
// so later runs can skip reconstruction.
//
// The name continues the fish theme of the toolkit this package grew out of.
package grayling

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/wrenlowe/grayling/grammar"
	"github.com/wrenlowe/grayling/lr"
	"github.com/wrenlowe/grayling/table"
	"github.com/wrenlowe/grayling/token"
)

// Build reads a grammar file's source with reg as the symbol registry, then
// constructs its LALR(1) parsing table. reg should already have the target
// language's terminals registered, since the grammar reader resolves l_
// prefixed identifiers against it.
func Build(reg *token.Registry, filename string, src []byte, opts lr.BuildOptions) (*grammar.Grammar, *lr.Table, error) {
	r := grammar.NewReader(reg, filename, src)
	g, err := r.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("grayling: read grammar: %w", err)
	}
	if err := g.Validate(); err != nil {
		return nil, nil, fmt.Errorf("grayling: validate grammar: %w", err)
	}

	tbl, err := lr.Build(g, reg, opts)
	if err != nil {
		return g, nil, fmt.Errorf("grayling: build table: %w", err)
	}
	return g, tbl, nil
}

// LoadOrBuild attempts to load a previously cached table from cache, falling
// back to a fresh Build when the cache is absent, stale, or rejected by
// table.Load's dimension check (spec.md §4.4's cache-or-rebuild flow). It
// returns the table, the build id that now identifies it, and whether the
// cache was used.
func LoadOrBuild(reg *token.Registry, filename string, src []byte, opts lr.BuildOptions, cache io.ReadWriter) (*grammar.Grammar, *lr.Table, uuid.UUID, bool, error) {
	r := grammar.NewReader(reg, filename, src)
	g, err := r.Read()
	if err != nil {
		return nil, nil, uuid.Nil, false, fmt.Errorf("grayling: read grammar: %w", err)
	}
	if err := g.Validate(); err != nil {
		return nil, nil, uuid.Nil, false, fmt.Errorf("grayling: validate grammar: %w", err)
	}

	numTerm, numNonterm := reg.NumTerminals(), reg.NumNonterminals()
	if opts.TrustCache {
		if tbl, id, err := table.Load(cache, numTerm, numNonterm); err == nil {
			return g, tbl, id, true, nil
		}
	}

	tbl, err := lr.Build(g, reg, opts)
	if err != nil {
		return g, nil, uuid.Nil, false, fmt.Errorf("grayling: build table: %w", err)
	}
	id, err := table.Save(cache, tbl)
	if err != nil {
		return g, tbl, uuid.Nil, false, fmt.Errorf("grayling: cache table: %w", err)
	}
	return g, tbl, id, false, nil
}
