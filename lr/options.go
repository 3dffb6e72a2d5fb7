package lr

import (
	"github.com/wrenlowe/grayling/grammar"
	"github.com/wrenlowe/grayling/internal/diag"
	"github.com/wrenlowe/grayling/token"
)

// BuildOptions configures a table build. It decodes from TOML the same way
// the teacher's world/manifest files do (github.com/BurntSushi/toml), e.g.:
//
//	lalr = true
//	trust_cache = true
//	trace = false
type BuildOptions struct {
	// LALR controls whether same-core states are merged after the
	// canonical LR(1) collection is built. Disabling it yields the full
	// (larger) canonical table. Conflicts are detected before merging, so
	// this setting does not change which grammars raise GrammarConflict.
	LALR bool `toml:"lalr"`

	// TrustCache controls whether grayling.LoadOrBuild first attempts to
	// load a cached table via the table package before rebuilding from the
	// grammar file (spec.md §4.4 "Persistence"). Build itself does not read
	// it.
	TrustCache bool `toml:"trust_cache"`

	// Trace enables verbose construction logging through the ambient log
	// package.
	Trace bool `toml:"trace"`
}

// DefaultBuildOptions returns the options a build uses when no BuildOptions
// file is supplied: LALR merging on, cache trusted.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{LALR: true, TrustCache: true}
}

// Build validates g, constructs its canonical LR(1) table, and — unless
// opts.LALR is false — merges it down to LALR(1).
func Build(g *grammar.Grammar, reg *token.Registry, opts BuildOptions) (*Table, error) {
	d := diag.New(opts.Trace)
	if err := g.Validate(); err != nil {
		return nil, err
	}
	t, err := BuildCanonical(g, reg)
	if err != nil {
		return nil, err
	}
	d.Tracef("canonical LR(1) collection built: %d states", t.NumStates)
	if opts.LALR {
		before := t.NumStates
		t = MergeLALR(t)
		d.Tracef("LALR merge: %d states -> %d states", before, t.NumStates)
	}
	return t, nil
}
