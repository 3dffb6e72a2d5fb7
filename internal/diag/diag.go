// Package diag is this toolkit's ambient diagnostic writer: a thin wrapper
// over the standard library's log package, following the level-prefixed
// log.Printf style the teacher's server entry points use
// (cmd/tqserver/main.go: "INFO  ...", "WARN  ...", "ERROR ...") rather than
// a third-party logging library, since nothing in the retrieved corpus
// reaches for one.
package diag

import (
	"log"
	"os"
)

// Logger writes level-prefixed diagnostic lines to an underlying
// *log.Logger. The zero value is not usable; construct with New.
type Logger struct {
	l     *log.Logger
	trace bool
}

// New returns a Logger writing to os.Stderr with no timestamp prefix (the
// error types in lex/grammar/lr already carry their own file/line/column).
// trace controls whether Tracef calls are emitted at all.
func New(trace bool) *Logger {
	return &Logger{l: log.New(os.Stderr, "", 0), trace: trace}
}

// Tracef writes a "TRACE " line if the Logger was constructed with trace
// enabled; otherwise it is a no-op. lr.Build's opts.Trace construction-
// progress messages go through this.
func (d *Logger) Tracef(format string, args ...interface{}) {
	if d == nil || !d.trace {
		return
	}
	d.l.Printf("TRACE "+format, args...)
}
