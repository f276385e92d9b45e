// Package tracelog wires the CLI's grammar tracing through commonlog, the
// logging library dhamidi-sai's LSP server registers via a blank import of
// its "simple" backend. It is deliberately thin: one named logger, used by
// cmd/parsec to report which subcommand ran and how a parse turned out.
package tracelog

import (
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("parsec")

// Verbose switches the simple backend on at Info level, or off; called once
// from cmd/parsec's root command with the --verbose flag's value. Off by default so
// a plain "parsec infix ..." invocation stays quiet on stderr.
func Verbose(on bool) {
	if on {
		commonlog.SetMaxLevel(commonlog.Info)
	} else {
		commonlog.SetMaxLevel(commonlog.None)
	}
}

// Parsing reports which grammar a subcommand is about to run.
func Parsing(grammar, source string) {
	log.Infof("parsing %s from %s", grammar, source)
}

// Failed reports a parse failure's error text.
func Failed(grammar string, err error) {
	log.Warningf("%s: parse failed: %s", grammar, err)
}
