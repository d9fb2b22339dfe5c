// Package logger provides a small leveled console logger with per-module
// tags, elapsed-time stamps and automatic call-site annotation.
//
// # Console Output
//
// Every line is written to stderr in the form:
//
//	<ms>: <TAG>  <module>  <message> (<file>:<line>)
//
// where <ms> is the number of milliseconds since process start, <TAG> is one
// of ERR, WRN, INF, DBG and <file>:<line> points at the call site. When
// stderr is an interactive terminal each severity gets its own ANSI color;
// otherwise the output is plain text with identical content.
//
// # Usage
//
// Declare one logger per source unit and log through it:
//
//	var log = logger.NewModule("net")
//
//	log.Infof("connected to %s", host)
//	log.Errorf("dial failed: %v", err)
//
// Structured key-value pairs:
//
//	log.InfoKV("request completed",
//	    "duration_ms", 42,
//	    "status", 200)
//
// # Level Filtering
//
// Messages below the process threshold are suppressed without any
// formatting work. The threshold is resolved once, on first use, from the
// environment:
//
//	LOG=debug ./myapp     # one of: debug, info, warning, error
//	DEBUG=1 ./myapp       # forces debug when LOG is unset or unrecognized
//
// When neither variable is set the threshold defaults to warning. Code can
// override the environment with Init or SetThreshold:
//
//	logger.Init(logger.Config{Level: "info"})
//
// This package is safe for concurrent use; each line is written with a
// single write so lines from different goroutines never interleave.
package logger
