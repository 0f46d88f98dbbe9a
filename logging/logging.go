/*
File    : mova/logging/logging.go
Package : logging

Package logging configures the zap.SugaredLogger used for trace-level
diagnostics (runner and evaluator activity under --trace). It is
deliberately separate from the result/error output the CLI prints with
fatih/color: this is diagnostics, not Mova program output.
*/
package logging

import "go.uber.org/zap"

// New builds a logger for the given verbosity. When trace is false it
// returns a no-op logger, so diagnostic calls cost nothing by default.
func New(trace bool) *zap.SugaredLogger {
	if !trace {
		return zap.NewNop().Sugar()
	}
	cfg := zap.NewDevelopmentConfig()
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}
