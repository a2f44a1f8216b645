// SPDX-License-Identifier: MIT

package main

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logFormatJSON    = "json"
	logFormatConsole = "console"
)

// newLogger builds a production zap logger writing to stderr. Unknown levels
// fall back to info, unknown formats to json.
func newLogger(level, format string) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Sampling = nil
	zc.DisableStacktrace = true
	zc.OutputPaths = []string{"stderr"}

	ll := zapcore.InfoLevel
	_ = ll.Set(level)
	zc.Level.SetLevel(ll)

	switch format {
	case logFormatConsole:
		zc.Encoding = logFormatConsole
	default:
		zc.Encoding = logFormatJSON
	}

	return zc.Build()
}
