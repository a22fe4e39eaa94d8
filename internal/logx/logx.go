// Package logx is the pluggable logging sink every engine in gosolve logs
// through. It mirrors the role original_source/src/*.rs filled with the
// Rust `log` facade (`log::{info,debug,trace,warn}`) and is grounded on
// itohio-EasyRobot's pkg/logger/logger.go convention: a package-level
// logger wrapping zerolog, swappable by callers who want their own output
// or level.
//
// Engines never construct their own zerolog.Logger; they call the
// package-level Info/Debug/Trace/Warn helpers below, which always read the
// current logger through SetLogger/Logger so a caller can redirect or
// silence output (e.g. in tests) without touching engine code.
package logx

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu  sync.RWMutex
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(zerolog.WarnLevel)
)

// SetLogger replaces the package-level logger. Tests typically install
// zerolog.Nop() to silence output entirely.
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

// Logger returns the current package-level logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Info logs at info level: phase transitions, engine selection.
func Info(msg string) { Logger().Info().Msg(msg) }

// Infof logs a formatted message at info level.
func Infof(format string, args ...interface{}) { Logger().Info().Msgf(format, args...) }

// Debug logs at debug level: initial tableau dumps, pivot selections.
func Debug(msg string) { Logger().Debug().Msg(msg) }

// Debugf logs a formatted message at debug level.
func Debugf(format string, args ...interface{}) { Logger().Debug().Msgf(format, args...) }

// Trace logs at trace level: per-iteration tableau dumps, the noisiest tier.
func Trace(msg string) { Logger().Trace().Msg(msg) }

// Tracef logs a formatted message at trace level.
func Tracef(format string, args ...interface{}) { Logger().Trace().Msgf(format, args...) }

// Warn logs at warn level: iteration-cap hits, unbounded directions, the
// documented [0,0] pinning of continuous variables in brute force.
func Warn(msg string) { Logger().Warn().Msg(msg) }

// Warnf logs a formatted message at warn level.
func Warnf(format string, args ...interface{}) { Logger().Warn().Msgf(format, args...) }
