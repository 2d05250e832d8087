// log.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file wires structured logging via zerolog, in the style shown
// by the corpus's own zerolog usage (github.com/rs/zerolog/log,
// Msg-style call chains). The engine's core packages stay silent on
// the hot path; logging is confined to load-time and request-level
// events in the cmd/ and server/ entry points.

package skrafl

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogging configures the package-level zerolog logger. verbose
// switches the minimum level from Info to Debug.
func InitLogging(verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()
}
