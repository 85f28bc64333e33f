package listingsapi

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// leveledLogger routes retryablehttp's logging into zerolog.
type leveledLogger struct{}

func (leveledLogger) Error(msg string, kv ...any) { emit(log.Error(), msg, kv) }
func (leveledLogger) Warn(msg string, kv ...any)  { emit(log.Warn(), msg, kv) }
func (leveledLogger) Info(msg string, kv ...any)  { emit(log.Debug(), msg, kv) }
func (leveledLogger) Debug(msg string, kv ...any) { emit(log.Trace(), msg, kv) }

func emit(e *zerolog.Event, msg string, kv []any) {
	e.Str("component", "listings-api").Fields(kv).Msg(msg)
}
