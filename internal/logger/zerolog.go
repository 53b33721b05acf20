package logger

import (
	"io"

	"github.com/rs/zerolog"
)

type ZerologAdapter struct {
	logger zerolog.Logger
}

func NewZerolog(writer io.Writer, level zerolog.Level) *ZerologAdapter {
	logger := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &ZerologAdapter{logger: logger}
}

// NewConsole wraps the writer in zerolog's human-readable console
// format. This is the launcher's default for interactive sessions.
func NewConsole(writer io.Writer, level zerolog.Level) *ZerologAdapter {
	consoleWriter := zerolog.ConsoleWriter{Out: writer}
	return NewZerolog(consoleWriter, level)
}

// WithField returns a copy of the adapter with the field attached to
// every subsequent log entry.
func (z *ZerologAdapter) WithField(key, value string) *ZerologAdapter {
	return &ZerologAdapter{logger: z.logger.With().Str(key, value).Logger()}
}

// ParseLevel maps a config or flag value to a zerolog level. Unknown
// values fall back to info.
func ParseLevel(s string) zerolog.Level {
	switch s {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	event := z.logger.Debug().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	event := z.logger.Info().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	event := z.logger.Warn().Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(message)
}

func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	event := z.logger.Error().Str("component", component).Err(err)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg("operation failed")
}

// Critical emits a fatal-severity entry without terminating the
// process. Exit is the launcher's call, not the logger's.
func (z *ZerologAdapter) Critical(component, message string, err error) {
	z.logger.WithLevel(zerolog.FatalLevel).Str("component", component).Err(err).Msg(message)
}
