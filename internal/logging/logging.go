package logging

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// scopeFieldName is the key for the "scope" field in structured logs.
const scopeFieldName = "scope"

// SetGlobalLogger configures the global zerolog.Logger to write human-readable
// lines to out at level l and above.
func SetGlobalLogger(out io.Writer, l zerolog.Level, noColor bool) {
	zerolog.SetGlobalLevel(l)
	log.Logger = zerolog.New(NewConsoleWriter(out, noColor)).With().Timestamp().Logger()
}

// NewConsoleWriter returns a writer that prints the scope in brackets ahead
// of the message, e.g. "INF 2024-01-01T00:00:00Z [build] built tree".
func NewConsoleWriter(out io.Writer, noColor bool) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    noColor,
		TimeFormat: time.RFC3339,
		FormatPrepare: func(m map[string]any) error {
			if v, ok := m[scopeFieldName].(string); ok && v != "" {
				m[scopeFieldName] = fmt.Sprintf("[%s]", v)
			} else {
				m[scopeFieldName] = "[bstree]"
			}
			return nil
		},
		FieldsExclude: []string{scopeFieldName},
		PartsOrder: []string{
			zerolog.LevelFieldName,
			zerolog.TimestampFieldName,
			scopeFieldName,
			zerolog.MessageFieldName,
		},
	}
}

// WithScope returns a sub-logger tagged with the component name.
func WithScope(logger zerolog.Logger, scope string) zerolog.Logger {
	return logger.With().Str(scopeFieldName, scope).Logger()
}

type joinableError interface {
	Unwrap() []error
}

// ErrorUnwrapped logs each error of a joined error on its own line. Other
// errors are logged once.
func ErrorUnwrapped(logger *zerolog.Logger, msg string, err error) {
	var joined joinableError
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			logger.Error().Err(e).Msg(msg)
		}
		return
	}
	logger.Error().Err(err).Msg(msg)
}
