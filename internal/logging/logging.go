// Package logging configures zerolog for vocab commands.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/open-cli-collective/vocab-cli/pkg/vocab"
)

// DefaultLevel applies when nothing else sets a level.
const DefaultLevel = zerolog.WarnLevel

// Config captures options for building a logger.
type Config struct {
	Level   string    // optional log level ("debug", "info", etc.)
	Output  io.Writer // optional writer (defaults to os.Stderr)
	Console bool      // human readable output instead of JSON lines
	NoColor bool      // disable colors in console output
}

// New builds a logger. An unparsable level falls back to DefaultLevel.
func New(cfg Config) zerolog.Logger {
	level := DefaultLevel
	if cfg.Level != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(cfg.Level)); err == nil {
			level = parsed
		}
	}

	// The global level is a floor for every logger; lower it when asked for more.
	if level < zerolog.GlobalLevel() {
		zerolog.SetGlobalLevel(level)
	}

	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}
	if cfg.Console {
		writer = zerolog.ConsoleWriter{
			Out:        writer,
			NoColor:    cfg.NoColor,
			TimeFormat: time.Kitchen,
		}
	}

	return zerolog.New(writer).Level(level).With().
		Timestamp().
		Str("service", "vocab").
		Logger()
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// Observer reports highlighting pipeline events to logger: stage summaries at
// debug level, individual matches at trace level.
func Observer(logger zerolog.Logger) vocab.Observer {
	l := WithComponent(logger, "highlight")
	return vocab.ObserverFunc(func(e vocab.Event) {
		if e.Token != nil {
			l.Trace().
				Str("stage", string(e.Stage)).
				Str("text", e.Token.Text).
				Str("vocabulary", e.Token.MatchedVocabulary).
				Msg("token matched")
			return
		}
		ev := l.Debug().
			Str("stage", string(e.Stage)).
			Int("tokens", e.Tokens)
		if e.Stage != vocab.StageTokenize {
			ev = ev.Int("matches", e.Matches)
		}
		if e.Vocabularies > 0 {
			ev = ev.Int("vocabularies", e.Vocabularies)
		}
		ev.Msg("stage complete")
	})
}
