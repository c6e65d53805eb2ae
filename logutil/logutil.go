// Package logutil stellt slog-Helfer bereit.
//
// Modul: logutil.go - Logger-Konstruktion und Trace-Level
// Enthaelt: LevelTrace, NewLogger, Trace
//
// Trace liegt unterhalb von slog.LevelDebug und traegt die Hot-Path-
// Ausgaben des Tokenizers (encode/decode pro Aufruf); es ist nur bei
// explizit abgesenktem Level aktiv.
package logutil

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"time"
)

const LevelTrace slog.Level = -8

// NewLogger baut einen TextHandler-Logger mit kurzem Quell-Dateinamen
// und TRACE-Beschriftung fuer das Trace-Level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				if attr.Value.Any().(slog.Level) == LevelTrace {
					attr.Value = slog.StringValue("TRACE")
				}
			case slog.SourceKey:
				source := attr.Value.Any().(*slog.Source)
				source.File = filepath.Base(source.File)
			}
			return attr
		},
	}))
}

// Trace loggt auf LevelTrace mit dem Aufrufer als Quelle.
func Trace(msg string, args ...any) {
	ctx := context.Background()
	if logger := slog.Default(); logger.Enabled(ctx, LevelTrace) {
		pc, _, _, _ := runtime.Caller(1)
		record := slog.NewRecord(time.Now(), LevelTrace, msg, pc)
		record.Add(args...)
		logger.Handler().Handle(ctx, record) //nolint:errcheck
	}
}
