// config.go - Konfiguration ueber Umgebungsvariablen
//
// Dieses Modul enthaelt:
// - LogLevel: Log-Level (TOKENWERK_DEBUG)
// - VocabPath: Default-Pfad der Rang-Datei (TOKENWERK_VOCAB)
// - Parallel: Worker-Anzahl fuer Batch-Encoding (TOKENWERK_PARALLEL)
// - Var: Roh-Zugriff mit Quote/Whitespace-Trimming
// - EnvVar/AsMap: Export fuer die CLI-Hilfe
package envconfig

import (
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/tokenwerk/tokenwerk/logutil"
)

// LogLevel gibt das Log-Level zurueck
// Konfigurierbar via TOKENWERK_DEBUG (bool fuer Debug, 2 fuer Trace)
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("TOKENWERK_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	if level < logutil.LevelTrace {
		level = logutil.LevelTrace
	}

	return level
}

// VocabPath gibt den Default-Pfad der Rang-Datei zurueck
// Konfigurierbar via TOKENWERK_VOCAB
func VocabPath() string {
	return Var("TOKENWERK_VOCAB")
}

// Parallel gibt die Worker-Anzahl fuer Batch-Encoding zurueck
// Konfigurierbar via TOKENWERK_PARALLEL, Default: Anzahl CPUs
func Parallel() uint {
	return Uint("TOKENWERK_PARALLEL", uint(runtime.NumCPU()))()
}

// Uint gibt eine Funktion zurueck, die einen uint mit Default-Wert liest
func Uint(key string, defaultValue uint) func() uint {
	return func() uint {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return uint(n)
			}
		}
		return defaultValue
	}
}

// Var gibt eine Environment-Variable zurueck
// Entfernt fuehrende/trailing Quotes und Leerzeichen
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// EnvVar repraesentiert eine Environment-Variable mit Metadaten
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap gibt alle Konfigurationen als Map zurueck
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"TOKENWERK_DEBUG":    {"TOKENWERK_DEBUG", LogLevel(), "Show additional debug information (e.g. TOKENWERK_DEBUG=1, =2 for trace)"},
		"TOKENWERK_VOCAB":    {"TOKENWERK_VOCAB", VocabPath(), "Default path to the tiktoken rank file"},
		"TOKENWERK_PARALLEL": {"TOKENWERK_PARALLEL", Parallel(), "Number of workers for batch encoding (default: number of CPUs)"},
	}
}
