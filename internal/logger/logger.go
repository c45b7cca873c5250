// Package logger provides centralized logging for argvparse.
// It wraps a charmbracelet logger writing to stderr without timestamps.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// LevelEnv is consulted when no level is passed to Configure.
const LevelEnv = "ARGVPARSE_LOG_LEVEL"

// Logger is the global logger instance used throughout argvparse.
var Logger *log.Logger

// output is where component loggers write; it follows Configure.
var output io.Writer = os.Stderr

// logFile is the file opened by the last Configure, if any.
var logFile *os.File

func init() {
	Logger = log.New(os.Stderr)
	Logger.SetTimeFormat("")
	Logger.SetLevel(log.InfoLevel)
}

// Configure sets up the logger from CLI settings.
// An explicit level wins over LevelEnv; unknown levels fall back to info.
// A non-empty logPath redirects output to that file in append mode; the
// file from an earlier call is closed.
func Configure(logLevel string, logPath string) error {
	level := logLevel
	if level == "" {
		level = os.Getenv(LevelEnv)
	}
	if level == "" {
		level = "info"
	}

	var w io.Writer = os.Stderr
	var file *os.File
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", logPath, err)
		}
		file = f
		w = f
	}

	if err := Close(); err != nil {
		if file != nil {
			_ = file.Close()
		}
		return err
	}
	logFile = file
	output = w
	Logger = log.New(w)
	Logger.SetTimeFormat("")
	Logger.SetLevel(ParseLevel(level))

	return nil
}

// Close closes the log file opened by Configure and sends logs back to
// stderr. It is a no-op when logging to stderr.
func Close() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	output = os.Stderr
	Logger.SetOutput(os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}

// ParseLevel converts a level name to a log level, defaulting to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.InfoLevel
	}
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg interface{}, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Classification logs the outcome of splitting an argument vector.
func Classification(tokens int, flags []string, args []string) {
	Debug("Classified arguments", "tokens", tokens, "flags", flags, "args", args)
}

// Extraction logs a flag lookup and the value it produced.
func Extraction(prefix string, flagType string, matched string, value string) {
	Debug("Extracted flag value", "prefix", prefix, "type", flagType, "matched", matched, "value", value)
}

// NewStyledLogger creates a component logger with badge-style levels.
// prefix names the component, e.g. "Config" or "Extract".
func NewStyledLogger(prefix string) *log.Logger {
	styles := log.DefaultStyles()

	styles.Levels[log.InfoLevel] = badge("INFO", "33")
	styles.Levels[log.ErrorLevel] = badge("ERROR", "196")
	styles.Levels[log.DebugLevel] = badge("DEBUG", "240")
	styles.Levels[log.WarnLevel] = badge("WARN", "214")
	styles.Levels[log.FatalLevel] = badge("FATAL", "88")

	styles.Keys["prefix"] = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))  // Blue
	styles.Keys["type"] = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))    // Purple
	styles.Keys["matched"] = lipgloss.NewStyle().Foreground(lipgloss.Color("46")) // Green
	styles.Keys["error"] = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))  // Red
	styles.Values["error"] = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	componentLogger := log.NewWithOptions(output, log.Options{
		Prefix: prefix + " ",
	})
	componentLogger.SetStyles(styles)
	componentLogger.SetLevel(Logger.GetLevel())

	return componentLogger
}

func badge(label string, background string) lipgloss.Style {
	return lipgloss.NewStyle().
		SetString(label).
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color(background)).
		Foreground(lipgloss.Color("15"))
}
