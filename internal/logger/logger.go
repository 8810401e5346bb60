// Package logger configures the rotating application log.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileName is the name of the active log file inside the logs directory.
const FileName = "tante.log"

var (
	// Logger is the global logger instance
	Logger *log.Logger
)

// Config holds logger configuration
type Config struct {
	Debug  bool
	LogDir string
	// Stderr receives a copy of every record in debug mode. Defaults to os.Stderr.
	Stderr io.Writer
}

// Init initializes the global logger with the given configuration
func Init(cfg Config) error {
	if err := os.MkdirAll(cfg.LogDir, 0755); err != nil {
		return err
	}

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.LogDir, FileName),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	level := log.WarnLevel
	var writer io.Writer = fileWriter
	if cfg.Debug {
		level = log.DebugLevel
		stderr := cfg.Stderr
		if stderr == nil {
			stderr = os.Stderr
		}
		writer = io.MultiWriter(stderr, fileWriter)
	}

	Logger = log.NewWithOptions(writer, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "tante",
	})

	return nil
}

// Reset drops the global logger, turning the helpers into no-ops.
func Reset() {
	Logger = nil
}

// Debug logs a debug message
func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

// Info logs an info message
func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

// Warn logs a warning message
func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

// Error logs an error message
func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}
