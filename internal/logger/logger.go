package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileName is the log file written inside Config.Dir.
const FileName = "workcal.log"

var (
	logger  *log.Logger
	rotator *lumberjack.Logger
)

type Config struct {
	Debug bool
	// Dir holds the rotating log file. Empty disables file output.
	Dir string
}

// Init replaces the package logger. Warnings and errors always reach the
// log file; debug mode lowers the level and mirrors output to stderr.
func Init(cfg Config) error {
	var writers []io.Writer

	if cfg.Dir != "" {
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return err
		}
		Close()
		rotator = &lumberjack.Logger{
			Filename:   filepath.Join(cfg.Dir, FileName),
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		writers = append(writers, rotator)
	}

	level := log.WarnLevel
	if cfg.Debug {
		level = log.DebugLevel
		writers = append(writers, os.Stderr)
	}

	var w io.Writer = io.Discard
	if len(writers) > 0 {
		w = io.MultiWriter(writers...)
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "workcal",
	})
	return nil
}

// L returns the package logger, or a discarding one before Init.
func L() *log.Logger {
	if logger == nil {
		return log.NewWithOptions(io.Discard, log.Options{})
	}
	return logger
}

// Close flushes and closes the log file, if one is open.
func Close() {
	if rotator != nil {
		_ = rotator.Close()
		rotator = nil
	}
}

func Debug(msg string, keyvals ...any) {
	if logger != nil {
		logger.Debug(msg, keyvals...)
	}
}

func Info(msg string, keyvals ...any) {
	if logger != nil {
		logger.Info(msg, keyvals...)
	}
}

func Warn(msg string, keyvals ...any) {
	if logger != nil {
		logger.Warn(msg, keyvals...)
	}
}

func Error(msg string, keyvals ...any) {
	if logger != nil {
		logger.Error(msg, keyvals...)
	}
}
