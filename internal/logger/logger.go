package logger

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogFilePath is the default log file, relative to the working directory.
const LogFilePath = "logs/lampforge.txt"

// Options selects where and how much is logged. Format is "json" or "console".
type Options struct {
	Path    string
	Level   string
	Format  string
	Console bool
}

// Logger keeps the lines shown in the viewer terminal in memory and forwards every entry to a
// zap logger writing to the log file and, optionally, stderr.
type Logger struct {
	mu    sync.Mutex
	lines []string
	zl    *zap.Logger
	file  *os.File
}

// New returns a Logger for opts. If the log file cannot be opened the logger still works, only
// without the file sink.
func New(opts Options) *Logger {
	if opts.Path == "" {
		opts.Path = LogFilePath
	}
	level := parseLevel(opts.Level)

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var cores []zapcore.Core
	l := &Logger{lines: make([]string, 0)}
	_ = os.MkdirAll(filepath.Dir(opts.Path), 0755)
	if f, err := os.OpenFile(opts.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
		l.file = f
		cores = append(cores, zapcore.NewCore(encoder(opts.Format, encoderConfig), zapcore.AddSync(f), level))
	}
	if opts.Console {
		consoleConfig := zap.NewDevelopmentEncoderConfig()
		consoleConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(consoleConfig), zapcore.Lock(os.Stderr), level))
	}
	l.zl = zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	return l
}

// NewNop returns a Logger that only keeps lines in memory.
func NewNop() *Logger {
	return &Logger{lines: make([]string, 0), zl: zap.NewNop()}
}

func parseLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func encoder(format string, cfg zapcore.EncoderConfig) zapcore.Encoder {
	if format == "console" {
		return zapcore.NewConsoleEncoder(cfg)
	}
	return zapcore.NewJSONEncoder(cfg)
}

// Log keeps line, prefixed with [timestamp] in local time, and writes it at info level.
func (l *Logger) Log(line string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	l.mu.Unlock()

	l.zl.Info(line)
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Zap returns the structured logger behind l.
func (l *Logger) Zap() *zap.Logger {
	return l.zl
}

// Close flushes and closes the log file.
func (l *Logger) Close() error {
	_ = l.zl.Sync()
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
