// Package logging builds the process logger: zap with a console encoder,
// writing to stderr and optionally to a size-rotated file.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects level and sinks.
type Options struct {
	Level      string    `yaml:"level"` // debug, info, warn, error
	File       string    `yaml:"file"`  // empty disables the file sink
	MaxSizeMB  int       `yaml:"maxSizeMB"`
	MaxBackups int       `yaml:"maxBackups"`
	MaxAgeDays int       `yaml:"maxAgeDays"`
	Console    bool      `yaml:"console"`
	Output     io.Writer `yaml:"-"` // console sink, stderr when nil
}

var (
	mu  sync.RWMutex
	log = zap.NewNop()
)

// Init builds a logger from opts and installs it as the global logger.
func Init(opts Options) (*zap.Logger, error) {
	l, err := New(opts)
	if err != nil {
		return nil, err
	}
	mu.Lock()
	log = l
	mu.Unlock()
	return l, nil
}

// New builds a logger without touching the global one.
func New(opts Options) (*zap.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
		EncodeName:    zapcore.FullNameEncoder,
	}
	encoder := zapcore.NewConsoleEncoder(encCfg)

	var cores []zapcore.Core
	if opts.Console {
		out := opts.Output
		if out == nil {
			out = os.Stderr
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(out), level))
	}
	if opts.File != "" {
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(lj), level))
	}
	if len(cores) == 0 {
		return zap.NewNop(), nil
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

// ParseLevel maps a config string to a zap level. Empty means info.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// L returns the global logger. It is a no-op logger until Init succeeds.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Sync flushes the global logger.
func Sync() {
	_ = L().Sync()
}
