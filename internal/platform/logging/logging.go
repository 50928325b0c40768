// Package logging builds the process-wide zap logger.
//
// Console output is always on. When a log file is configured the same entries
// are also written as JSON to a lumberjack-rotated file.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Format selects the console encoder.
type Format string

const (
	FormatJSON    Format = "json"
	FormatConsole Format = "console"
)

// Config describes logger construction inputs.
type Config struct {
	Level  string `env:"MJK_SITE_LOG_LEVEL" envDefault:"info"`
	Format Format `env:"MJK_SITE_LOG_FORMAT" envDefault:"json"`
	// File enables a rotated JSON file sink in addition to console output.
	File       string `env:"MJK_SITE_LOG_FILE"`
	MaxSizeMB  int    `env:"MJK_SITE_LOG_MAX_SIZE_MB" envDefault:"10"`
	MaxBackups int    `env:"MJK_SITE_LOG_MAX_BACKUPS" envDefault:"5"`
	MaxAgeDays int    `env:"MJK_SITE_LOG_MAX_AGE_DAYS" envDefault:"7"`
}

// New builds a logger writing to stdout and, optionally, a rotated file.
func New(cfg Config) (*zap.Logger, error) {
	return newWithConsole(cfg, os.Stdout)
}

func newWithConsole(cfg Config, console io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.TrimSpace(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.Level, err)
	}

	var consoleEncoder zapcore.Encoder
	switch Format(strings.ToLower(strings.TrimSpace(string(cfg.Format)))) {
	case FormatConsole:
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		consoleEncoder = zapcore.NewConsoleEncoder(encoderConfig)
	case FormatJSON, "":
		consoleEncoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.AddSync(console), level),
	}

	if file := strings.TrimSpace(cfg.File); file != "" {
		fileSyncer := zapcore.AddSync(&lumberjack.Logger{
			Filename:   file,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   true,
		})
		fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(fileEncoder, fileSyncer, level))
	}

	return zap.New(zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
	), nil
}
