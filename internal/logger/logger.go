// Package logger builds the zap logger shared by every component.
package logger

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a production (JSON) or development (console) sugared logger at level.
func New(level string, development bool) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return log.Sugar(), nil
}

// NewWriter logs JSON lines to w. The terminal UI uses it so log output
// does not tear the alternate screen.
func NewWriter(w io.Writer, level string) (*zap.SugaredLogger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		lvl,
	)

	return zap.New(core).Sugar(), nil
}

// NewFile logs JSON lines to a size-rotated file at path. Close the
// returned io.Closer when done.
func NewFile(path, level string) (*zap.SugaredLogger, io.Closer, error) {
	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	log, err := NewWriter(rotator, level)
	if err != nil {
		return nil, nil, err
	}

	return log, rotator, nil
}
