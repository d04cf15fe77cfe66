package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	FormatProduction  = "production"
	FormatDevelopment = "development"
)

type Options struct {
	// Level is the minimum level to log. Defaults to info.
	Level string

	// Format is either production (json) or development (console).
	// Defaults to development.
	Format string

	// File is a file to additionally write json logs to. The file
	// is rotated once it grows too large.
	File string

	// App is added to every log entry
	App string
}

// New builds a logger writing to stderr, as stdout is shared with the
// supervised processes.
func New(opts Options) (*zap.Logger, error) {
	var config zap.Config
	if opts.Format == FormatProduction {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}

	config.Level = ParseLevel(opts.Level)
	config.OutputPaths = []string{"stderr"}

	var buildOpts []zap.Option

	if opts.File != "" {
		sink := fileCore(opts.File, config.Level)
		buildOpts = append(buildOpts, zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			return zapcore.NewTee(core, sink)
		}))
	}

	// added after wrapping, so the file sink gets the field as well
	if opts.App != "" {
		buildOpts = append(buildOpts, zap.Fields(zap.String("app", opts.App)))
	}

	return config.Build(buildOpts...)
}

// ParseLevel parses lvl, falling back to info.
func ParseLevel(lvl string) zap.AtomicLevel {
	if atom, err := zap.ParseAtomicLevel(lvl); err == nil && lvl != "" {
		return atom
	}

	return zap.NewAtomicLevelAt(zap.InfoLevel)
}

func fileCore(path string, level zapcore.LevelEnabler) zapcore.Core {
	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	})

	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())

	return zapcore.NewCore(encoder, writer, level)
}
