package logutil

import (
	"fmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"os"
)

// LogConfig - Logger configuration
//   - Level is one of debug, info, warn, error
//   - Format is either console or json
//   - Filename is the log file, empty logs to stderr
//   - MaxSize is the size in megabytes a log file may reach before it is rotated
//   - MaxDays is the number of days rotated files are kept, 0 (zero) keeps them forever
//   - MaxBackups is the number of rotated files kept, 0 (zero) keeps all
type LogConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	Filename   string `toml:"filename"`
	MaxSize    int    `toml:"max_size"`
	MaxDays    int    `toml:"max_days"`
	MaxBackups int    `toml:"max_backups"`
}

// NewLogger - Returns a zap logger built from the configuration
func NewLogger(cfg LogConfig) (logger *zap.Logger, err error) {
	level, err := cfg.getLevel()
	if err != nil {
		return
	}
	encoder, err := cfg.getEncoder()
	if err != nil {
		return
	}

	core := zapcore.NewCore(encoder, cfg.getSyncer(), level)
	logger = zap.New(core, cfg.getOptions()...)

	return
}

func (cfg *LogConfig) getLevel() (level zap.AtomicLevel, err error) {
	var l zapcore.Level
	if err = l.UnmarshalText([]byte(cfg.Level)); err != nil {
		err = fmt.Errorf("unsupported log level: %s", cfg.Level)
		return
	}
	level = zap.NewAtomicLevelAt(l)

	return
}

func (cfg *LogConfig) getOptions() []zap.Option {
	return []zap.Option{zap.AddStacktrace(zapcore.FatalLevel), zap.AddCaller()}
}

func (cfg *LogConfig) getEncoder() (encoder zapcore.Encoder, err error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	switch cfg.Format {
	case "console", "":
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	default:
		err = fmt.Errorf("unsupported log format: %s", cfg.Format)
	}

	return
}

func (cfg *LogConfig) getSyncer() zapcore.WriteSyncer {
	if cfg.Filename == "" {
		return zapcore.Lock(os.Stderr)
	}

	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxDays,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
	})
}
