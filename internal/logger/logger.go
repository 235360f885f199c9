package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "vanta"

var log *zap.Logger

// Init builds the process logger. "production" writes JSON lines to stdout;
// any other env gets the colored development console.
func Init(env string) {
	l, err := build(env)
	if err != nil {
		panic(err)
	}
	log = l
}

func build(env string) (*zap.Logger, error) {
	cfg := consoleConfig()
	if env == "production" {
		cfg = jsonConfig()
	}

	l, err := cfg.Build(zap.AddCaller())
	if err != nil {
		return nil, err
	}
	return l.With(zap.String("service", serviceName)), nil
}

func jsonConfig() zap.Config {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "json"
	cfg.OutputPaths = []string{"stdout"}

	enc := &cfg.EncoderConfig
	enc.TimeKey = "timestamp"
	enc.MessageKey = "message"
	enc.EncodeLevel = zapcore.LowercaseLevelEncoder
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

func consoleConfig() zap.Config {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return cfg
}

// L returns the process logger, building one from APP_ENV on first use.
func L() *zap.Logger {
	if log == nil {
		Init(os.Getenv("APP_ENV"))
	}
	return log
}

// Set swaps the process logger, e.g. for an observer core in tests.
func Set(l *zap.Logger) {
	log = l
}

func Sync() {
	if log == nil {
		return
	}
	_ = log.Sync()
}
