package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "pharmafinder-client"

// New собирает zap логгер: json для продакшена, цветная консоль для debug.
// Неизвестный уровень трактуется как info.
func New(level string) (*zap.Logger, error) {
	return build(level, "stdout")
}

// NewStderr - тот же логгер, но пишет в stderr (для CLI, где stdout занят результатом)
func NewStderr(level string) (*zap.Logger, error) {
	return build(level, "stderr")
}

func build(level, output string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
		InitialFields:    map[string]interface{}{"service": serviceName},
	}

	if zapLevel == zapcore.DebugLevel {
		config.Development = true
		config.Encoding = "console"
		config.EncoderConfig = zap.NewDevelopmentEncoderConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return config.Build()
}

// Component возвращает дочерний логгер для подсистемы (api, store, worker...)
func Component(log *zap.Logger, name string) *zap.Logger {
	return log.Named(name)
}
