package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log : 애플리케이션 전역 로거 (InitLogger 전에는 아무것도 출력하지 않음)
var Log = zap.NewNop()

// InitLogger : APP_ENV, LOG_LEVEL에 맞춰 zap 로거 생성
func InitLogger() error {
	var cfg zap.Config
	if AppEnv == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = logger
	return nil
}
