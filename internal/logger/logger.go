// Package logger holds the process-wide zap logger of the currates command.
// The CURRATES_LOG_ENV variable picks the preset: dev (default) or prod.
package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
)

const (
	logEnvKey     = "CURRATES_LOG_ENV"
	defaultLogEnv = "dev"
)

var logger *zap.Logger

func init() {
	env := os.Getenv(logEnvKey)
	if env == "" {
		env = defaultLogEnv
	}

	var err error
	if env == "dev" {
		logger, err = zap.NewDevelopment()
	} else if env == "prod" {
		logger, err = zap.NewProduction()
	}

	if err != nil || logger == nil {
		log.Fatal("logger init", err)
	}
}

// Get exposes the underlying zap logger so it can be handed to libraries.
func Get() *zap.Logger {
	return logger
}

func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	logger.Fatal(msg, fields...)
}
