package config_fx

import (
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"
	"gymapi/internal/config"
	"gymapi/pkg/logger"
)

var Module = fx.Provide(
	config.Load,
	provideLogger,
	provideFieldLogger)

func provideLogger(cfg *config.Config) *logrus.Logger {
	return logger.New(cfg.LogLevel)
}

func provideFieldLogger(log *logrus.Logger) logrus.FieldLogger {
	return log
}
