package logging

import (
	"go.uber.org/zap"

	"github.com/mgpai22/cardano-txbuilder-go/internal/config"
)

var globalLogger *zap.SugaredLogger

// Configure (re)builds the package-global logger from the current config.
// Debug level uses the human-readable console encoder; everything else uses
// the JSON encoder so log lines are easy to ship to a collector.
func Configure() {
	cfg := config.GetConfig()

	level := zap.InfoLevel
	switch cfg.Logging.Level {
	case "debug":
		level = zap.DebugLevel
	case "warn":
		level = zap.WarnLevel
	case "error":
		level = zap.ErrorLevel
	}

	var zapCfg zap.Config
	if cfg.Logging.Level == "debug" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build()
	if err != nil {
		// Logging can't be configured; fall back to a no-op logger rather
		// than panicking on startup.
		logger = zap.NewNop()
	}
	globalLogger = logger.Sugar().With("component", "txbuilder")
}

// GetLogger returns the package-global logger, configuring it from the
// current config on first use.
func GetLogger() *zap.SugaredLogger {
	if globalLogger == nil {
		Configure()
	}
	return globalLogger
}
