package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Init builds a zap logger for the given environment and replaces
// the global logger, so call sites can use zap.L().
func Init(environment string) error {
	var logger *zap.Logger
	var err error

	switch environment {
	case "production":
		logger, err = zap.NewProduction()
	default:
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return fmt.Errorf("zap.New -> %w", err)
	}

	zap.ReplaceGlobals(logger)

	return nil
}
